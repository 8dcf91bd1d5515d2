package bench

import (
	"encoding/json"
	"sync/atomic"

	"github.com/IlikeChooros/go-rollout/pkg/ttt"
	"gonum.org/v1/gonum/stat"
)

type VersusMatchResult int

const (
	VersusSearchWin VersusMatchResult = 1
	VersusRandomWin VersusMatchResult = -1
	VersusDraw      VersusMatchResult = 0
)

// Game result from the search agent's point of view
func toMatchResult(reward ttt.Reward, searchSide ttt.Cell) VersusMatchResult {
	switch reward.Winner() {
	case ttt.Empty:
		return VersusDraw
	case searchSide:
		return VersusSearchWin
	}
	return VersusRandomWin
}

type VersusArenaStats struct {
	searchWins uint32
	randomWins uint32
	draws      uint32
}

func (vas *VersusArenaStats) Total() int {
	return vas.SearchWins() + vas.RandomWins() + vas.Draws()
}

func (vas *VersusArenaStats) SearchWins() int {
	return int(atomic.LoadUint32(&vas.searchWins))
}

func (vas *VersusArenaStats) RandomWins() int {
	return int(atomic.LoadUint32(&vas.randomWins))
}

func (vas *VersusArenaStats) Draws() int {
	return int(atomic.LoadUint32(&vas.draws))
}

func (vas *VersusArenaStats) add(result VersusMatchResult) {
	switch result {
	case VersusSearchWin:
		atomic.AddUint32(&vas.searchWins, 1)
	case VersusRandomWin:
		atomic.AddUint32(&vas.randomWins, 1)
	default:
		atomic.AddUint32(&vas.draws, 1)
	}
}

type WorkerInfo struct {
	WorkerID      int
	NGames        int
	FinishedGames int
	Moves         []ttt.Move
	Result        VersusMatchResult
	SearchSide    ttt.Cell
	SearchWins    int
	RandomWins    int
	Draws         int
}

type Summary struct {
	TotalGames int     `json:"total_games"`
	SearchWins int     `json:"search_wins"`
	RandomWins int     `json:"random_wins"`
	Draws      int     `json:"draws"`
	WinRate    float64 `json:"win_rate"`
	DrawRate   float64 `json:"draw_rate"`
	LossRate   float64 `json:"loss_rate"`
	MeanScore  float64 `json:"mean_score"`
	StdErr     float64 `json:"std_err"`
	Workers    int     `json:"workers"`
	Difficulty int     `json:"difficulty"`
	SearchSide string  `json:"search_side"`
}

// Fill the rates and score statistics, 'scores' holds +1/0/-1 per game
// from the search agent's point of view
func newSummary(stats *VersusArenaStats, scores []float64) Summary {
	s := Summary{
		TotalGames: stats.Total(),
		SearchWins: stats.SearchWins(),
		RandomWins: stats.RandomWins(),
		Draws:      stats.Draws(),
	}

	if s.TotalGames > 0 {
		total := float64(s.TotalGames)
		s.WinRate = float64(s.SearchWins) / total
		s.DrawRate = float64(s.Draws) / total
		s.LossRate = float64(s.RandomWins) / total
	}

	switch len(scores) {
	case 0:
	case 1:
		s.MeanScore = scores[0]
	default:
		mean, std := stat.MeanStdDev(scores, nil)
		s.MeanScore = mean
		s.StdErr = stat.StdErr(std, float64(len(scores)))
	}
	return s
}

func (s Summary) String() string {
	b, _ := json.Marshal(s)
	return string(b)
}
