package ttt

// Lines as bitboards (bit index = row*3 + column), in the order they are checked:
// the three columns, the three rows, the main diagonal and the anti-diagonal
var _linePatterns = [8]uint16{
	0b001001001, 0b010010010, 0b100100100,
	0b000000111, 0b000111000, 0b111000000,
	0b100010001, 0b001010100,
}

// Check all lines, the first completed one sets the terminal flag and
// decides the reward. Returns 0 if no line is complete, in that case
// the terminal flag is left as it was (a full board alone doesn't set it).
func (s *GameState) Evaluate() Reward {
	reward := s.lineReward()
	if reward != RewardNone {
		s.terminal = true
	}
	return reward
}

// Current reward, without touching the terminal flag
func (s *GameState) Reward() Reward {
	return s.lineReward()
}

func hasLine(bb uint16) bool {
	for _, pattern := range _linePatterns {
		if bb&pattern == pattern {
			return true
		}
	}
	return false
}

func (s *GameState) lineReward() Reward {
	crossbb := s.bitboards[_bitboardCrossIdx]
	circlebb := s.bitboards[_bitboardCircleIdx]

	for _, pattern := range _linePatterns {
		if crossbb&pattern == pattern {
			return RewardPlayerA
		}
		if circlebb&pattern == pattern {
			return RewardPlayerB
		}
	}
	return RewardNone
}
