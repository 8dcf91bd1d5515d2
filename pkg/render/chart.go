package render

import (
	"fmt"
	"io"

	"github.com/IlikeChooros/go-rollout/pkg/rollout"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"
)

var (
	_Columns = []string{"col 0", "col 1", "col 2"}
	_Rows    = []string{"row 2", "row 1", "row 0"}
)

func heatmapChart(index int, grid rollout.ValueGrid) *charts.HeatMap {
	bound := float32(grid.MaxAbs())
	if bound == 0 {
		bound = 1
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Decision %d", index+1),
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: _Columns}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: _Rows}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Min: -bound,
			Max: bound,
			InRange: &opts.VisualMapInRange{
				Color: []string{"#d73027", "#ffffff", "#1a9850"},
			},
		}),
	)

	// Row 0 is drawn at the top
	data := make([]opts.HeatMapData, 0, 9)
	for row := range 3 {
		for col := range 3 {
			data = append(data, opts.HeatMapData{
				Value: [3]interface{}{col, 2 - row, grid[row][col]},
			})
		}
	}

	hm.SetXAxis(_Columns).AddSeries("values", data)
	return hm
}

// Write an HTML page with one heat map per decision
func WriteHeatmapPage(w io.Writer, grids []rollout.ValueGrid) error {
	if len(grids) == 0 {
		return errors.New("no decisions to chart")
	}

	page := components.NewPage()
	page.PageTitle = "Rollout values"
	for i, grid := range grids {
		page.AddCharts(heatmapChart(i, grid))
	}

	return errors.Wrap(page.Render(w), "render heatmap page")
}
