package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/IlikeChooros/go-rollout/pkg/rollout"
	"github.com/logrusorgru/aurora"
)

// Prints the value grids of the agent's decisions as coloured 3x3 tables
type HeatmapPrinter struct {
	au aurora.Aurora
	w  io.Writer
}

func NewHeatmapPrinter(w io.Writer, colors bool) *HeatmapPrinter {
	return &HeatmapPrinter{au: aurora.NewAurora(colors), w: w}
}

func formatValue(v float64) string {
	return fmt.Sprintf("%6.0f", v)
}

func (hp *HeatmapPrinter) Format(grid rollout.ValueGrid) string {
	builder := strings.Builder{}
	for i, row := range grid {
		if i > 0 {
			builder.WriteString(strings.Repeat("-", 6*3+2) + "\n")
		}
		for j, v := range row {
			if j > 0 {
				builder.WriteString(hp.au.White("|").String())
			}

			s := formatValue(v)
			switch {
			case v > 0:
				builder.WriteString(hp.au.Green(s).String())
			case v < 0:
				builder.WriteString(hp.au.Red(s).String())
			default:
				builder.WriteString(hp.au.White(s).String())
			}
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

func (hp *HeatmapPrinter) Print(grid rollout.ValueGrid) error {
	_, err := io.WriteString(hp.w, hp.Format(grid))
	return err
}

// Print every grid of the history, numbered from 1
func (hp *HeatmapPrinter) PrintHistory(grids []rollout.ValueGrid) error {
	for i, grid := range grids {
		if _, err := fmt.Fprintf(hp.w, "%s\n", hp.au.Bold(fmt.Sprintf("Decision %d", i+1))); err != nil {
			return err
		}
		if err := hp.Print(grid); err != nil {
			return err
		}
	}
	return nil
}
