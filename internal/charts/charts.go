// Package charts renders derived spending views as PNG images.
package charts

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"moneymap/internal/views"
)

// RenderBar draws grouped totals (category or payment method) as a bar chart.
func RenderBar(w io.Writer, title string, totals []views.Total) error {
	if len(totals) == 0 {
		return fmt.Errorf("no data to chart")
	}

	var bars []chart.Value
	for _, t := range totals {
		amount, _ := t.Amount.Float64()
		bars = append(bars, chart.Value{
			Label: t.Label,
			Value: amount,
		})
	}

	barChart := chart.BarChart{
		Title: title,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:  800,
		Height: 400,
		Bars:   bars,
	}
	barChart.YAxis.ValueFormatter = func(v interface{}) string {
		if vf, isFloat := v.(float64); isFloat {
			return fmt.Sprintf("$%.2f", vf)
		}
		return ""
	}

	return barChart.Render(chart.PNG, w)
}

// RenderTimeSeries draws daily spending totals as a line chart. The x axis
// follows the first-seen point order of the totals.
func RenderTimeSeries(w io.Writer, title string, totals []views.Total) error {
	if len(totals) == 0 {
		return fmt.Errorf("no data to chart")
	}

	xs := make([]float64, len(totals))
	ys := make([]float64, len(totals))
	ticks := make([]chart.Tick, len(totals))
	for i, t := range totals {
		xs[i] = float64(i)
		ys[i], _ = t.Amount.Float64()
		ticks[i] = chart.Tick{Value: float64(i), Label: t.Label}
	}

	graph := chart.Chart{
		Title: title,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			Ticks: ticks,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    title,
				XValues: xs,
				YValues: ys,
			},
		},
	}

	return graph.Render(chart.PNG, w)
}
