package reportgen

import (
	"bytes"
	"fmt"
	"sort"

	chart "github.com/wcharczuk/go-chart/v2"
)

// PieChartPNG renders the category distribution as a PNG pie chart.
func PieChartPNG(freqs []NameCount) ([]byte, error) {
	if len(freqs) == 0 {
		return nil, nil
	}

	values := make([]chart.Value, 0, len(freqs))
	for _, f := range freqs {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%d)", f.Name, f.Count),
			Value: float64(f.Count),
		})
	}

	pie := chart.PieChart{
		Width:  512,
		Height: 512,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render pie chart: %w", err)
	}
	return buf.Bytes(), nil
}

// SeverityLinePNG renders symptom severity over time as a PNG line chart.
// Fewer than two weighted entries cannot form a line; nil is returned and
// the document simply omits the chart.
func SeverityLinePNG(entries []Entry) ([]byte, error) {
	points := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Weight != nil {
			points = append(points, e)
		}
	}
	if len(points) < 2 {
		return nil, nil
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = float64(p.Date.Unix())
		ys[i] = float64(*p.Weight)
	}

	graph := chart.Chart{
		Width:  800,
		Height: 360,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 5},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: xs, YValues: ys},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render line chart: %w", err)
	}
	return buf.Bytes(), nil
}
