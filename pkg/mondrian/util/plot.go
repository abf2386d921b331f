package util

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RatePoint is the mutation rate measured for partitions with a given number of cells.
type RatePoint struct {
	Cells    int
	Expected float64
	Observed float64
}

// PlotMutationRates writes an HTML chart of the expected and observed
// per-cell mutation rate against the cell count to path.
func PlotMutationRates(points []RatePoint, title, path string) error {
	if len(points) == 0 {
		return fmt.Errorf("no rate points for %s", title)
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "cells"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "rate"}),
	)
	scatter.AddSeries("Expected", rateSeries(points, func(p RatePoint) float64 { return p.Expected })).
		AddSeries("Observed", rateSeries(points, func(p RatePoint) float64 { return p.Observed }))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return scatter.Render(f)
}

func rateSeries(points []RatePoint, rate func(RatePoint) float64) []opts.ScatterData {
	data := make([]opts.ScatterData, len(points))
	for i, p := range points {
		data[i] = opts.ScatterData{Value: []float64{float64(p.Cells), rate(p)}}
	}
	return data
}
