// Package viz renders trajectories for the terminal. It consumes only the
// plain numeric output of the core packages.
package viz

import (
	"github.com/guptarohit/asciigraph"
)

const (
	plotWidth  = 80
	plotHeight = 10
	maxSamples = 400
)

// Downsample reduces data to at most n points, keeping both endpoints.
func Downsample(data []float64, n int) []float64 {
	if n < 2 || len(data) <= n {
		return data
	}
	out := make([]float64, n)
	step := float64(len(data)-1) / float64(n-1)
	for i := range out {
		out[i] = data[int(float64(i)*step+0.5)]
	}
	out[n-1] = data[len(data)-1]
	return out
}

// SeriesPlot renders one variable against trajectory index.
func SeriesPlot(caption string, data []float64) string {
	return asciigraph.Plot(Downsample(data, maxSamples),
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// PVPlot renders pressure along the trajectory. For volume-swept processes
// the index axis is linear in volume, so the curve has the PV-diagram
// shape.
func PVPlot(pressure []float64) string {
	return SeriesPlot("pressure along trajectory (Pa)", pressure)
}
