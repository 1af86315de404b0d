package profile

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"isa-explorer/pkg/types"
)

type chart struct {
	file   string
	title  string
	xLabel string
	value  func(types.Sample) float64
	logX   bool
}

var charts = []chart{
	{"temperature.png", "Temperature", "Temperature (K)", func(s types.Sample) float64 { return s.Temperature }, false},
	{"pressure.png", "Pressure", "Pressure (Pa)", func(s types.Sample) float64 { return s.Pressure }, true},
	{"density.png", "Density", "Density (kg/m³)", func(s types.Sample) float64 { return s.Density }, true},
}

// WriteCharts saves temperature, pressure and density profiles (altitude on
// the vertical axis) as PNGs in dir and returns the file paths.
func WriteCharts(dir, label string, samples []types.Sample) ([]string, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("no samples to plot")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	var written []string
	for _, c := range charts {
		p := plot.New()
		p.Title.Text = fmt.Sprintf("%s - %s", c.title, label)
		p.X.Label.Text = c.xLabel
		p.Y.Label.Text = "Altitude (km)"
		if c.logX {
			p.X.Scale = plot.LogScale{}
			p.X.Tick.Marker = plot.LogTicks{}
		}
		p.Add(plotter.NewGrid())

		pts := make(plotter.XYs, 0, len(samples))
		for _, s := range samples {
			pts = append(pts, plotter.XY{X: c.value(s), Y: s.Altitude / 1000})
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return written, err
		}
		line.Color = color.RGBA{R: 30, G: 90, B: 200, A: 255}
		line.Width = vg.Points(1.5)
		p.Add(line)

		file := filepath.Join(dir, c.file)
		if err := p.Save(6*vg.Inch, 8*vg.Inch, file); err != nil {
			return written, fmt.Errorf("saving %s: %w", file, err)
		}
		written = append(written, file)
	}
	return written, nil
}
