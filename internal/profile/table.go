package profile

import (
	"fmt"
	"io"
	"text/tabwriter"

	"isa-explorer/pkg/types"
)

// WriteTable prints one row per sample.
func WriteTable(w io.Writer, samples []types.Sample) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "ALT (m)\tLAYER\tT (K)\tT (°C)\tP (hPa)\tRHO (kg/m³)\t")
	for _, s := range samples {
		fmt.Fprintf(tw, "%.0f\t%s\t%.2f\t%.2f\t%.4f\t%.6g\t\n",
			s.Altitude, s.Layer, s.Temperature, s.TemperatureCelsius(), s.PressureHPa(), s.Density)
	}
	return tw.Flush()
}

func WriteSummary(w io.Writer, sum Summary) error {
	_, err := fmt.Fprintf(w, "temperature %.2f..%.2f K, pressure %.4g..%.4g Pa, column mass %.1f kg/m²\n",
		sum.MinTemperature, sum.MaxTemperature, sum.MinPressure, sum.MaxPressure, sum.ColumnMass)
	return err
}
