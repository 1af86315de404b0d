package main

import (
	"fmt"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"isa-explorer/internal/profile"
	"isa-explorer/pkg/atmosphere"
)

func newTableCmd(o *options, sweep *pflag.FlagSet) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print conditions over a range of altitudes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := o.model(cmd)
			if err != nil {
				return err
			}
			samples, err := profile.Sweep(m, o.from, o.to, o.step)
			if err != nil {
				return err
			}
			if err := profile.WriteTable(cmd.OutOrStdout(), samples); err != nil {
				return err
			}
			sum, err := profile.Summarize(samples)
			if err != nil {
				return err
			}
			return profile.WriteSummary(cmd.OutOrStdout(), sum)
		},
	}
	cmd.Flags().AddFlagSet(sweep)
	return cmd
}

func newPlotCmd(o *options, sweep *pflag.FlagSet) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Write temperature, pressure and density charts as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := o.model(cmd)
			if err != nil {
				return err
			}
			samples, err := profile.Sweep(m, o.from, o.to, o.step)
			if err != nil {
				return err
			}
			label := fmt.Sprintf("sea level %.2f K", m.SeaLevelTemperature())
			files, err := profile.WriteCharts(o.outDir, label, samples)
			if err != nil {
				return err
			}
			for _, f := range files {
				log.Infof("wrote %s", f)
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
	cmd.Flags().AddFlagSet(sweep)
	cmd.Flags().StringVarP(&o.outDir, "out", "o", "profile", "Directory for the PNG files")
	return cmd
}

func newQueryCmd(o *options) *cobra.Command {
	var tas, eas float64

	cmd := &cobra.Command{
		Use:   "query <meters>",
		Short: "Print conditions at one geometric altitude",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := atmosphere.ParseValue("geometric_height_meters", args[0])
			if err != nil {
				return err
			}
			m, err := o.model(cmd)
			if err != nil {
				return err
			}
			c, err := m.CalculateAtmosphereValue(v)
			if err != nil {
				return err
			}
			h, _ := atmosphere.CheckNumeric("geometric_height_meters", v)
			layer, _ := atmosphere.LayerAtGeometricHeight(h)
			speedOfSound := atmosphere.SpeedOfSound(c.Temperature)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out,
				"altitude %.1f m (%s)\npressure %.6g Pa\ntemperature %.6g K\ndensity %.6g kg/m³\nspeed of sound %.2f m/s\n",
				h, layer.Name, c.Pressure, c.Temperature, c.Density, speedOfSound)
			fmt.Fprintf(out, "pressure ratio %.6f\ndensity ratio %.6f\n",
				atmosphere.PressureRatio(c), atmosphere.DensityRatio(c))

			if cmd.Flags().Changed("tas") {
				fmt.Fprintf(out, "true airspeed %.2f m/s: mach %.3f, equivalent airspeed %.2f m/s\n",
					tas, atmosphere.Mach(tas, c), atmosphere.EquivalentAirspeed(tas, c))
			}
			if cmd.Flags().Changed("eas") {
				fmt.Fprintf(out, "equivalent airspeed %.2f m/s: true airspeed %.2f m/s\n",
					eas, atmosphere.TrueAirspeed(eas, c))
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&tas, "tas", 0, "True airspeed (m/s) to convert to Mach and equivalent airspeed")
	cmd.Flags().Float64Var(&eas, "eas", 0, "Equivalent airspeed (m/s) to convert to true airspeed")
	return cmd
}
