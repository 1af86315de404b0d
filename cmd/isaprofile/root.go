package main

import (
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"isa-explorer/internal/config"
	"isa-explorer/pkg/atmosphere"
)

type options struct {
	seaLevelTemperature float64
	envFile             string

	from, to, step float64
	outDir         string
}

// model builds the atmosphere for a run; an explicit flag beats the environment.
func (o *options) model(cmd *cobra.Command) (*atmosphere.Model, error) {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return nil, err
	}
	log.SetLevel(cfg.LogLevel)

	t := cfg.SeaLevelTemperature
	if cmd.Flags().Changed("sea-level-temperature") {
		t = o.seaLevelTemperature
	}
	log.Debugf("isaprofile: sea-level temperature %.2f K", t)
	return atmosphere.NewModel(t), nil
}

// sweepFlags is shared by every command that walks a range of altitudes.
func sweepFlags(o *options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("sweep", pflag.ContinueOnError)
	fs.Float64Var(&o.from, "from", atmosphere.MinAltitude, "Lowest geometric altitude (m)")
	fs.Float64Var(&o.to, "to", atmosphere.MaxAltitude, "Highest geometric altitude (m)")
	fs.Float64Var(&o.step, "step", 1000, "Altitude spacing (m)")
	return fs
}

func newRootCmd() *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:   "isaprofile",
		Short: "International Standard Atmosphere tables and charts",
		Long: `isaprofile evaluates the International Standard Atmosphere between
0 and 80 km, optionally for a non-standard sea-level temperature.

Settings are read from ISA_* environment variables (and a .env file);
flags take precedence.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().Float64Var(&o.seaLevelTemperature, "sea-level-temperature",
		atmosphere.StandardSeaLevelTemperature, "Sea-level temperature (K) for non-standard days")
	root.PersistentFlags().StringVar(&o.envFile, "env-file", ".env", "Optional dotenv file with ISA_* settings")

	sweep := sweepFlags(o)
	root.AddCommand(newTableCmd(o, sweep), newPlotCmd(o, sweep), newQueryCmd(o))
	return root
}
