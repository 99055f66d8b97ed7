package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/campanalytics/funnelboard/internal/config"
)

// Serve command flags
var (
	servePort     string
	serveSeed     int64
	serveRows     int
	serveScenario string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Funnelboard dashboard server",
	Long: `Start the Funnelboard dashboard server.

The serve command generates the session dataset and starts the web server
that runs the dashboard and its JSON API.

Configuration sources, highest priority first: flags, funnelboard.toml
(working directory or XDG config dir), environment variables.

Environment variables:
  PORT                  Server port (default: 3000)
  FUNNELBOARD_SEED      Dataset generator seed (default: 17)
  FUNNELBOARD_ROWS      Dataset row count (default: 6000)
  FUNNELBOARD_SCENARIO  Path to a YAML scenario overriding the funnel probabilities

Example:
  funnelboard serve --port 8080 --seed 17 --rows 6000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveDashboard(cmd.Flags())
	},
}

// serveOverrides translates parsed serve flags into config overrides.
// Changed("seed") distinguishes an explicit zero seed from an unset flag.
func serveOverrides(fs *pflag.FlagSet) config.Overrides {
	return config.Overrides{
		Port:         servePort,
		Seed:         serveSeed,
		SeedSet:      fs.Changed("seed"),
		Rows:         serveRows,
		ScenarioPath: serveScenario,
	}
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "server port")
	serveCmd.Flags().Int64Var(&serveSeed, "seed", 0, "dataset generator seed")
	serveCmd.Flags().IntVar(&serveRows, "rows", 0, "dataset row count")
	serveCmd.Flags().StringVar(&serveScenario, "scenario", "", "path to a YAML scenario file")
}
