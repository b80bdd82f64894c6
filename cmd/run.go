package cmd

import (
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/routelab/dvr/core"
	"github.com/routelab/dvr/state"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a router node",
	Long:  `This will run a router node on the current host, serving updates on the configured address.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg state.RouterCfg
		file, err := os.ReadFile(configPath)
		if err != nil {
			panic(err)
		}
		err = yaml.Unmarshal(file, &cfg)
		if err != nil {
			panic(err)
		}

		if cfg.UpdateInterval == 0 {
			cfg.UpdateInterval = state.DefaultUpdateInterval
		}
		err = state.RouterConfigValidator(&cfg)
		if err != nil {
			panic(err)
		}

		level := slog.LevelInfo
		if ok, _ := cmd.Flags().GetBool("verbose"); ok {
			level = slog.LevelDebug
		}

		err = core.Start(cfg, level)
		if err != nil {
			panic(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
}
