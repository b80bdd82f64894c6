package cmd

import (
	"os"

	"github.com/routelab/dvr/state"
	"github.com/spf13/cobra"
)

var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dvr",
	Short: "Distance-vector router simulator",
	Long: `dvr simulates a single node of a distance-vector routing protocol.
Nodes exchange summarized routing tables with their direct neighbors and
converge toward shortest-cost paths via Bellman-Ford relaxation.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", state.DefaultConfigPath, "node configuration file")
}
