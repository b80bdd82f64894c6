package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/routelab/dvr/state"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a starter node configuration",
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetUint16("port")

		cfg := state.RouterCfg{
			Address:        fmt.Sprintf("127.0.0.1:%d", port),
			Network:        "10.0.1.0/24",
			UpdateInterval: state.DefaultUpdateInterval,
			Neighbors: []state.NeighborCfg{
				{Address: "127.0.0.1:5001", Cost: 5},
			},
		}

		out, err := yaml.Marshal(&cfg)
		if err != nil {
			panic(err)
		}

		outPath := cmd.Flag("output").Value.String()
		err = os.WriteFile(outPath, out, 0644)
		if err != nil {
			panic(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringP("output", "o", state.DefaultConfigPath, "config output file path")
	newCmd.Flags().Uint16P("port", "p", 5000, "port the node will serve on")
}
