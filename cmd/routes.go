package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/routelab/dvr/core"
	"github.com/routelab/dvr/state"
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes [address]",
	Short: "Print the routing table of a running node",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			_ = cmd.Usage()
			return
		}
		addr := args[0]

		client := &http.Client{Timeout: state.SendTimeout}
		resp, err := client.Get("http://" + addr + "/routes")
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not reach %s: %v\n", addr, err)
			os.Exit(1)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Fprintf(os.Stderr, "%s responded %s\n", addr, resp.Status)
			os.Exit(1)
		}

		var status core.StatusResponse
		if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
			fmt.Fprintf(os.Stderr, "bad response from %s: %v\n", addr, err)
			os.Exit(1)
		}

		fmt.Printf("router %s network %s interval %ds\n",
			status.Router.Address, status.Router.Network, status.Router.UpdateInterval)
		for _, n := range status.Neighbors {
			liveness := "alive"
			if !n.Alive {
				liveness = "silent"
			}
			fmt.Printf("neighbor %s cost %d (%s)\n", n.Address, n.LinkCost, liveness)
		}
		fmt.Println()

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DESTINATION\tCOST\tNEXT HOP")
		for _, row := range status.RoutingTable {
			fmt.Fprintf(w, "%s\t%d\t%s\n", row.Destination, row.Cost, row.NextHop)
		}
		_ = w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
