package state

import (
	"strings"
	"testing"
)

func validCfg() RouterCfg {
	return RouterCfg{
		Address:        "127.0.0.1:5000",
		Network:        "10.0.1.0/24",
		UpdateInterval: 10,
		Neighbors: []NeighborCfg{
			{Address: "127.0.0.1:5001", Cost: 5},
		},
	}
}

func TestRouterConfigValidator(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RouterCfg)
		wantErr string
	}{
		{"valid", func(c *RouterCfg) {}, ""},
		{"no neighbors is valid", func(c *RouterCfg) { c.Neighbors = nil }, ""},
		{"bad address", func(c *RouterCfg) { c.Address = "localhost" }, "host:port"},
		{"bad network", func(c *RouterCfg) { c.Network = "10.0.1.0/33" }, "prefix"},
		{"zero interval", func(c *RouterCfg) { c.UpdateInterval = 0 }, "update_interval"},
		{"negative interval", func(c *RouterCfg) { c.UpdateInterval = -1 }, "update_interval"},
		{"bad neighbor address", func(c *RouterCfg) { c.Neighbors[0].Address = "10.0.0.1" }, "host:port"},
		{"self neighbor", func(c *RouterCfg) { c.Neighbors[0].Address = c.Address }, "itself"},
		{"zero cost", func(c *RouterCfg) { c.Neighbors[0].Cost = 0 }, "cost"},
		{"duplicate neighbor", func(c *RouterCfg) {
			c.Neighbors = append(c.Neighbors, c.Neighbors[0])
		}, "duplicate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validCfg()
			tt.mutate(&cfg)
			err := RouterConfigValidator(&cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid config, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
