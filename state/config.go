package state

import (
	"net/netip"
	"time"
)

// NeighborCfg describes one directly connected neighbor and the cost of
// the link to it.
type NeighborCfg struct {
	Address string `yaml:"address"`
	Cost    int    `yaml:"cost"`
}

// RouterCfg is the full node configuration. It is immutable after
// startup; link costs are never renegotiated at runtime.
type RouterCfg struct {
	Address        string        `yaml:"address"`
	Network        string        `yaml:"network"`
	UpdateInterval int           `yaml:"update_interval"` // seconds
	LogPath        string        `yaml:"log_path,omitempty"`
	Neighbors      []NeighborCfg `yaml:"neighbors"`
}

// Interval returns the periodic update interval as a duration.
func (c *RouterCfg) Interval() time.Duration {
	return time.Duration(c.UpdateInterval) * time.Second
}

// LinkCost returns the configured cost of the link to neighbor, or
// false if neighbor is not directly connected.
func (c *RouterCfg) LinkCost(neighbor string) (int, bool) {
	for _, n := range c.Neighbors {
		if n.Address == neighbor {
			return n.Cost, true
		}
	}
	return 0, false
}

func (c *RouterCfg) IsNeighbor(addr string) bool {
	_, ok := c.LinkCost(addr)
	return ok
}

func (c *RouterCfg) NeighborAddrs() []string {
	addrs := make([]string, 0, len(c.Neighbors))
	for _, n := range c.Neighbors {
		addrs = append(addrs, n.Address)
	}
	return addrs
}

// Prefix returns the administered network. Only valid after the config
// has passed validation.
func (c *RouterCfg) Prefix() netip.Prefix {
	return netip.MustParsePrefix(c.Network)
}
