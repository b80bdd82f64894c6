package state

import (
	"fmt"
	"net/netip"
	"slices"
)

func BindValidator(s string) error {
	_, err := netip.ParseAddrPort(s)
	return err
}

func RouterConfigValidator(cfg *RouterCfg) error {
	if err := BindValidator(cfg.Address); err != nil {
		return fmt.Errorf("address %q is not a valid host:port: %w", cfg.Address, err)
	}
	if _, err := netip.ParsePrefix(cfg.Network); err != nil {
		return fmt.Errorf("network %q is not a valid prefix: %w", cfg.Network, err)
	}
	if cfg.UpdateInterval <= 0 {
		return fmt.Errorf("update_interval must be positive, got %d", cfg.UpdateInterval)
	}
	seen := make([]string, 0, len(cfg.Neighbors))
	for _, n := range cfg.Neighbors {
		if err := BindValidator(n.Address); err != nil {
			return fmt.Errorf("neighbor %q is not a valid host:port: %w", n.Address, err)
		}
		if n.Address == cfg.Address {
			return fmt.Errorf("neighbor %s is the node itself", n.Address)
		}
		if slices.Contains(seen, n.Address) {
			return fmt.Errorf("duplicate neighbor: %s", n.Address)
		}
		if n.Cost <= 0 {
			return fmt.Errorf("link cost to %s must be positive, got %d", n.Address, n.Cost)
		}
		seen = append(seen, n.Address)
	}
	return nil
}
