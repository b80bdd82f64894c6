package impl

import (
	"errors"
	"fmt"

	"github.com/routelab/dvr/state"
)

var (
	ErrUnknownNeighbor  = errors.New("sender is not a direct neighbor")
	ErrMalformedPayload = errors.New("missing sender_address or routing_table")
)

// Merge applies a neighbor's advertised table to the local one using
// Bellman-Ford relaxation. For each advertised destination the
// candidate cost is the link cost to the sender plus the advertised
// cost. The entry is replaced when the destination is new, when the
// candidate is strictly cheaper, or when the current route already
// goes through the sender (re-affirmation: the old cost may be stale,
// so the sender's word wins even if the cost went up).
//
// The advertised next_hop field is never consulted; the sender is
// always recorded as the way to reach the destination. Entries are
// never removed.
func (t *Table) Merge(cfg *state.RouterCfg, sender string, senderTable map[string]Entry) (bool, error) {
	linkCost, ok := cfg.LinkCost(sender)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownNeighbor, sender)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	changed := false
	for network, adv := range senderTable {
		candidate := linkCost + adv.Cost
		cur, exists := t.entries[network]
		if !exists || candidate < cur.Cost || cur.NextHop == sender {
			t.set(network, Entry{Cost: candidate, NextHop: sender})
			changed = true
		}
	}
	return changed, nil
}
