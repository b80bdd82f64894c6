package impl

import (
	"maps"
	"net/netip"
	"sync"

	"github.com/gaissmai/bart"
	"github.com/routelab/dvr/state"
)

// Entry is one routing table row: the cost to reach a destination and
// the neighbor it is reached through.
type Entry struct {
	Cost    int    `json:"cost"`
	NextHop string `json:"next_hop"`
}

// Table maps destination keys to entries. Keys are usually CIDR
// prefixes, but any string a neighbor advertises is kept verbatim; a
// key that does not parse as a network is treated as opaque and is
// never summarized. Entries are only ever inserted or replaced, never
// removed.
//
// The table is shared between the scheduler and the inbound request
// handlers. All access goes through Snapshot, Merge and Lookup, which
// take the table lock; the lock is never held across a network send.
type Table struct {
	mu      sync.Mutex
	entries map[string]Entry
	fwd     bart.Table[string] // parseable destinations, for longest-prefix match
}

// NewTable seeds the table with the administered network (cost 0, next
// hop self) and one entry per neighbor at its configured link cost.
func NewTable(cfg *state.RouterCfg) *Table {
	t := &Table{entries: make(map[string]Entry)}
	t.set(cfg.Network, Entry{Cost: 0, NextHop: cfg.Address})
	for _, n := range cfg.Neighbors {
		t.set(n.Address, Entry{Cost: n.Cost, NextHop: n.Address})
	}
	return t
}

// set must be called with the lock held (or before the table is
// shared).
func (t *Table) set(key string, e Entry) {
	t.entries[key] = e
	if p, ok := parseNetworkKey(key); ok {
		t.fwd.Insert(p, key)
	}
}

// Snapshot returns a copy of the table, taken under the lock so that a
// send never races with an in-flight merge.
func (t *Table) Snapshot() map[string]Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return maps.Clone(t.entries)
}

func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Lookup resolves the entry whose network most specifically contains
// addr. Opaque keys never match.
func (t *Table) Lookup(addr netip.Addr) (string, Entry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	key, ok := t.fwd.Lookup(addr)
	if !ok {
		return "", Entry{}, false
	}
	return key, t.entries[key], true
}

// parseNetworkKey interprets a table key as a network. Bare addresses
// count as host prefixes; anything else is opaque.
func parseNetworkKey(key string) (netip.Prefix, bool) {
	if p, err := netip.ParsePrefix(key); err == nil {
		return p.Masked(), true
	}
	if a, err := netip.ParseAddr(key); err == nil {
		return netip.PrefixFrom(a, a.BitLen()), true
	}
	return netip.Prefix{}, false
}
