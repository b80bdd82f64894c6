package impl

import (
	"testing"

	"github.com/routelab/dvr/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type simNode struct {
	env   *state.Env
	table *Table
	recv  *Receiver
}

func newSimNode(address, network string, neighbors ...state.NeighborCfg) *simNode {
	env := testEnv(&state.RouterCfg{
		Address:        address,
		Network:        network,
		UpdateInterval: 1,
		Neighbors:      neighbors,
	})
	table := NewTable(&env.RouterCfg)
	return &simNode{env: env, table: table, recv: NewReceiver(env, table)}
}

// exchangeRound plays one synchronous broadcast round: every node
// summarizes its table and delivers it to each of its neighbors.
func exchangeRound(t *testing.T, nodes map[string]*simNode) {
	t.Helper()
	for _, n := range nodes {
		payload := UpdatePayload{
			SenderAddress: n.env.Address,
			RoutingTable:  Summarize(n.env.Log, n.table.Snapshot()),
		}
		for _, neighbor := range n.env.NeighborAddrs() {
			_, err := nodes[neighbor].recv.Receive(payload)
			require.NoError(t, err)
		}
	}
}

func TestLineTopologyConvergence(t *testing.T) {
	const (
		addrA = "127.0.0.1:6001"
		addrB = "127.0.0.1:6002"
		addrC = "127.0.0.1:6003"
	)

	// A - B - C in a line, both links cost 5, no direct A-C link. The
	// administered networks are deliberately not sibling blocks so the
	// per-node summarization leaves them distinct.
	a := newSimNode(addrA, "10.0.1.0/24", state.NeighborCfg{Address: addrB, Cost: 5})
	b := newSimNode(addrB, "10.0.2.0/24",
		state.NeighborCfg{Address: addrA, Cost: 5},
		state.NeighborCfg{Address: addrC, Cost: 5})
	c := newSimNode(addrC, "10.0.4.0/24", state.NeighborCfg{Address: addrB, Cost: 5})

	nodes := map[string]*simNode{addrA: a, addrB: b, addrC: c}

	for range 4 {
		exchangeRound(t, nodes)
	}

	snapA := a.table.Snapshot()
	require.Contains(t, snapA, "10.0.4.0/24")
	assert.Equal(t, Entry{Cost: 10, NextHop: addrB}, snapA["10.0.4.0/24"],
		"A should reach C's network at cost 10 via B")
	assert.Equal(t, Entry{Cost: 5, NextHop: addrB}, snapA["10.0.2.0/24"])

	snapC := c.table.Snapshot()
	require.Contains(t, snapC, "10.0.1.0/24")
	assert.Equal(t, Entry{Cost: 10, NextHop: addrB}, snapC["10.0.1.0/24"],
		"C should reach A's network at cost 10 via B")

	// B reaches both edges directly
	snapB := b.table.Snapshot()
	assert.Equal(t, Entry{Cost: 5, NextHop: addrA}, snapB["10.0.1.0/24"])
	assert.Equal(t, Entry{Cost: 5, NextHop: addrC}, snapB["10.0.4.0/24"])
}

func TestConvergenceIsStableAcrossExtraRounds(t *testing.T) {
	const (
		addrA = "127.0.0.1:6001"
		addrB = "127.0.0.1:6002"
	)
	a := newSimNode(addrA, "10.0.1.0/24", state.NeighborCfg{Address: addrB, Cost: 3})
	b := newSimNode(addrB, "10.0.2.0/24", state.NeighborCfg{Address: addrA, Cost: 3})
	nodes := map[string]*simNode{addrA: a, addrB: b}

	// Opaque neighbor-address keys keep re-affirming each other at
	// growing cost (there is no withdrawal or split horizon), so only
	// the network entries are expected to settle.
	networks := func(snap map[string]Entry) map[string]Entry {
		out := make(map[string]Entry)
		for k, v := range snap {
			if _, ok := parseNetworkKey(k); ok {
				out[k] = v
			}
		}
		return out
	}

	for range 3 {
		exchangeRound(t, nodes)
	}
	settled := networks(a.table.Snapshot())

	for range 3 {
		exchangeRound(t, nodes)
	}
	assert.Equal(t, settled, networks(a.table.Snapshot()))
}
