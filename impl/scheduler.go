package impl

import (
	"context"
	"time"

	"github.com/routelab/dvr/state"
)

// Scheduler periodically pushes a summarized snapshot of the table to
// every neighbor.
type Scheduler struct {
	env       *state.Env
	table     *Table
	transport Transport
}

func NewScheduler(env *state.Env, table *Table, transport Transport) *Scheduler {
	return &Scheduler{env: env, table: table, transport: transport}
}

// Run blocks until the environment context is cancelled. One full
// interval elapses before the first broadcast.
func (u *Scheduler) Run() {
	for u.env.Context.Err() == nil {
		select {
		case <-u.env.Context.Done():
			return
		case <-time.After(u.env.Interval()):
		}
		u.broadcast()
	}
}

// broadcast sends the summarized table to each neighbor independently.
// A failure for one neighbor is logged and does not abort delivery to
// the rest; the snapshot is taken before any send so the lock is never
// held across the network.
func (u *Scheduler) broadcast() {
	snapshot := u.table.Snapshot()
	payload := UpdatePayload{
		SenderAddress: u.env.Address,
		RoutingTable:  Summarize(u.env.Log, snapshot),
	}
	for _, neighbor := range u.env.NeighborAddrs() {
		ctx, cancel := context.WithTimeout(u.env.Context, state.SendTimeout)
		err := u.transport.SendUpdate(ctx, neighbor, payload)
		cancel()
		if err != nil {
			u.env.Log.Warn("could not deliver update", "neighbor", neighbor, "err", err)
			continue
		}
		u.env.Log.Debug("sent update", "neighbor", neighbor, "entries", len(payload.RoutingTable))
	}
}
