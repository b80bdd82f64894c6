package impl

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/routelab/dvr/state"
)

// Receiver validates inbound updates and merges them into the table.
// It also remembers which neighbors have been heard from recently, so
// the status query can report a liveness flag.
type Receiver struct {
	env   *state.Env
	table *Table
	seen  *ttlcache.Cache[string, time.Time]
}

func NewReceiver(env *state.Env, table *Table) *Receiver {
	// no background cleanup goroutine: Get already treats expired
	// items as absent, and Alive is the only reader
	ttl := time.Duration(state.LivenessIntervals) * env.Interval()
	seen := ttlcache.New[string, time.Time](
		ttlcache.WithTTL[string, time.Time](ttl),
		ttlcache.WithDisableTouchOnHit[string, time.Time](),
	)
	return &Receiver{env: env, table: table, seen: seen}
}

// Receive applies one inbound update and reports whether the table
// changed.
func (r *Receiver) Receive(p UpdatePayload) (bool, error) {
	if p.SenderAddress == "" || p.RoutingTable == nil {
		return false, ErrMalformedPayload
	}
	changed, err := r.table.Merge(&r.env.RouterCfg, p.SenderAddress, p.RoutingTable)
	if err != nil {
		return false, err
	}
	r.seen.Set(p.SenderAddress, time.Now(), ttlcache.DefaultTTL)
	if changed {
		r.env.Log.Info("routing table updated", "from", p.SenderAddress, "entries", r.table.Len())
	} else {
		r.env.Log.Debug("update brought no changes", "from", p.SenderAddress)
	}
	return changed, nil
}

// Alive reports whether an update from neighbor arrived within the
// liveness window.
func (r *Receiver) Alive(neighbor string) bool {
	return r.seen.Get(neighbor) != nil
}
