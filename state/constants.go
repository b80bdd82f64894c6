package state

import "time"

var (
	// SendTimeout bounds a single update delivery to a neighbor. A send
	// that exceeds it is treated as a transport failure and retried
	// implicitly on the next cycle.
	SendTimeout = time.Second * 5

	// LivenessIntervals is the number of update intervals without an
	// inbound update after which a neighbor is reported as not alive.
	LivenessIntervals = 3

	DefaultUpdateInterval = 10

	DefaultConfigPath = "node.yaml"
)

// AggregateNextHop is written as the next hop of synthetic summary
// entries. It is informational only; receivers always record the
// sender as next hop and never read the transmitted value.
const AggregateNextHop = "summarized"
