package state

import (
	"context"
	"log/slog"
)

// Env bundles the pieces every component needs: the node configuration,
// the lifetime context and the logger. It is created once at startup
// and shared by reference.
type Env struct {
	RouterCfg
	Context context.Context
	Cancel  context.CancelCauseFunc
	Log     *slog.Logger
}
