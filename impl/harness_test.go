package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/routelab/dvr/state"
)

func testCfg() *state.RouterCfg {
	return &state.RouterCfg{
		Address:        "127.0.0.1:5000",
		Network:        "10.0.1.0/24",
		UpdateInterval: 1,
		Neighbors: []state.NeighborCfg{
			{Address: "127.0.0.1:5001", Cost: 5},
			{Address: "127.0.0.1:5002", Cost: 10},
		},
	}
}

func testEnv(cfg *state.RouterCfg) *state.Env {
	ctx, cancel := context.WithCancelCause(context.Background())
	return &state.Env{
		RouterCfg: *cfg,
		Context:   ctx,
		Cancel:    cancel,
		Log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// captureTransport records deliveries in memory and can be told to
// fail for specific neighbors.
type captureTransport struct {
	mu       sync.Mutex
	sent     []string
	payloads map[string]UpdatePayload
	fail     map[string]error
}

func newCaptureTransport() *captureTransport {
	return &captureTransport{
		payloads: make(map[string]UpdatePayload),
		fail:     make(map[string]error),
	}
}

func (c *captureTransport) SendUpdate(_ context.Context, neighbor string, payload UpdatePayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.fail[neighbor]; err != nil {
		return err
	}
	c.sent = append(c.sent, neighbor)
	c.payloads[neighbor] = payload
	return nil
}

func (c *captureTransport) delivered() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.sent))
	copy(out, c.sent)
	return out
}
