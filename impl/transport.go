package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/routelab/dvr/state"
)

// Transport delivers a table snapshot to one neighbor. Delivery is
// fire-and-forget; a failed send is retried implicitly on the next
// periodic cycle.
type Transport interface {
	SendUpdate(ctx context.Context, neighbor string, payload UpdatePayload) error
}

// HTTPTransport posts updates to a neighbor's /receive_update
// endpoint.
type HTTPTransport struct {
	Client *http.Client
}

func NewHTTPTransport() *HTTPTransport {
	return &HTTPTransport{Client: &http.Client{Timeout: state.SendTimeout}}
}

func (t *HTTPTransport) SendUpdate(ctx context.Context, neighbor string, payload UpdatePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		"http://"+neighbor+"/receive_update", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := t.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("neighbor %s responded %s", neighbor, resp.Status)
	}
	return nil
}
