package impl

// UpdatePayload is the wire format exchanged between nodes: the
// sender's own address and its (summarized) routing table.
type UpdatePayload struct {
	SenderAddress string           `json:"sender_address"`
	RoutingTable  map[string]Entry `json:"routing_table"`
}
