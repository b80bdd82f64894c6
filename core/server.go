package core

import (
	"maps"
	"net/http"
	"net/netip"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/routelab/dvr/impl"
	"github.com/routelab/dvr/state"
)

type RouterInfo struct {
	Address        string `json:"address"`
	Network        string `json:"network"`
	UpdateInterval int    `json:"update_interval"`
}

type NeighborInfo struct {
	Address  string `json:"address"`
	LinkCost int    `json:"link_cost"`
	Alive    bool   `json:"alive"`
}

type RouteRow struct {
	Destination string `json:"destination"`
	Cost        int    `json:"cost"`
	NextHop     string `json:"next_hop"`
}

type StatusResponse struct {
	Router       RouterInfo     `json:"router"`
	Neighbors    []NeighborInfo `json:"neighbors"`
	RoutingTable []RouteRow     `json:"routing_table"`
}

// NewHandler builds the node's HTTP surface: the inbound update
// endpoint, the status query and a route lookup.
func NewHandler(env *state.Env, table *impl.Table, receiver *impl.Receiver) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/receive_update", func(c *gin.Context) {
		var payload impl.UpdatePayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": impl.ErrMalformedPayload.Error()})
			return
		}
		changed, err := receiver.Receive(payload)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "changed": changed})
	})

	r.GET("/routes", func(c *gin.Context) {
		resp := StatusResponse{
			Router: RouterInfo{
				Address:        env.Address,
				Network:        env.Network,
				UpdateInterval: env.UpdateInterval,
			},
			Neighbors:    make([]NeighborInfo, 0, len(env.Neighbors)),
			RoutingTable: make([]RouteRow, 0, table.Len()),
		}
		for _, n := range env.Neighbors {
			resp.Neighbors = append(resp.Neighbors, NeighborInfo{
				Address:  n.Address,
				LinkCost: n.Cost,
				Alive:    receiver.Alive(n.Address),
			})
		}
		snapshot := table.Snapshot()
		for _, dest := range slices.Sorted(maps.Keys(snapshot)) {
			e := snapshot[dest]
			resp.RoutingTable = append(resp.RoutingTable, RouteRow{
				Destination: dest,
				Cost:        e.Cost,
				NextHop:     e.NextHop,
			})
		}
		c.JSON(http.StatusOK, resp)
	})

	r.GET("/lookup", func(c *gin.Context) {
		addr, err := netip.ParseAddr(c.Query("ip"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ip must be a valid address"})
			return
		}
		dest, entry, ok := table.Lookup(addr)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "no route"})
			return
		}
		c.JSON(http.StatusOK, RouteRow{Destination: dest, Cost: entry.Cost, NextHop: entry.NextHop})
	})

	return r
}
