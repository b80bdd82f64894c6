package impl

import (
	"fmt"
	"log/slog"
	"net"
	"net/netip"

	"github.com/cilium/cilium/pkg/ip"
	"github.com/routelab/dvr/state"
)

// Summarize collapses the parseable networks of a snapshot into their
// minimal covering set before transmission. A covering block that
// matches an original key keeps its entry; a synthetic aggregate gets
// the minimum cost of the entries it subsumes and the aggregate
// next-hop marker, which receivers never read back. Opaque keys pass
// through untouched.
//
// If the collapse fails for any reason the untouched snapshot is sent
// instead; summarization is an optimization, never a reason to skip a
// broadcast.
func Summarize(log *slog.Logger, snapshot map[string]Entry) map[string]Entry {
	out, err := collapse(snapshot)
	if err != nil {
		log.Warn("could not summarize routes, sending full table", "err", err)
		return snapshot
	}
	return out
}

// coalesceCIDRs is swappable so tests can force the fallback path.
var coalesceCIDRs = ip.CoalesceCIDRs

func collapse(snapshot map[string]Entry) (map[string]Entry, error) {
	parsed := make(map[netip.Prefix]Entry)
	prefixes := make([]netip.Prefix, 0, len(snapshot))
	out := make(map[string]Entry)

	for key, e := range snapshot {
		p, ok := parseNetworkKey(key)
		if !ok {
			out[key] = e
			continue
		}
		parsed[p] = e
		prefixes = append(prefixes, p)
	}

	v4, v6 := coalesceCIDRs(toIPNets(prefixes))
	covering, err := fromIPNets(append(v4, v6...))
	if err != nil {
		return nil, err
	}

	for _, cover := range covering {
		if e, ok := parsed[cover]; ok {
			out[cover.String()] = e
			continue
		}
		minCost, found := -1, false
		for p, e := range parsed {
			if covers(cover, p) && (!found || e.Cost < minCost) {
				minCost, found = e.Cost, true
			}
		}
		if !found {
			return nil, fmt.Errorf("aggregate %s has no constituents", cover)
		}
		out[cover.String()] = Entry{Cost: minCost, NextHop: state.AggregateNextHop}
	}
	return out, nil
}

func covers(outer, inner netip.Prefix) bool {
	return outer.Bits() <= inner.Bits() && outer.Contains(inner.Addr())
}

func toIPNets(prefixes []netip.Prefix) []*net.IPNet {
	nets := make([]*net.IPNet, 0, len(prefixes))
	for _, p := range prefixes {
		if p.IsValid() {
			nets = append(nets, &net.IPNet{
				IP:   p.Addr().AsSlice(),
				Mask: net.CIDRMask(p.Bits(), p.Addr().BitLen()),
			})
		}
	}
	return nets
}

func fromIPNets(nets []*net.IPNet) ([]netip.Prefix, error) {
	output := make([]netip.Prefix, 0, len(nets))
	for _, n := range nets {
		addr, ok := netip.AddrFromSlice(n.IP)
		if !ok {
			return nil, fmt.Errorf("invalid address in %v", n)
		}
		ones, _ := n.Mask.Size()
		output = append(output, netip.PrefixFrom(addr.Unmap(), ones))
	}
	return output, nil
}
