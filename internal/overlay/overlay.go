package overlay

import (
	"context"

	"portal-beacon/internal/types"
)

// Overlay is the handle to the routing table and wire protocol engine for
// one subnetwork. The engine itself lives outside this module; the
// dispatcher only consumes these capabilities. Implementations must be safe
// for concurrent use, the handle is shared across every in-flight request.
type Overlay interface {
	// LocalEnr returns this node's own signed record.
	LocalEnr() types.Enr

	// DataRadius is the node's current advertised storage radius.
	DataRadius() types.Distance

	// Routing table surface.
	AddEnr(enr types.Enr) error
	GetEnr(nodeID types.NodeID) (types.Enr, error)
	DeleteEnr(nodeID types.NodeID) bool
	LookupEnr(ctx context.Context, nodeID types.NodeID) (types.Enr, error)
	RoutingTableInfo() RoutingTableInfo

	// LookupContent runs a recursive content lookup. On failure the error
	// may be a *ContentNotFoundError (the lookup completed but no peer had
	// the content) or a transport-level error.
	LookupContent(ctx context.Context, key types.ContentKey, trace bool) (*ContentResult, error)

	// LookupNode runs a recursive node lookup and returns the closest ENRs.
	LookupNode(ctx context.Context, nodeID types.NodeID) []types.Enr

	// Direct peer operations.
	SendFindContent(ctx context.Context, enr types.Enr, key types.ContentKey) (Content, bool, error)
	SendFindNodes(ctx context.Context, enr types.Enr, distances []uint16) (Nodes, error)
	SendOffer(ctx context.Context, enr types.Enr, key types.ContentKey, value []byte) (Accept, error)
	SendWireOffer(ctx context.Context, enr types.Enr, keys []types.ContentKey) (Accept, error)
	SendPing(ctx context.Context, enr types.Enr) (Pong, error)

	// Gossip propagation. The untraced form enqueues transfers and returns
	// how many peers were offered content; the traced form waits for the
	// transfers and reports per-peer outcomes.
	PropagateGossip(items []GossipItem) int
	PropagateGossipTrace(ctx context.Context, key types.ContentKey, value []byte) TraceGossipInfo
}

// GossipItem is one (key, encoded value) pair queued for propagation.
type GossipItem struct {
	Key   types.ContentKey
	Value []byte
}

// ContentResult is a successful recursive content lookup.
type ContentResult struct {
	Content     []byte
	UtpTransfer bool
	Trace       *types.QueryTrace
}
