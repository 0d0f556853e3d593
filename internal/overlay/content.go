package overlay

import "portal-beacon/internal/types"

// Content is the three-armed FOUNDCONTENT payload: a uTP connection id for
// a follow-up transfer, the raw content itself, or a list of closer peers.
type Content interface {
	isContent()
}

type ContentConnectionID uint16

type ContentPayload []byte

type ContentEnrs []types.Enr

func (ContentConnectionID) isContent() {}
func (ContentPayload) isContent()      {}
func (ContentEnrs) isContent()         {}

// Nodes is a FIND_NODES response.
type Nodes struct {
	Total uint8
	Enrs  []types.Enr
}

// Accept is an OFFER response: which keys the peer wants, and the uTP
// connection id for the transfer.
type Accept struct {
	ConnectionID uint16
	ContentKeys  types.Bitlist
}

// Pong carries the peer's record sequence number and its radius as the
// little-endian custom payload.
type Pong struct {
	EnrSeq        uint64
	CustomPayload []byte
}

// TraceGossipInfo reports per-peer outcomes of a traced gossip round.
type TraceGossipInfo struct {
	Offered     []string `json:"offered"`
	Accepted    []string `json:"accepted"`
	Transferred []string `json:"transferred"`
}

// RoutingTableInfo is a serializable snapshot of the overlay routing table.
type RoutingTableInfo struct {
	LocalNodeID types.NodeID `json:"localNodeId"`
	Buckets     []BucketInfo `json:"buckets"`
}

type BucketInfo struct {
	Index int          `json:"index"`
	Peers []BucketPeer `json:"peers"`
}

type BucketPeer struct {
	NodeID types.NodeID   `json:"nodeId"`
	Enr    types.Enr      `json:"enr"`
	Radius types.Distance `json:"radius"`
}
