package types

import "time"

// QueryTrace records the progress of one recursive lookup: where it started,
// which peers answered with what, and which peer finally served the content.
type QueryTrace struct {
	Origin       NodeID                   `json:"origin"`
	TargetID     Bytes32                  `json:"targetId"`
	ReceivedFrom *NodeID                  `json:"receivedFrom"`
	StartedAtMs  uint64                   `json:"startedAtMs"`
	Responses    map[NodeID]QueryResponse `json:"responses"`
	Metadata     map[NodeID]QueryNodeInfo `json:"metadata"`
	Cancelled    []NodeID                 `json:"cancelled"`
}

// QueryResponse is one peer's answer during a lookup.
type QueryResponse struct {
	DurationMs    uint64   `json:"durationMs"`
	RespondedWith []NodeID `json:"respondedWith"`
}

// QueryNodeInfo describes a peer seen during a lookup.
type QueryNodeInfo struct {
	Enr      Enr      `json:"enr"`
	Distance Distance `json:"distance"`
}

// NewQueryTrace seeds a trace at the local node for the given target.
func NewQueryTrace(localEnr Enr, targetID Bytes32) *QueryTrace {
	origin := localEnr.NodeID()
	t := &QueryTrace{
		Origin:      origin,
		TargetID:    targetID,
		StartedAtMs: uint64(time.Now().UnixMilli()),
		Responses:   make(map[NodeID]QueryResponse),
		Metadata:    make(map[NodeID]QueryNodeInfo),
		Cancelled:   []NodeID{},
	}
	t.addMetadata(localEnr)
	return t
}

func (t *QueryTrace) addMetadata(enr Enr) {
	id := enr.NodeID()
	if _, ok := t.Metadata[id]; ok {
		return
	}
	t.Metadata[id] = QueryNodeInfo{
		Enr:      enr,
		Distance: Xor(NodeID(t.TargetID), id),
	}
}

func (t *QueryTrace) elapsedMs() uint64 {
	now := uint64(time.Now().UnixMilli())
	if now < t.StartedAtMs {
		return 0
	}
	return now - t.StartedAtMs
}

// NodeResponded records that enr answered with the given closer nodes.
func (t *QueryTrace) NodeResponded(enr Enr, respondedWith []NodeID) {
	t.addMetadata(enr)
	if respondedWith == nil {
		respondedWith = []NodeID{}
	}
	t.Responses[enr.NodeID()] = QueryResponse{
		DurationMs:    t.elapsedMs(),
		RespondedWith: respondedWith,
	}
}

// NodeRespondedWithContent records that enr served the content, ending the
// lookup at that peer.
func (t *QueryTrace) NodeRespondedWithContent(enr Enr) {
	t.NodeResponded(enr, nil)
	id := enr.NodeID()
	t.ReceivedFrom = &id
}

// NodeCancelled records a probe abandoned when the lookup finished early.
func (t *QueryTrace) NodeCancelled(id NodeID) {
	t.Cancelled = append(t.Cancelled, id)
}
