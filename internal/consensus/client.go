package consensus

import (
	"context"

	"portal-beacon/internal/types"
)

// Client is a handle to a beacon consensus follower. Optional: a node can
// run without one, in which case the state-root endpoints report it absent.
type Client interface {
	// GetHeader returns the latest optimistic header.
	GetHeader(ctx context.Context) (LightHeader, error)

	// GetFinalizedHeader returns the latest finalized header.
	GetFinalizedHeader(ctx context.Context) (LightHeader, error)
}

// LightHeader is the consensus-layer beacon block header.
type LightHeader struct {
	Slot          uint64        `json:"slot"`
	ProposerIndex uint64        `json:"proposer_index"`
	ParentRoot    types.Bytes32 `json:"parent_root"`
	StateRoot     types.Bytes32 `json:"state_root"`
	BodyRoot      types.Bytes32 `json:"body_root"`
}
