package beacon

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"portal-beacon/internal/consensus"
	"portal-beacon/internal/overlay"
	"portal-beacon/internal/storage"
)

// Network bundles the collaborators one Beacon subnetwork request needs:
// the overlay engine, the guarded content store, and the optional beacon
// consensus client. A single Network is shared by every in-flight request.
type Network struct {
	Overlay overlay.Overlay
	Store   *storage.GuardedStore

	clientMu sync.Mutex
	client   consensus.Client

	// Concurrent header fetches collapse into one upstream call; the
	// consensus client is not assumed reentrant.
	headerFlights singleflight.Group
}

type Option func(*Network)

func WithBeaconClient(c consensus.Client) Option {
	return func(n *Network) { n.client = c }
}

func NewNetwork(ov overlay.Overlay, store storage.ContentStore, opts ...Option) *Network {
	n := &Network{
		Overlay: ov,
		Store:   storage.NewGuardedStore(store),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// SetBeaconClient installs the consensus client once it has started.
func (n *Network) SetBeaconClient(c consensus.Client) {
	n.clientMu.Lock()
	n.client = c
	n.clientMu.Unlock()
}

func (n *Network) BeaconClient() consensus.Client {
	n.clientMu.Lock()
	defer n.clientMu.Unlock()
	return n.client
}

func (n *Network) getHeader(ctx context.Context, client consensus.Client, finalized bool) (consensus.LightHeader, error) {
	key := "optimistic"
	if finalized {
		key = "finalized"
	}
	v, err, _ := n.headerFlights.Do(key, func() (interface{}, error) {
		if finalized {
			return client.GetFinalizedHeader(ctx)
		}
		return client.GetHeader(ctx)
	})
	if err != nil {
		return consensus.LightHeader{}, err
	}
	return v.(consensus.LightHeader), nil
}
