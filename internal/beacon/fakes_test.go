package beacon

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"portal-beacon/internal/consensus"
	"portal-beacon/internal/overlay"
	"portal-beacon/internal/types"
)

// fakeOverlay is a programmable overlay handle. Zero value answers
// everything with empty results; tests set the fields they care about.
type fakeOverlay struct {
	localEnr types.Enr
	radius   types.Distance

	addEnrErr    error
	getEnrResult types.Enr
	getEnrErr    error
	deleted      bool
	lookupEnr    types.Enr
	lookupEnrErr error

	lookupContentCalls  int
	lookupContentResult *overlay.ContentResult
	lookupContentErr    error

	lookupNodeResult []types.Enr

	findContentContent overlay.Content
	findContentUtp     bool
	findContentErr     error

	findNodesResult overlay.Nodes
	findNodesErr    error

	offerAccept overlay.Accept
	offerErr    error

	pong    overlay.Pong
	pongErr error

	gossipCount int
	gossipTrace overlay.TraceGossipInfo

	gossiped []overlay.GossipItem
}

func (f *fakeOverlay) LocalEnr() types.Enr { return f.localEnr }

func (f *fakeOverlay) DataRadius() types.Distance { return f.radius }

func (f *fakeOverlay) AddEnr(types.Enr) error { return f.addEnrErr }

func (f *fakeOverlay) DeleteEnr(types.NodeID) bool { return f.deleted }

func (f *fakeOverlay) GetEnr(types.NodeID) (types.Enr, error) {
	return f.getEnrResult, f.getEnrErr
}

func (f *fakeOverlay) LookupEnr(context.Context, types.NodeID) (types.Enr, error) {
	return f.lookupEnr, f.lookupEnrErr
}

func (f *fakeOverlay) RoutingTableInfo() overlay.RoutingTableInfo {
	return overlay.RoutingTableInfo{
		LocalNodeID: f.localEnr.NodeID(),
		Buckets:     []overlay.BucketInfo{},
	}
}

func (f *fakeOverlay) LookupContent(_ context.Context, _ types.ContentKey, _ bool) (*overlay.ContentResult, error) {
	f.lookupContentCalls++
	return f.lookupContentResult, f.lookupContentErr
}

func (f *fakeOverlay) LookupNode(context.Context, types.NodeID) []types.Enr {
	return f.lookupNodeResult
}

func (f *fakeOverlay) SendFindContent(context.Context, types.Enr, types.ContentKey) (overlay.Content, bool, error) {
	return f.findContentContent, f.findContentUtp, f.findContentErr
}

func (f *fakeOverlay) SendFindNodes(context.Context, types.Enr, []uint16) (overlay.Nodes, error) {
	return f.findNodesResult, f.findNodesErr
}

func (f *fakeOverlay) SendOffer(context.Context, types.Enr, types.ContentKey, []byte) (overlay.Accept, error) {
	return f.offerAccept, f.offerErr
}

func (f *fakeOverlay) SendWireOffer(context.Context, types.Enr, []types.ContentKey) (overlay.Accept, error) {
	return f.offerAccept, f.offerErr
}

func (f *fakeOverlay) SendPing(context.Context, types.Enr) (overlay.Pong, error) {
	return f.pong, f.pongErr
}

func (f *fakeOverlay) PropagateGossip(items []overlay.GossipItem) int {
	f.gossiped = append(f.gossiped, items...)
	return f.gossipCount
}

func (f *fakeOverlay) PropagateGossipTrace(context.Context, types.ContentKey, []byte) overlay.TraceGossipInfo {
	return f.gossipTrace
}

var _ overlay.Overlay = (*fakeOverlay)(nil)

// fakeBeaconClient serves canned headers.
type fakeBeaconClient struct {
	header    consensus.LightHeader
	finalized consensus.LightHeader
	err       error
}

func (f *fakeBeaconClient) GetHeader(context.Context) (consensus.LightHeader, error) {
	return f.header, f.err
}

func (f *fakeBeaconClient) GetFinalizedHeader(context.Context) (consensus.LightHeader, error) {
	return f.finalized, f.err
}

func testEnr(t *testing.T, seq uint64) types.Enr {
	t.Helper()
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	enr, err := types.SignEnr(priv, seq, "127.0.0.1", 9000, 0)
	if err != nil {
		t.Fatalf("sign enr: %v", err)
	}
	return enr
}

// errStore fails every operation; for exercising the database error paths.
type errStore struct {
	err error
}

func (s errStore) Get(types.ContentKey) ([]byte, bool, error) { return nil, false, s.err }
func (s errStore) Put(types.ContentKey, []byte) error         { return s.err }
func (s errStore) Paginate(uint64, uint64) (types.PaginateInfo, error) {
	return types.PaginateInfo{}, s.err
}
