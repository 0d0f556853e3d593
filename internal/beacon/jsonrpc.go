package beacon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"portal-beacon/internal/overlay"
	"portal-beacon/internal/types"
)

// RequestHandler services Beacon network JSON-RPC requests. The router
// loop owns the intake channel; every request is handled on its own
// goroutine against the shared Network handle.
type RequestHandler struct {
	Network *Network
	RPC     <-chan Request
}

// HandleClientQueries drains the request channel until the producer closes
// it. In-flight handlers run to completion on their own.
func (h *RequestHandler) HandleClientQueries() {
	for req := range h.RPC {
		network := h.Network
		go completeRequest(network, req)
	}
}

// completeRequest generates a response for a given request and sends it on
// the request's reply channel. The channel is closed afterwards, whether or
// not a reply was produced: a panicking handler leaves the client with a
// closed channel and no message.
func completeRequest(network *Network, req Request) {
	defer close(req.Resp)
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("Handler panicked while completing request")
		}
	}()

	value, err := dispatch(network, req.Endpoint)
	if err != nil {
		req.Resp <- Result{Err: err.Error()}
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		req.Resp <- Result{Err: err.Error()}
		return
	}
	req.Resp <- Result{Value: raw}
}

func dispatch(network *Network, ep Endpoint) (any, error) {
	ctx := context.Background()
	switch ep := ep.(type) {
	case LocalContent:
		return localContent(network, ep.Key)
	case PaginateLocalContentKeys:
		return paginateLocalContentKeys(network, ep.Offset, ep.Limit)
	case Store:
		return store(network, ep.Key, ep.Value)
	case RecursiveFindContent:
		return recursiveFindContent(ctx, network, ep.Key, false)
	case TraceRecursiveFindContent:
		return recursiveFindContent(ctx, network, ep.Key, true)
	case AddEnr:
		return addEnr(network, ep.Enr)
	case DataRadius:
		return network.Overlay.DataRadius(), nil
	case DeleteEnr:
		return network.Overlay.DeleteEnr(ep.NodeID), nil
	case FindContent:
		return findContent(ctx, network, ep.Enr, ep.Key)
	case FindNodes:
		return findNodes(ctx, network, ep.Enr, ep.Distances)
	case GetEnr:
		return getEnr(network, ep.NodeID)
	case Gossip:
		return gossip(ctx, network, ep.Key, ep.Value, false)
	case TraceGossip:
		return gossip(ctx, network, ep.Key, ep.Value, true)
	case LookupEnr:
		return lookupEnr(ctx, network, ep.NodeID)
	case Offer:
		return offer(ctx, network, ep.Enr, ep.Key, ep.Value)
	case WireOffer:
		return wireOffer(ctx, network, ep.Enr, ep.Keys)
	case Ping:
		return ping(ctx, network, ep.Enr)
	case RoutingTableInfo:
		return network.Overlay.RoutingTableInfo(), nil
	case RecursiveFindNodes:
		return recursiveFindNodes(ctx, network, ep.NodeID)
	case OptimisticStateRoot:
		return stateRoot(ctx, network, false)
	case FinalizedStateRoot:
		return stateRoot(ctx, network, true)
	default:
		return nil, fmt.Errorf("unsupported endpoint: %T", ep)
	}
}

// localContent serves the LocalContent method from the store alone.
func localContent(network *Network, contentKey types.ContentKey) (any, error) {
	val, ok, err := network.Store.Get(contentKey)
	if err != nil {
		return nil, fmt.Errorf(
			"Database error while looking for content key in local storage: %s, with error: %v",
			contentKey, err,
		)
	}
	if !ok {
		return nil, errors.New("Content not found in local storage")
	}
	return types.HexEncode(val), nil
}

// paginateLocalContentKeys serves the PaginateLocalContentKeys method.
func paginateLocalContentKeys(network *Network, offset, limit uint64) (any, error) {
	info, err := network.Store.Paginate(offset, limit)
	if err != nil {
		return nil, fmt.Errorf(
			"Database error while paginating local content keys with offset: %d, limit: %d. Error message: %v",
			offset, limit, err,
		)
	}
	return info, nil
}

// store serves the Store method. A store failure is delivered as a string
// payload on the success arm rather than as an error; existing clients
// depend on that shape.
func store(network *Network, contentKey types.ContentKey, contentValue types.ContentValue) (any, error) {
	data := contentValue.Encode()
	if err := network.Store.Put(contentKey, data); err != nil {
		return err.Error(), nil
	}
	return true, nil
}

// recursiveFindContent serves both RecursiveFindContent and its traced
// variant. The local store is probed first; a store fault downgrades to a
// miss and the lookup proceeds over the network.
func recursiveFindContent(ctx context.Context, network *Network, contentKey types.ContentKey, isTrace bool) (any, error) {
	var local []byte
	var haveLocal bool
	switch val, ok, err := network.Store.Get(contentKey); {
	case err != nil:
		log.WithError(err).
			WithField("content.key", contentKey.String()).
			Error("Error checking data store for content")
	case ok:
		local = val
		haveLocal = true
	}

	var contentBytes []byte
	var utpTransfer bool
	var trace *types.QueryTrace
	if haveLocal {
		localEnr := network.Overlay.LocalEnr()
		t := types.NewQueryTrace(localEnr, contentKey.ContentID())
		t.NodeRespondedWithContent(localEnr)
		contentBytes = local
		if isTrace {
			trace = t
		}
	} else {
		// Data is not available locally, make a network request.
		result, err := network.Overlay.LookupContent(ctx, contentKey, isTrace)
		if err != nil {
			var notFound *overlay.ContentNotFoundError
			if errors.As(err, &notFound) {
				payload, merr := json.Marshal(struct {
					Message string            `json:"message"`
					Trace   *types.QueryTrace `json:"trace"`
				}{
					Message: fmt.Sprintf("%s: utp: %t", notFound.Message, notFound.Utp),
					Trace:   notFound.Trace,
				})
				if merr != nil {
					return nil, merr
				}
				return nil, errors.New(string(payload))
			}
			log.WithError(err).
				WithField("content.key", contentKey.String()).
				Error("Error looking up content")
			return nil, err
		}
		contentBytes = result.Content
		utpTransfer = result.UtpTransfer
		trace = result.Trace
	}

	content := types.HexEncode(contentBytes)

	// If tracing is not required, return content.
	if !isTrace {
		return types.ContentInfo{Content: content, UtpTransfer: utpTransfer}, nil
	}
	if trace == nil {
		return nil, errors.New("Content query trace requested but none provided.")
	}
	return types.TraceContentInfo{Content: content, UtpTransfer: utpTransfer, Trace: *trace}, nil
}

// addEnr serves the AddEnr method.
func addEnr(network *Network, enr types.Enr) (any, error) {
	if err := network.Overlay.AddEnr(enr); err != nil {
		return nil, fmt.Errorf("AddEnr failed: %v", err)
	}
	return true, nil
}

// getEnr serves the GetEnr method.
func getEnr(network *Network, nodeID types.NodeID) (any, error) {
	enr, err := network.Overlay.GetEnr(nodeID)
	if err != nil {
		return nil, fmt.Errorf("GetEnr failed: %v", err)
	}
	return enr, nil
}

// lookupEnr serves the LookupEnr method; this may trigger a network walk.
func lookupEnr(ctx context.Context, network *Network, nodeID types.NodeID) (any, error) {
	enr, err := network.Overlay.LookupEnr(ctx, nodeID)
	if err != nil {
		return nil, fmt.Errorf("LookupEnr failed: %v", err)
	}
	return enr, nil
}

// findContent serves the FindContent method with a direct peer request.
func findContent(ctx context.Context, network *Network, enr types.Enr, contentKey types.ContentKey) (any, error) {
	content, utpTransfer, err := network.Overlay.SendFindContent(ctx, enr, contentKey)
	if err != nil {
		return nil, fmt.Errorf("FindContent request timeout: %v", err)
	}
	switch content := content.(type) {
	case overlay.ContentConnectionID:
		return nil, fmt.Errorf(
			"FindContent request returned a connection id (%d) instead of conducting utp transfer.",
			uint16(content),
		)
	case overlay.ContentPayload:
		return map[string]any{
			"content":     types.HexEncode(content),
			"utpTransfer": utpTransfer,
		}, nil
	case overlay.ContentEnrs:
		return map[string]any{
			"enrs": []types.Enr(content),
		}, nil
	default:
		return nil, fmt.Errorf("FindContent request returned unknown content variant: %T", content)
	}
}

// findNodes serves the FindNodes method with a direct peer request.
func findNodes(ctx context.Context, network *Network, enr types.Enr, distances []uint16) (any, error) {
	nodes, err := network.Overlay.SendFindNodes(ctx, enr, distances)
	if err != nil {
		return nil, fmt.Errorf("FindNodes request timeout: %v", err)
	}
	enrs := nodes.Enrs
	if enrs == nil {
		enrs = []types.Enr{}
	}
	return types.FindNodesInfo{Enrs: enrs}, nil
}

// gossip serves Gossip and TraceGossip.
func gossip(ctx context.Context, network *Network, contentKey types.ContentKey, contentValue types.ContentValue, isTrace bool) (any, error) {
	data := contentValue.Encode()
	if isTrace {
		return network.Overlay.PropagateGossipTrace(ctx, contentKey, data), nil
	}
	return network.Overlay.PropagateGossip([]overlay.GossipItem{{Key: contentKey, Value: data}}), nil
}

// offer serves the Offer method.
func offer(ctx context.Context, network *Network, enr types.Enr, contentKey types.ContentKey, contentValue types.ContentValue) (any, error) {
	accept, err := network.Overlay.SendOffer(ctx, enr, contentKey, contentValue.Encode())
	if err != nil {
		return nil, fmt.Errorf("Offer request timeout: %v", err)
	}
	return types.AcceptInfo{ContentKeys: accept.ContentKeys}, nil
}

// wireOffer serves the WireOffer method.
func wireOffer(ctx context.Context, network *Network, enr types.Enr, contentKeys []types.ContentKey) (any, error) {
	accept, err := network.Overlay.SendWireOffer(ctx, enr, contentKeys)
	if err != nil {
		return nil, fmt.Errorf("WireOffer request timeout: %v", err)
	}
	return types.AcceptInfo{ContentKeys: accept.ContentKeys}, nil
}

// ping serves the Ping method; the pong's custom payload carries the peer's
// radius little-endian.
func ping(ctx context.Context, network *Network, enr types.Enr) (any, error) {
	pong, err := network.Overlay.SendPing(ctx, enr)
	if err != nil {
		return nil, fmt.Errorf("Ping request timeout: %v", err)
	}
	return types.PongInfo{
		EnrSeq:     pong.EnrSeq,
		DataRadius: types.DistanceFromLittleEndian(pong.CustomPayload),
	}, nil
}

// recursiveFindNodes serves the RecursiveFindNodes method. It always
// succeeds; an empty table just yields an empty list.
func recursiveFindNodes(ctx context.Context, network *Network, nodeID types.NodeID) (any, error) {
	nodes := network.Overlay.LookupNode(ctx, nodeID)
	if nodes == nil {
		nodes = []types.Enr{}
	}
	return nodes, nil
}

// stateRoot serves OptimisticStateRoot and FinalizedStateRoot from the
// consensus client.
func stateRoot(ctx context.Context, network *Network, finalized bool) (any, error) {
	client := network.BeaconClient()
	if client == nil {
		return nil, errors.New("Beacon client not initialized")
	}
	header, err := network.getHeader(ctx, client, finalized)
	if err != nil {
		return nil, err
	}
	return header.StateRoot, nil
}
