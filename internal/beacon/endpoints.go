package beacon

import (
	"encoding/json"

	"portal-beacon/internal/types"
)

// Endpoint is the closed set of Beacon JSON-RPC operations. The transport
// layer decodes method names and parameters into one of these before the
// request reaches the dispatcher.
type Endpoint interface {
	endpoint()
}

type LocalContent struct {
	Key types.ContentKey
}

type PaginateLocalContentKeys struct {
	Offset uint64
	Limit  uint64
}

type Store struct {
	Key   types.ContentKey
	Value types.ContentValue
}

type RecursiveFindContent struct {
	Key types.ContentKey
}

type TraceRecursiveFindContent struct {
	Key types.ContentKey
}

type AddEnr struct {
	Enr types.Enr
}

type DataRadius struct{}

type DeleteEnr struct {
	NodeID types.NodeID
}

type FindContent struct {
	Enr types.Enr
	Key types.ContentKey
}

type FindNodes struct {
	Enr       types.Enr
	Distances []uint16
}

type GetEnr struct {
	NodeID types.NodeID
}

type Gossip struct {
	Key   types.ContentKey
	Value types.ContentValue
}

type TraceGossip struct {
	Key   types.ContentKey
	Value types.ContentValue
}

type LookupEnr struct {
	NodeID types.NodeID
}

type Offer struct {
	Enr   types.Enr
	Key   types.ContentKey
	Value types.ContentValue
}

type WireOffer struct {
	Enr  types.Enr
	Keys []types.ContentKey
}

type Ping struct {
	Enr types.Enr
}

type RoutingTableInfo struct{}

type RecursiveFindNodes struct {
	NodeID types.NodeID
}

type OptimisticStateRoot struct{}

type FinalizedStateRoot struct{}

func (LocalContent) endpoint()              {}
func (PaginateLocalContentKeys) endpoint()  {}
func (Store) endpoint()                     {}
func (RecursiveFindContent) endpoint()      {}
func (TraceRecursiveFindContent) endpoint() {}
func (AddEnr) endpoint()                    {}
func (DataRadius) endpoint()                {}
func (DeleteEnr) endpoint()                 {}
func (FindContent) endpoint()               {}
func (FindNodes) endpoint()                 {}
func (GetEnr) endpoint()                    {}
func (Gossip) endpoint()                    {}
func (TraceGossip) endpoint()               {}
func (LookupEnr) endpoint()                 {}
func (Offer) endpoint()                     {}
func (WireOffer) endpoint()                 {}
func (Ping) endpoint()                      {}
func (RoutingTableInfo) endpoint()          {}
func (RecursiveFindNodes) endpoint()        {}
func (OptimisticStateRoot) endpoint()       {}
func (FinalizedStateRoot) endpoint()        {}

// Result is the reply delivered on a request's one-shot channel: a JSON
// value on success, an error string otherwise. Errors are strings by
// external contract with the RPC transport.
type Result struct {
	Value json.RawMessage
	Err   string
}

func (r Result) Ok() bool { return r.Err == "" }

// Request is one client call awaiting a reply. Resp is buffered so the
// handler's single send never blocks, and it is closed after that send.
type Request struct {
	Endpoint Endpoint
	Resp     chan Result
}

func NewRequest(ep Endpoint) Request {
	return Request{Endpoint: ep, Resp: make(chan Result, 1)}
}
