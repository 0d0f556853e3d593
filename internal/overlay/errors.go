package overlay

import (
	"errors"
	"fmt"

	"portal-beacon/internal/types"
)

// Request failures the wire engine reports back to callers. These stay
// typed inside the module; the RPC boundary flattens them to strings.
var (
	// ErrTimeout: the peer did not answer within the request window.
	ErrTimeout = errors.New("request timed out")

	// ErrInvalidResponse: the peer answered with something other than the
	// matching response type.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrUtpTransferFailed: the follow-up uTP transfer did not complete.
	ErrUtpTransferFailed = errors.New("utp transfer failed")
)

// ContentNotFoundError means a recursive lookup completed without any peer
// serving the content. The trace, when requested, records how far the
// lookup got.
type ContentNotFoundError struct {
	Message string
	Utp     bool
	Trace   *types.QueryTrace
}

func (e *ContentNotFoundError) Error() string {
	return fmt.Sprintf("unable to locate content on the network: %s", e.Message)
}
