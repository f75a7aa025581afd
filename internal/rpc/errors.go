package rpc

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/rpc"
)

// isNotificationsUnsupported reports whether err means the transport cannot push
// subscription notifications (plain HTTP endpoints).
func isNotificationsUnsupported(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, rpc.ErrNotificationsUnsupported) {
		return true
	}

	// Some providers answer eth_subscribe over HTTP with a JSON-RPC error instead.
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		msg := strings.ToLower(rpcErr.Error())
		return strings.Contains(msg, "notifications not supported") ||
			strings.Contains(msg, "method not found") ||
			strings.Contains(msg, "eth_subscribe")
	}

	return false
}

// errorType returns a coarse label used by the error metrics.
func errorType(err error) string {
	var rpcErr rpc.Error
	switch {
	case errors.As(err, &rpcErr):
		return "rpc"
	case retryableError(err):
		return "transient"
	default:
		return "other"
	}
}
