// Package dialers establishes sessions with the api service. connections
// are not pooled; every outgoing call dials a fresh session.
package dialers

import (
	"context"
	"time"

	"google.golang.org/grpc"
)

// ContextDialer the interface for connecting to the service.
type ContextDialer interface {
	DialContext(ctx context.Context, options ...grpc.DialOption) (c *grpc.ClientConn, err error)
}

// Defaults return a set of default dialing options.
// accepts additional options to merge in.
type Defaults interface {
	Defaults(combined ...grpc.DialOption) []grpc.DialOption
}

// DefaultDialerOptions sets reasonable defaults for dialing the service.
func DefaultDialerOptions(options ...grpc.DialOption) (results []grpc.DialOption) {
	defaults := []grpc.DialOption{
		grpc.WithBackoffMaxDelay(5 * time.Second),
	}

	return append(
		defaults,
		options...,
	)
}
