package dialers

import (
	"context"

	"google.golang.org/grpc"
)

// NewDirect dials the provided address every time.
func NewDirect(address string, defaults Defaults) Direct {
	return Direct{
		address:  address,
		defaults: defaults,
	}
}

// Direct ...
type Direct struct {
	address  string
	defaults Defaults
}

// DialContext given the context and options
func (t Direct) DialContext(ctx context.Context, options ...grpc.DialOption) (c *grpc.ClientConn, err error) {
	return grpc.DialContext(ctx, t.address, t.Defaults(options...)...)
}

// Defaults merge the provided options into this dialer's defaults.
func (t Direct) Defaults(options ...grpc.DialOption) []grpc.DialOption {
	return t.defaults.Defaults(options...)
}
