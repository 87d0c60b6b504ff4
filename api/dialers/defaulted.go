package dialers

import (
	"google.golang.org/grpc"
)

// NewDefaults create a defaults dialer.
func NewDefaults(options ...grpc.DialOption) Defaults {
	return Defaulted(DefaultDialerOptions(options...))
}

// Defaulted a static set of dial options.
type Defaulted []grpc.DialOption

// Defaults implements the Defaults interface.
func (t Defaulted) Defaults(combined ...grpc.DialOption) []grpc.DialOption {
	return append(t, combined...)
}
