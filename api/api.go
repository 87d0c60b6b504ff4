// Package api implements the client for the velociraptor grpc api:
// server side queries, flows scheduled on managed endpoints, and file
// downloads from the server.
package api

import (
	"time"
)

const (
	// ServerName the identity the api service certificate is expected to present.
	ServerName = "VelociraptorServer"
	// DefaultMaxRow maximum rows the service packs into a single response batch.
	DefaultMaxRow = 10
	// DefaultChunkLength bytes requested per chunk when fetching files.
	DefaultChunkLength = 1024
	// DefaultPollInterval delay between polls while waiting on a flow.
	DefaultPollInterval = 100 * time.Millisecond
)

// errSentinel prefix the service writes into the response log stream when
// a query fails.
const errSentinel = "VQL Error:"

// flow states as reported by the service. states are polled, never
// pushed; anything other than StateRunning is terminal for polling
// purposes.
const (
	StateUnset    = "UNSET"
	StateRunning  = "RUNNING"
	StateFinished = "FINISHED"
	StateError    = "ERROR"
)

// severity levels used by flow log entries.
const (
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Diagnostics sink receiving flow log entries worth surfacing to the
// operator. satisfied by log.Logger.
type Diagnostics interface {
	Println(v ...interface{})
}
