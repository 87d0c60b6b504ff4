package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/dfirlabs/velocli/backoff"
	"github.com/dfirlabs/velocli/internal/debugx"
	"github.com/pkg/errors"
)

// the fixed meta query that creates a flow on an endpoint, and the well
// known virtual tables used to observe it. all of them are ordinary
// queries; the flow identity is bound through the environment.
const (
	collectVQL     = "SELECT collect_client(client_id=client_id, artifacts=artifact, env=dict(Command=Command)) AS Flow FROM scope()"
	flowStateVQL   = "SELECT state FROM flows(client_id=client_id, flow_id=flow_id)"
	flowLogsVQL    = "SELECT client_time, level, message FROM flow_logs(client_id=client_id, flow_id=flow_id)"
	flowResultsVQL = "SELECT * FROM flow_results(client_id=client_id, flow_id=flow_id)"
)

// FlowLogEntry a single log line produced by the flow on the endpoint.
// the timestamp is seconds since epoch on the endpoint's clock.
type FlowLogEntry struct {
	ClientTime int64  `json:"client_time"`
	Level      string `json:"level"`
	Message    string `json:"message"`
}

// ScheduleFlow asks the service to run the named artifact on the target
// endpoint, returning a handle for monitoring the resulting flow.
func (t Conn) ScheduleFlow(ctx context.Context, clientID, artifact, command string, options ...FlowOption) (f Flow, err error) {
	var (
		results *ResultSet
	)

	opts := NewQueryOptions()
	opts.Env = []Env{
		{Key: "client_id", Value: clientID},
		{Key: "artifact", Value: artifact},
		{Key: "Command", Value: command},
	}

	if results, err = t.Query(ctx, opts, NewQuery(collectVQL)); err != nil {
		return f, err
	}

	rows := results.First()
	if len(rows) == 0 {
		return f, errors.Wrap(ErrEmptyResult, "scheduling returned no rows")
	}

	var row struct {
		Flow struct {
			FlowID string `json:"flow_id"`
		} `json:"Flow"`
	}

	if err = json.Unmarshal(rows[0], &row); err != nil {
		return f, DecodeError{errors.Wrap(err, "malformed scheduling result")}
	}

	if row.Flow.FlowID == "" {
		return f, errors.Wrap(ErrEmptyResult, "flow identifier missing from scheduling result")
	}

	return NewFlow(t, clientID, row.Flow.FlowID, options...), nil
}

// NewFlow attaches to a previously scheduled flow.
func NewFlow(c Conn, clientID, flowID string, options ...FlowOption) (f Flow) {
	f = Flow{
		ClientID:    clientID,
		ID:          flowID,
		conn:        c,
		backoff:     backoff.Constant(DefaultPollInterval),
		diagnostics: log.Default(),
	}

	for _, opt := range options {
		opt(&f)
	}

	return f
}

// FlowOption for overriding flow monitoring behavior.
type FlowOption func(*Flow)

// FlowOptionBackoff overrides the pacing between polls.
func FlowOptionBackoff(s backoff.Strategy) FlowOption {
	return func(f *Flow) {
		f.backoff = s
	}
}

// FlowOptionDiagnostics overrides the sink receiving warn and error
// level flow log entries.
func FlowOptionDiagnostics(d Diagnostics) FlowOption {
	return func(f *Flow) {
		f.diagnostics = d
	}
}

// Flow a unit of work scheduled on a managed endpoint. the identifier
// pair is assigned by the service and stable for the flow's lifetime.
// distinct flows share no state; monitoring them concurrently requires
// no coordination.
type Flow struct {
	ClientID string
	ID       string

	conn        Conn
	backoff     backoff.Strategy
	diagnostics Diagnostics
}

func (t Flow) String() string {
	return fmt.Sprintf("%s/%s", t.ClientID, t.ID)
}

// Wait polls the flow status until the service reports anything other
// than running. a missing status row is treated as the unset state for
// that poll. the loop is unbounded; bound it through ctx.
func (t Flow) Wait(ctx context.Context) (state string, err error) {
	var (
		results *ResultSet
	)

	for attempt := 0; ; attempt++ {
		if results, err = t.query(ctx, flowStateVQL); err != nil {
			return "", err
		}

		state = StateUnset
		if rows := results.First(); len(rows) > 0 {
			var row struct {
				State string `json:"state"`
			}

			if err = json.Unmarshal(rows[0], &row); err != nil {
				return "", DecodeError{errors.Wrap(err, "malformed flow status")}
			}

			if row.State != "" {
				state = row.State
			}
		}

		if state != StateRunning {
			return state, nil
		}

		debugx.Println("flow still running", t.String())

		if err = t.pause(ctx, attempt); err != nil {
			return "", err
		}
	}
}

// Logs polls the flow log table until entries appear, then classifies
// them. warn and error entries are written to the diagnostics sink with
// their timestamps resolved to wall clock; any error level entry fails
// the flow after the whole batch has been emitted.
func (t Flow) Logs(ctx context.Context) (entries []FlowLogEntry, err error) {
	var (
		results *ResultSet
	)

	for attempt := 0; ; attempt++ {
		if results, err = t.query(ctx, flowLogsVQL); err != nil {
			return nil, err
		}

		if !results.Empty() {
			break
		}

		if err = t.pause(ctx, attempt); err != nil {
			return nil, err
		}
	}

	failed := false
	for _, raw := range results.First() {
		var (
			entry FlowLogEntry
		)

		if err = json.Unmarshal(raw, &entry); err != nil {
			return nil, DecodeError{errors.Wrap(err, "malformed flow log entry")}
		}

		entries = append(entries, entry)

		switch entry.Level {
		case LevelError:
			failed = true
			fallthrough
		case LevelWarn:
			t.diagnostics.Println(time.Unix(entry.ClientTime, 0).Format(time.Stamp), entry.Level+":", entry.Message)
		}
	}

	if failed {
		return entries, FlowFailure{ClientID: t.ClientID, FlowID: t.ID}
	}

	return entries, nil
}

// Results polls the flow result table until rows appear, returning the
// first non empty batch as delivered. the loop is unbounded; bound it
// through ctx.
func (t Flow) Results(ctx context.Context) (rows []Row, err error) {
	var (
		results *ResultSet
	)

	for attempt := 0; ; attempt++ {
		if results, err = t.query(ctx, flowResultsVQL); err != nil {
			return nil, err
		}

		if !results.Empty() {
			return results.First(), nil
		}

		if err = t.pause(ctx, attempt); err != nil {
			return nil, err
		}
	}
}

// Fetch waits for the flow to leave the running state, escalates failed
// log entries, and then returns the flow's results. the terminal status
// itself is not inspected; failure detection is log driven.
func (t Flow) Fetch(ctx context.Context) (rows []Row, err error) {
	if _, err = t.Wait(ctx); err != nil {
		return nil, err
	}

	if _, err = t.Logs(ctx); err != nil {
		return nil, err
	}

	return t.Results(ctx)
}

func (t Flow) query(ctx context.Context, vql string) (*ResultSet, error) {
	opts := NewQueryOptions()
	opts.Env = []Env{
		{Key: "client_id", Value: t.ClientID},
		{Key: "flow_id", Value: t.ID},
	}

	return t.conn.Query(ctx, opts, NewQuery(vql))
}

func (t Flow) pause(ctx context.Context, attempt int) error {
	select {
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	case <-time.After(t.backoff.Backoff(attempt)):
		return nil
	}
}
