package api_test

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dfirlabs/velocli/backoff"

	. "github.com/dfirlabs/velocli/api"
	"github.com/dfirlabs/velocli/apiproto"
	"github.com/pkg/errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// recorder collects diagnostics output for assertions.
type recorder struct {
	lines []string
}

func (t *recorder) Println(v ...interface{}) {
	t.lines = append(t.lines, strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func env(req *apiproto.VQLCollectorArgs, key string) string {
	for _, e := range req.GetEnv() {
		if e.GetKey() == key {
			return e.GetValue()
		}
	}

	return ""
}

var _ = Describe("Flow", func() {
	Describe("ScheduleFlow", func() {
		It("binds the target and artifact into the scheduling query", func() {
			var (
				captured *apiproto.VQLCollectorArgs
			)

			d, cleanup := serveAPI(&fakeAPI{
				query: func(req *apiproto.VQLCollectorArgs, stream apiproto.API_QueryServer) error {
					captured = req
					return respond(stream, "query", `[{"Flow":{"flow_id":"F.17"}}]`)
				},
			})
			defer cleanup()

			f, err := NewConn(d).ScheduleFlow(context.Background(), "C.1", "Generic.Client.VQL", "SELECT 1")
			Expect(err).ToNot(HaveOccurred())
			Expect(f.ClientID).To(Equal("C.1"))
			Expect(f.ID).To(Equal("F.17"))
			Expect(f.String()).To(Equal("C.1/F.17"))

			Expect(captured.GetQuery()[0].GetVql()).To(ContainSubstring("collect_client"))
			Expect(env(captured, "client_id")).To(Equal("C.1"))
			Expect(env(captured, "artifact")).To(Equal("Generic.Client.VQL"))
			Expect(env(captured, "Command")).To(Equal("SELECT 1"))
		})

		It("fails when scheduling returns no rows", func() {
			d, cleanup := serveAPI(&fakeAPI{})
			defer cleanup()

			_, err := NewConn(d).ScheduleFlow(context.Background(), "C.1", "Generic.Client.VQL", "SELECT 1")
			Expect(errors.Is(err, ErrEmptyResult)).To(BeTrue())
		})

		It("fails when the flow identifier is missing", func() {
			d, cleanup := serveAPI(&fakeAPI{
				query: func(_ *apiproto.VQLCollectorArgs, stream apiproto.API_QueryServer) error {
					return respond(stream, "query", `[{"Flow":{}}]`)
				},
			})
			defer cleanup()

			_, err := NewConn(d).ScheduleFlow(context.Background(), "C.1", "Generic.Client.VQL", "SELECT 1")
			Expect(errors.Is(err, ErrEmptyResult)).To(BeTrue())
		})
	})

	Describe("Wait", func() {
		It("polls until the flow leaves the running state", func() {
			polls := 0
			states := []string{StateRunning, StateRunning, StateFinished}

			d, cleanup := serveAPI(&fakeAPI{
				query: func(req *apiproto.VQLCollectorArgs, stream apiproto.API_QueryServer) error {
					Expect(env(req, "flow_id")).To(Equal("F.1"))
					state := states[polls]
					polls++
					return respond(stream, "query", fmt.Sprintf(`[{"state":%q}]`, state))
				},
			})
			defer cleanup()

			f := NewFlow(NewConn(d), "C.1", "F.1", FlowOptionBackoff(backoff.Constant(0)))
			state, err := f.Wait(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(state).To(Equal(StateFinished))
			Expect(polls).To(Equal(3))
		})

		It("treats a missing status row as unset", func() {
			d, cleanup := serveAPI(&fakeAPI{})
			defer cleanup()

			f := NewFlow(NewConn(d), "C.1", "F.1", FlowOptionBackoff(backoff.Constant(0)))
			state, err := f.Wait(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(state).To(Equal(StateUnset))
		})

		It("fails on a malformed status row", func() {
			d, cleanup := serveAPI(&fakeAPI{
				query: func(_ *apiproto.VQLCollectorArgs, stream apiproto.API_QueryServer) error {
					return respond(stream, "query", `[{"state":5}]`)
				},
			})
			defer cleanup()

			var (
				decode DecodeError
			)

			f := NewFlow(NewConn(d), "C.1", "F.1", FlowOptionBackoff(backoff.Constant(0)))
			_, err := f.Wait(context.Background())
			Expect(errors.As(err, &decode)).To(BeTrue())
		})

		It("stops polling when the context ends", func() {
			ctx, cancel := context.WithCancel(context.Background())

			d, cleanup := serveAPI(&fakeAPI{
				query: func(_ *apiproto.VQLCollectorArgs, stream apiproto.API_QueryServer) error {
					return respond(stream, "query", fmt.Sprintf(`[{"state":%q}]`, StateRunning))
				},
			})
			defer cleanup()

			interrupt := backoff.StrategyFunc(func(int) time.Duration {
				cancel()
				return time.Hour
			})

			f := NewFlow(NewConn(d), "C.1", "F.1", FlowOptionBackoff(interrupt))
			_, err := f.Wait(ctx)
			Expect(errors.Is(err, context.Canceled)).To(BeTrue())
		})
	})

	Describe("Logs", func() {
		It("polls until entries appear", func() {
			polls := 0

			d, cleanup := serveAPI(&fakeAPI{
				query: func(_ *apiproto.VQLCollectorArgs, stream apiproto.API_QueryServer) error {
					polls++
					if polls < 3 {
						return nil
					}
					return respond(stream, "query", `[{"client_time":1700000000,"level":"INFO","message":"collection started"}]`)
				},
			})
			defer cleanup()

			sink := &recorder{}
			f := NewFlow(NewConn(d), "C.1", "F.1", FlowOptionBackoff(backoff.Constant(0)), FlowOptionDiagnostics(sink))
			entries, err := f.Logs(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(entries).To(HaveLen(1))
			Expect(polls).To(Equal(3))
			Expect(sink.lines).To(BeEmpty())
		})

		It("fails the flow after emitting the whole batch when an error entry is present", func() {
			d, cleanup := serveAPI(&fakeAPI{
				query: func(_ *apiproto.VQLCollectorArgs, stream apiproto.API_QueryServer) error {
					return respond(stream, "query", `[
						{"client_time":1700000000,"level":"INFO","message":"starting"},
						{"client_time":1700000001,"level":"ERROR","message":"access denied"},
						{"client_time":1700000002,"level":"INFO","message":"cleanup"}
					]`)
				},
			})
			defer cleanup()

			var (
				failure FlowFailure
			)

			sink := &recorder{}
			f := NewFlow(NewConn(d), "C.1", "F.1", FlowOptionBackoff(backoff.Constant(0)), FlowOptionDiagnostics(sink))
			entries, err := f.Logs(context.Background())
			Expect(errors.As(err, &failure)).To(BeTrue())
			Expect(failure.ClientID).To(Equal("C.1"))
			Expect(failure.FlowID).To(Equal("F.1"))
			Expect(entries).To(HaveLen(3))
			Expect(sink.lines).To(HaveLen(1))
			Expect(sink.lines[0]).To(ContainSubstring("ERROR: access denied"))
		})

		It("surfaces warnings without failing the flow", func() {
			d, cleanup := serveAPI(&fakeAPI{
				query: func(_ *apiproto.VQLCollectorArgs, stream apiproto.API_QueryServer) error {
					return respond(stream, "query", `[{"client_time":1700000000,"level":"WARN","message":"partial read"}]`)
				},
			})
			defer cleanup()

			sink := &recorder{}
			f := NewFlow(NewConn(d), "C.1", "F.1", FlowOptionBackoff(backoff.Constant(0)), FlowOptionDiagnostics(sink))
			entries, err := f.Logs(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(entries).To(HaveLen(1))
			Expect(sink.lines).To(HaveLen(1))
			Expect(sink.lines[0]).To(ContainSubstring("WARN: partial read"))
		})
	})

	Describe("Results", func() {
		It("polls until rows appear", func() {
			polls := 0

			d, cleanup := serveAPI(&fakeAPI{
				query: func(_ *apiproto.VQLCollectorArgs, stream apiproto.API_QueryServer) error {
					polls++
					if polls < 3 {
						return nil
					}
					return respond(stream, "query", `[{"Stdout":"hi","ReturnCode":0}]`)
				},
			})
			defer cleanup()

			f := NewFlow(NewConn(d), "C.1", "F.1", FlowOptionBackoff(backoff.Constant(0)))
			rows, err := f.Results(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(polls).To(Equal(3))
		})
	})

	Describe("Fetch", func() {
		It("waits, checks the logs, and returns the results", func() {
			d, cleanup := serveAPI(&fakeAPI{
				query: func(req *apiproto.VQLCollectorArgs, stream apiproto.API_QueryServer) error {
					switch vql := req.GetQuery()[0].GetVql(); {
					case strings.Contains(vql, "FROM flows("):
						return respond(stream, "query", fmt.Sprintf(`[{"state":%q}]`, StateFinished))
					case strings.Contains(vql, "flow_logs"):
						return respond(stream, "query", `[{"client_time":1700000000,"level":"INFO","message":"done"}]`)
					case strings.Contains(vql, "flow_results"):
						return respond(stream, "query", `[{"Stdout":"hello"}]`)
					default:
						return nil
					}
				},
			})
			defer cleanup()

			f := NewFlow(NewConn(d), "C.1", "F.1", FlowOptionBackoff(backoff.Constant(0)))
			rows, err := f.Fetch(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(rows).To(HaveLen(1))
		})

		It("retrieves results only after the status and result tables settle", func() {
			statusPolls := 0
			resultPolls := 0

			d, cleanup := serveAPI(&fakeAPI{
				query: func(req *apiproto.VQLCollectorArgs, stream apiproto.API_QueryServer) error {
					switch vql := req.GetQuery()[0].GetVql(); {
					case strings.Contains(vql, "FROM flows("):
						statusPolls++
						state := StateRunning
						if statusPolls >= 3 {
							state = StateFinished
						}
						return respond(stream, "query", fmt.Sprintf(`[{"state":%q}]`, state))
					case strings.Contains(vql, "flow_logs"):
						return respond(stream, "query", `[{"client_time":1700000000,"level":"INFO","message":"done"}]`)
					case strings.Contains(vql, "flow_results"):
						resultPolls++
						if resultPolls < 3 {
							return nil
						}
						return respond(stream, "query", `[{"host":"a"},{"host":"b"}]`)
					default:
						return nil
					}
				},
			})
			defer cleanup()

			f := NewFlow(NewConn(d), "C.1", "F.1", FlowOptionBackoff(backoff.Constant(0)))
			rows, err := f.Fetch(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(rows).To(HaveLen(2))
			Expect(statusPolls).To(Equal(3))
			Expect(resultPolls).To(Equal(3))
		})

		It("propagates log driven failures before fetching results", func() {
			d, cleanup := serveAPI(&fakeAPI{
				query: func(req *apiproto.VQLCollectorArgs, stream apiproto.API_QueryServer) error {
					switch vql := req.GetQuery()[0].GetVql(); {
					case strings.Contains(vql, "FROM flows("):
						return respond(stream, "query", fmt.Sprintf(`[{"state":%q}]`, StateError))
					case strings.Contains(vql, "flow_logs"):
						return respond(stream, "query", `[{"client_time":1700000000,"level":"ERROR","message":"artifact not found"}]`)
					default:
						return nil
					}
				},
			})
			defer cleanup()

			var (
				failure FlowFailure
			)

			sink := &recorder{}
			f := NewFlow(NewConn(d), "C.1", "F.1", FlowOptionBackoff(backoff.Constant(0)), FlowOptionDiagnostics(sink))
			_, err := f.Fetch(context.Background())
			Expect(errors.As(err, &failure)).To(BeTrue())
			Expect(sink.lines).To(HaveLen(1))
		})
	})
})
