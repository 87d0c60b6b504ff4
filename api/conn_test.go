package api_test

import (
	"bytes"
	"context"
	"encoding/json"

	. "github.com/dfirlabs/velocli/api"
	"github.com/dfirlabs/velocli/apiproto"
	"github.com/pkg/errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Conn", func() {
	Describe("Query", func() {
		It("demultiplexes interleaved batches by query name", func() {
			d, cleanup := serveAPI(&fakeAPI{
				query: func(_ *apiproto.VQLCollectorArgs, stream apiproto.API_QueryServer) error {
					if err := respond(stream, "query-1", `[{"n":1}]`); err != nil {
						return err
					}
					if err := respond(stream, "query-0", `[{"n":0}]`); err != nil {
						return err
					}
					return respond(stream, "query-1", `[{"n":2}]`)
				},
			})
			defer cleanup()

			results, err := NewConn(d).Query(context.Background(), NewQueryOptions(), NewQueries("SELECT 1", "SELECT 2")...)
			Expect(err).ToNot(HaveOccurred())
			Expect(results.Names()).To(Equal([]string{"query-1", "query-0"}))
			Expect(results.Rows("query-1")).To(HaveLen(2))
			Expect(results.Rows("query-0")).To(HaveLen(1))

			var row struct {
				N int `json:"n"`
			}
			Expect(json.Unmarshal(results.Rows("query-1")[1], &row)).To(Succeed())
			Expect(row.N).To(Equal(2))
		})

		It("retains rows received before a trailing empty batch", func() {
			d, cleanup := serveAPI(&fakeAPI{
				query: func(_ *apiproto.VQLCollectorArgs, stream apiproto.API_QueryServer) error {
					if err := respond(stream, "query", `[{"n":1},{"n":2}]`); err != nil {
						return err
					}
					return respond(stream, "query", `[]`)
				},
			})
			defer cleanup()

			results, err := NewConn(d).Query(context.Background(), NewQueryOptions(), NewQuery("SELECT 1"))
			Expect(err).ToNot(HaveOccurred())
			Expect(results.First()).To(HaveLen(2))
		})

		It("forwards the environment and defaults the batch size on the wire", func() {
			var (
				captured *apiproto.VQLCollectorArgs
			)

			d, cleanup := serveAPI(&fakeAPI{
				query: func(req *apiproto.VQLCollectorArgs, _ apiproto.API_QueryServer) error {
					captured = req
					return nil
				},
			})
			defer cleanup()

			options := QueryOptions{
				Env:   []Env{{Key: "client_id", Value: "C.1"}, {Key: "client_id", Value: "C.2"}},
				OrgID: "O123",
			}

			_, err := NewConn(d).Query(context.Background(), options, NewQuery("SELECT 1"))
			Expect(err).ToNot(HaveOccurred())
			Expect(captured.GetMaxRow()).To(Equal(uint64(DefaultMaxRow)))
			Expect(captured.GetOrgId()).To(Equal("O123"))
			Expect(captured.GetEnv()).To(HaveLen(2))
			Expect(captured.GetEnv()[0].GetValue()).To(Equal("C.1"))
			Expect(captured.GetEnv()[1].GetValue()).To(Equal("C.2"))
			Expect(captured.GetQuery()[0].GetName()).To(Equal("query"))
			Expect(captured.GetQuery()[0].GetVql()).To(Equal("SELECT 1"))
		})

		It("aborts when the log stream reports a query failure", func() {
			d, cleanup := serveAPI(&fakeAPI{
				query: func(_ *apiproto.VQLCollectorArgs, stream apiproto.API_QueryServer) error {
					if err := respond(stream, "query", `[{"n":1}]`); err != nil {
						return err
					}
					return stream.Send(&apiproto.VQLResponse{Log: "VQL Error: column does not exist"})
				},
			})
			defer cleanup()

			var (
				failure QueryFailure
			)

			results, err := NewConn(d).Query(context.Background(), NewQueryOptions(), NewQuery("SELECT no_such FROM scope()"))
			Expect(results).To(BeNil())
			Expect(errors.As(err, &failure)).To(BeTrue())
			Expect(failure.Log).To(ContainSubstring("column does not exist"))
		})

		It("ignores informational logs", func() {
			d, cleanup := serveAPI(&fakeAPI{
				query: func(_ *apiproto.VQLCollectorArgs, stream apiproto.API_QueryServer) error {
					if err := stream.Send(&apiproto.VQLResponse{Log: "Query Stats: rows 1"}); err != nil {
						return err
					}
					return respond(stream, "query", `[{"n":1}]`)
				},
			})
			defer cleanup()

			results, err := NewConn(d).Query(context.Background(), NewQueryOptions(), NewQuery("SELECT 1"))
			Expect(err).ToNot(HaveOccurred())
			Expect(results.First()).To(HaveLen(1))
		})

		It("fails on a malformed row batch", func() {
			d, cleanup := serveAPI(&fakeAPI{
				query: func(_ *apiproto.VQLCollectorArgs, stream apiproto.API_QueryServer) error {
					return respond(stream, "query", `{"not":"an array"`)
				},
			})
			defer cleanup()

			var (
				decode DecodeError
			)

			_, err := NewConn(d).Query(context.Background(), NewQueryOptions(), NewQuery("SELECT 1"))
			Expect(errors.As(err, &decode)).To(BeTrue())
		})

		It("renders result sets as an ordered object", func() {
			d, cleanup := serveAPI(&fakeAPI{
				query: func(_ *apiproto.VQLCollectorArgs, stream apiproto.API_QueryServer) error {
					if err := respond(stream, "query-1", `[{"n":1}]`); err != nil {
						return err
					}
					if err := respond(stream, "query-0", `[{"n":0}]`); err != nil {
						return err
					}
					return respond(stream, "query-2", `[]`)
				},
			})
			defer cleanup()

			results, err := NewConn(d).Query(context.Background(), NewQueryOptions(), NewQueries("SELECT 1", "SELECT 2", "SELECT 3")...)
			Expect(err).ToNot(HaveOccurred())

			encoded, err := json.Marshal(results)
			Expect(err).ToNot(HaveOccurred())
			Expect(string(encoded)).To(Equal(`{"query-1":[{"n":1}],"query-0":[{"n":0}],"query-2":[]}`))
		})
	})

	Describe("Fetch", func() {
		serveFile := func(content []byte, requests *int) (bufDialer, func()) {
			return serveAPI(&fakeAPI{
				fetch: func(_ context.Context, req *apiproto.VFSFileBuffer) (*apiproto.VFSFileBuffer, error) {
					*requests++

					off := req.GetOffset()
					if off >= uint64(len(content)) {
						return &apiproto.VFSFileBuffer{}, nil
					}

					end := off + uint64(req.GetLength())
					if end > uint64(len(content)) {
						end = uint64(len(content))
					}

					return &apiproto.VFSFileBuffer{Data: content[off:end]}, nil
				},
			})
		}

		It("reassembles a file spanning a partial trailing chunk", func() {
			requests := 0
			content := bytes.Repeat([]byte("a"), 2*DefaultChunkLength+452)
			d, cleanup := serveFile(content, &requests)
			defer cleanup()

			buf, err := NewConn(d).Fetch(context.Background(), "clients/C.1/uploads/file.txt")
			Expect(err).ToNot(HaveOccurred())
			Expect(buf).To(Equal(content))
			Expect(requests).To(Equal(4))
		})

		It("detects end of data when the size is an exact chunk multiple", func() {
			requests := 0
			content := bytes.Repeat([]byte("b"), 2*DefaultChunkLength)
			d, cleanup := serveFile(content, &requests)
			defer cleanup()

			buf, err := NewConn(d).Fetch(context.Background(), "clients/C.1/uploads/file.txt")
			Expect(err).ToNot(HaveOccurred())
			Expect(buf).To(Equal(content))
			Expect(requests).To(Equal(3))
		})

		It("returns nothing for an empty file", func() {
			requests := 0
			d, cleanup := serveFile(nil, &requests)
			defer cleanup()

			buf, err := NewConn(d).Fetch(context.Background(), "clients/C.1/uploads/empty")
			Expect(err).ToNot(HaveOccurred())
			Expect(buf).To(BeEmpty())
			Expect(requests).To(Equal(1))
		})

		It("forwards only the normal path segments", func() {
			var (
				captured []string
			)

			d, cleanup := serveAPI(&fakeAPI{
				fetch: func(_ context.Context, req *apiproto.VFSFileBuffer) (*apiproto.VFSFileBuffer, error) {
					captured = req.GetComponents()
					return &apiproto.VFSFileBuffer{}, nil
				},
			})
			defer cleanup()

			_, err := NewConn(d).Fetch(context.Background(), "a/../../etc/passwd")
			Expect(err).ToNot(HaveOccurred())
			Expect(captured).To(Equal([]string{"a", "etc", "passwd"}))
		})
	})

	DescribeTable("PathComponents",
		func(path string, expected []string) {
			Expect(PathComponents(path)).To(Equal(expected))
		},
		Entry("simple", "clients/C.1/file", []string{"clients", "C.1", "file"}),
		Entry("rooted", "/clients/C.1/file", []string{"clients", "C.1", "file"}),
		Entry("traversal", "a/../../etc/passwd", []string{"a", "etc", "passwd"}),
		Entry("dot segments", "./x/.", []string{"x"}),
		Entry("empty", "", nil),
	)
})
