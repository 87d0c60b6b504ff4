package api

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"google.golang.org/grpc"

	"github.com/dfirlabs/velocli/api/dialers"
	"github.com/dfirlabs/velocli/apiproto"
	"github.com/dfirlabs/velocli/internal/debugx"
	"github.com/dfirlabs/velocli/internal/errorsx"
	"github.com/pkg/errors"
)

// NewConn creates a connection to the api service from the provided
// dialer. the connection holds no session; every operation establishes a
// fresh one and tears it down when the operation completes.
func NewConn(d dialers.ContextDialer) Conn {
	return Conn{dialer: d}
}

// Conn client facade for the api service.
type Conn struct {
	dialer dialers.ContextDialer
}

// Query submits the queries as a single streaming call and demultiplexes
// the response stream into per query row accumulations. the stream
// carries no terminator message; end of stream signals completion.
func (t Conn) Query(ctx context.Context, options QueryOptions, queries ...Query) (results *ResultSet, err error) {
	var (
		cc  *grpc.ClientConn
		src apiproto.API_QueryClient
	)

	if cc, err = t.dialer.DialContext(ctx); err != nil {
		return nil, TransportError{errors.Wrap(err, "failed to connect to the api service")}
	}
	defer func() { errorsx.MaybeLog(cc.Close()) }()

	if options.MaxRow == 0 {
		options.MaxRow = DefaultMaxRow
	}

	args := &apiproto.VQLCollectorArgs{
		MaxRow: options.MaxRow,
		OrgId:  options.OrgID,
	}

	for _, e := range options.Env {
		args.Env = append(args.Env, &apiproto.VQLEnv{Key: e.Key, Value: e.Value})
	}

	for _, q := range queries {
		args.Query = append(args.Query, &apiproto.VQLRequest{Name: q.Name, Vql: q.VQL})
	}

	rpc := apiproto.NewAPIClient(cc)
	if src, err = rpc.Query(ctx, args); err != nil {
		return nil, CallError{errors.Wrap(err, "failed to initiate query")}
	}

	return demux(src)
}

// queryStream the subset of the generated stream used by the demultiplexer.
type queryStream interface {
	Recv() (*apiproto.VQLResponse, error)
}

func demux(src queryStream) (results *ResultSet, err error) {
	var (
		msg *apiproto.VQLResponse
	)

	results = &ResultSet{}
	for msg, err = src.Recv(); err == nil; msg, err = src.Recv() {
		if l := msg.GetLog(); l != "" {
			if strings.HasPrefix(l, errSentinel) {
				return nil, QueryFailure{Log: l}
			}

			debugx.Println("query log", l)
		}

		if raw := msg.GetResponse(); raw != "" {
			var (
				batch []Row
			)

			if err = json.Unmarshal([]byte(raw), &batch); err != nil {
				return nil, DecodeError{errors.Wrapf(err, "malformed row batch for query: %s", msg.GetQuery().GetName())}
			}

			results.append(msg.GetQuery().GetName(), batch...)
		}
	}

	if err == io.EOF {
		return results, nil
	}

	return nil, CallError{errors.Wrap(err, "query stream failed")}
}

// Fetch downloads the file at the given path from the service, issuing
// successive chunk reads until a zero length chunk signals end of data.
// only the normal segments of the path are forwarded; root and
// traversal segments are dropped client side.
func (t Conn) Fetch(ctx context.Context, path string) (buf []byte, err error) {
	var (
		cc   *grpc.ClientConn
		resp *apiproto.VFSFileBuffer
	)

	if cc, err = t.dialer.DialContext(ctx); err != nil {
		return nil, TransportError{errors.Wrap(err, "failed to connect to the api service")}
	}
	defer func() { errorsx.MaybeLog(cc.Close()) }()

	rpc := apiproto.NewAPIClient(cc)
	req := &apiproto.VFSFileBuffer{
		Components: PathComponents(path),
		Length:     DefaultChunkLength,
	}

	for {
		if resp, err = rpc.VFSGetBuffer(ctx, req); err != nil {
			return nil, CallError{errors.Wrapf(err, "failed to read chunk at offset %d", req.Offset)}
		}

		if len(resp.Data) == 0 {
			return buf, nil
		}

		buf = append(buf, resp.Data...)
		req.Offset += uint64(len(resp.Data))
	}
}

// PathComponents decomposes a path into its normal segments. root and
// relative traversal segments are dropped, never forwarded to the
// service.
func PathComponents(path string) (components []string) {
	for _, segment := range strings.Split(path, "/") {
		switch segment {
		case "", ".", "..":
		default:
			components = append(components, segment)
		}
	}

	return components
}
