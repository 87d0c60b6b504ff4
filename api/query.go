package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// Row a single result row, left undecoded. callers decode rows into
// their own shapes at the call site.
type Row = json.RawMessage

// Query a named query to execute on the service. names are caller
// assigned labels used to correlate multiplexed results.
type Query struct {
	Name string
	VQL  string
}

// NewQuery labels a single query string with the default name.
func NewQuery(vql string) Query {
	return Query{Name: "query", VQL: vql}
}

// NewQueries labels each query string by position: query-0, query-1, ...
func NewQueries(vqls ...string) (queries []Query) {
	for n, vql := range vqls {
		queries = append(queries, Query{Name: fmt.Sprintf("query-%d", n), VQL: vql})
	}

	return queries
}

// Env a single key/value environment binding. bindings are ordered and
// keys may repeat.
type Env struct {
	Key   string
	Value string
}

// QueryOptions options for executing queries.
type QueryOptions struct {
	// Env ordered environment bindings sent with the call.
	Env []Env
	// OrgID organization to execute within. empty selects the root organization.
	OrgID string
	// MaxRow maximum rows the service should pack per response batch.
	MaxRow uint64
}

// NewQueryOptions the default options: no environment, the root
// organization, DefaultMaxRow rows per batch.
func NewQueryOptions() QueryOptions {
	return QueryOptions{
		MaxRow: DefaultMaxRow,
	}
}

// ResultSet rows accumulated per query name. preserves the order names
// first appeared and the arrival order of rows within each name. rows
// already received are never dropped, even when a later batch for the
// same name is empty.
type ResultSet struct {
	names []string
	rows  map[string][]Row
}

func (t *ResultSet) append(name string, batch ...Row) {
	if t.rows == nil {
		t.rows = map[string][]Row{}
	}

	if _, ok := t.rows[name]; !ok {
		t.names = append(t.names, name)
	}

	t.rows[name] = append(t.rows[name], batch...)
}

// Names query names in order of first appearance.
func (t *ResultSet) Names() []string {
	return t.names
}

// Rows the rows accumulated for the given query name, in arrival order.
func (t *ResultSet) Rows(name string) []Row {
	return t.rows[name]
}

// First the rows of the first query name to appear. convenience for
// single query calls.
func (t *ResultSet) First() []Row {
	if len(t.names) == 0 {
		return nil
	}

	return t.rows[t.names[0]]
}

// Empty true when no rows were accumulated.
func (t *ResultSet) Empty() bool {
	for _, rows := range t.rows {
		if len(rows) > 0 {
			return false
		}
	}

	return true
}

// MarshalJSON renders the set as an object keyed by query name,
// preserving first appearance order.
func (t *ResultSet) MarshalJSON() ([]byte, error) {
	buf := bytes.Buffer{}

	buf.WriteByte('{')
	for i, name := range t.names {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(name)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		rows := []byte("[]")
		if batch := t.rows[name]; len(batch) > 0 {
			if rows, err = json.Marshal(batch); err != nil {
				return nil, errors.WithStack(err)
			}
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(rows)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}
