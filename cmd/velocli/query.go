package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dfirlabs/velocli/api"
	"github.com/pkg/errors"
)

type cmdQuery struct {
	Org    string   `name:"org" help:"organization to execute within"`
	Env    []string `name:"env" help:"environment binding KEY=VALUE, repeatable"`
	MaxRow uint64   `name:"max-row" help:"maximum rows per response batch" default:"10"`
	VQL    []string `arg:"" name:"vql" help:"queries to execute"`
}

func (t cmdQuery) Run(ctx *Global) (err error) {
	var (
		c       api.Conn
		results *api.ResultSet
		encoded []byte
	)

	if c, err = ctx.connect(); err != nil {
		return err
	}

	options := api.NewQueryOptions()
	options.OrgID = t.Org
	options.MaxRow = t.MaxRow

	if options.Env, err = parseEnv(t.Env); err != nil {
		return err
	}

	if results, err = c.Query(ctx.Context, options, buildQueries(t.VQL)...); err != nil {
		return err
	}

	if encoded, err = json.MarshalIndent(results, "", "  "); err != nil {
		return errors.WithStack(err)
	}

	fmt.Println(string(encoded))

	return nil
}

// buildQueries labels the submitted queries: a lone query keeps the
// default name, a list is labeled by position.
func buildQueries(vqls []string) []api.Query {
	if len(vqls) == 1 {
		return []api.Query{api.NewQuery(vqls[0])}
	}

	return api.NewQueries(vqls...)
}

func parseEnv(pairs []string) (env []api.Env, err error) {
	for _, pair := range pairs {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			return nil, errors.Errorf("malformed environment binding: %s", pair)
		}

		env = append(env, api.Env{Key: parts[0], Value: parts[1]})
	}

	return env, nil
}
