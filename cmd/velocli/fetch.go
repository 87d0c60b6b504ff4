package main

import (
	"os"

	"github.com/dfirlabs/velocli/api"
	"github.com/pkg/errors"
)

type cmdFetch struct {
	Output string `name:"output-file" help:"write the file to the given path instead of stdout" predictor:"file"`
	Path   string `arg:"" name:"path" help:"vfs path of the file to download"`
}

func (t cmdFetch) Run(ctx *Global) (err error) {
	var (
		c   api.Conn
		buf []byte
	)

	if c, err = ctx.connect(); err != nil {
		return err
	}

	if buf, err = c.Fetch(ctx.Context, t.Path); err != nil {
		return err
	}

	if t.Output == "" {
		_, err = os.Stdout.Write(buf)
		return errors.WithStack(err)
	}

	return errors.WithStack(os.WriteFile(t.Output, buf, 0600))
}
