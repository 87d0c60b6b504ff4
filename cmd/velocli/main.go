// Package main implements velocli, the operator frontend to the
// velociraptor api service.
package main

import (
	"context"
	"log"
	"os"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/posener/complete"
	"github.com/willabides/kongplete"

	"github.com/dfirlabs/velocli"
	"github.com/dfirlabs/velocli/api"
	"github.com/dfirlabs/velocli/api/dialers"
	"github.com/dfirlabs/velocli/internal/debugx"
	"github.com/dfirlabs/velocli/internal/envx"
)

type Global struct {
	Verbosity int                `help:"increase verbosity of logging" short:"v" type:"counter"`
	Config    string             `help:"path to the api client configuration" predictor:"file" xor:"source"`
	Instance  string             `help:"named configuration instance to load" xor:"source"`
	Context   context.Context    `kong:"-"`
	Shutdown  context.CancelFunc `kong:"-"`
}

func (t Global) BeforeApply() error {
	if t.Verbosity > 0 || envx.Boolean(false, velocli.EnvLogsVerbose) {
		log.SetFlags(log.Flags() | log.Lmicroseconds)
	}

	return nil
}

// connect loads the credential document and builds the service connection.
func (t Global) connect() (c api.Conn, err error) {
	var (
		config api.ConfigClient
		d      dialers.Direct
	)

	path := t.Config
	if path == "" {
		instance := t.Instance
		if instance == "" {
			instance = envx.String("", velocli.EnvInstance)
		}

		path = velocli.LocateConfig(instance)
	}

	if config, err = config.LoadConfig(path); err != nil {
		return c, err
	}

	if d, err = api.NewDialer(config); err != nil {
		return c, err
	}

	return api.NewConn(d), nil
}

func logCause(err error) error {
	if err != nil {
		debugx.Printf("%+v\n", err)
	}

	return err
}

func main() {
	var shellCli struct {
		Global
		Query              cmdQuery                     `cmd:"" help:"execute vql queries on the server"`
		Client             cmdClient                    `cmd:"" help:"run artifacts on a managed endpoint"`
		Fetch              cmdFetch                     `cmd:"" help:"download a file from the server vfs"`
		InstallCompletions kongplete.InstallCompletions `cmd:"" help:"install shell completions"`
	}

	var (
		err error
		ctx *kong.Context
	)

	shellCli.Context, shellCli.Shutdown = context.WithCancel(context.Background())
	defer shellCli.Shutdown()

	log.SetFlags(log.Flags() | log.Lshortfile)
	go debugx.DumpOnSignal(shellCli.Context, syscall.SIGUSR2)

	parser := kong.Must(
		&shellCli,
		kong.Name("velocli"),
		kong.Description("operator frontend to the velociraptor api service"),
		kong.UsageOnError(),
		kong.Bind(&shellCli.Global),
	)

	kongplete.Complete(parser,
		kongplete.WithPredictor("file", complete.PredictFiles("*")),
	)

	if ctx, err = parser.Parse(os.Args[1:]); err != nil {
		log.Fatalln(err)
	}

	ctx.FatalIfErrorf(logCause(ctx.Run()))
}
