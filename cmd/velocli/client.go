package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dfirlabs/velocli/api"
	"github.com/pkg/errors"
)

// server side artifacts used to execute commands on a managed endpoint.
const (
	artifactVQL        = "Generic.Client.VQL"
	artifactBashShell  = "Linux.Sys.BashShell"
	artifactCmdShell   = "Windows.System.CmdShell"
	artifactPowershell = "Windows.System.PowerShell"
)

type cmdClient struct {
	Query      cmdClientQuery      `cmd:"" help:"run a vql query on the endpoint"`
	Bash       cmdClientBash       `cmd:"" help:"run a bash command on the endpoint"`
	Cmd        cmdClientCmd        `cmd:"" help:"run a cmd.exe command on the endpoint"`
	Powershell cmdClientPowershell `cmd:"" help:"run a powershell command on the endpoint"`
}

type clientTarget struct {
	ClientID string `arg:"" name:"client-id" help:"endpoint to run on"`
	Command  string `arg:"" name:"command" help:"command to execute"`
}

type cmdClientQuery struct {
	clientTarget
}

func (t cmdClientQuery) Run(ctx *Global) (err error) {
	var (
		rows    []api.Row
		encoded []byte
	)

	if rows, err = collect(ctx, t.ClientID, artifactVQL, t.Command); err != nil {
		return err
	}

	if encoded, err = json.MarshalIndent(rows, "", "  "); err != nil {
		return errors.WithStack(err)
	}

	fmt.Println(string(encoded))

	return nil
}

type cmdClientBash struct {
	clientTarget
}

func (t cmdClientBash) Run(ctx *Global) error {
	return shell(ctx, t.ClientID, artifactBashShell, t.Command)
}

type cmdClientCmd struct {
	clientTarget
}

func (t cmdClientCmd) Run(ctx *Global) error {
	return shell(ctx, t.ClientID, artifactCmdShell, t.Command)
}

type cmdClientPowershell struct {
	clientTarget
}

func (t cmdClientPowershell) Run(ctx *Global) error {
	return shell(ctx, t.ClientID, artifactPowershell, t.Command)
}

// collect schedules the artifact on the endpoint and waits for its results.
func collect(ctx *Global, clientID, artifact, command string) (rows []api.Row, err error) {
	var (
		c api.Conn
		f api.Flow
	)

	if c, err = ctx.connect(); err != nil {
		return nil, err
	}

	if f, err = c.ScheduleFlow(ctx.Context, clientID, artifact, command); err != nil {
		return nil, err
	}

	log.Println("scheduled flow", f.String())

	return f.Fetch(ctx.Context)
}

// shellResult the row shape produced by the shell artifacts.
type shellResult struct {
	Stdout     string `json:"Stdout"`
	Stderr     string `json:"Stderr"`
	ReturnCode int    `json:"ReturnCode"`
	Complete   bool   `json:"Complete"`
}

// shell folds the shell artifact rows into the local stdout and stderr.
func shell(ctx *Global, clientID, artifact, command string) (err error) {
	var (
		rows []api.Row
	)

	if rows, err = collect(ctx, clientID, artifact, command); err != nil {
		return err
	}

	return foldShell(os.Stdout, os.Stderr, rows)
}

// foldShell writes each row's captured output in arrival order. the
// return code is part of the row shape but is not translated into a
// local exit status.
func foldShell(stdout, stderr io.Writer, rows []api.Row) (err error) {
	for _, raw := range rows {
		var (
			result shellResult
		)

		if err = json.Unmarshal(raw, &result); err != nil {
			return errors.Wrap(err, "malformed shell result")
		}

		fmt.Fprint(stdout, result.Stdout)
		fmt.Fprint(stderr, result.Stderr)
	}

	return nil
}
