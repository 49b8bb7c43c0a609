// Command folio talks to a portfolio backend from the terminal
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"

	"folio/internal/platform/logger"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

func init() {
	// print amounts as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run parses the global flags, registers every command and executes the selected one
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger.Init(logger.FromEnv())

	fs := flag.NewFlagSet("folio", flag.ContinueOnError)
	fs.SetOutput(stderr)

	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, settings: loadSettings()}
	fs.StringVar(&a.path, "path", "", "JSONPath applied to the result, e.g. '$.accounts[*].name'")
	fs.BoolVar(&a.compact, "compact", false, "print JSON on a single line")

	commander := subcommands.NewCommander(fs, "folio")
	commander.Output = stdout
	commander.Error = stderr
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range readCommands(a) {
		commander.Register(c, "read")
	}
	for _, c := range writeCommands(a) {
		commander.Register(c, "write")
	}
	commander.Register(&localCmd{app: a}, "local")

	if err := fs.Parse(args); err != nil {
		return int(subcommands.ExitUsageError)
	}
	return int(commander.Execute(ctx))
}
