package main

import (
	"context"
	"flag"
	"fmt"

	"folio/internal/platform/logger"

	"github.com/google/subcommands"
)

// localCmd is a container for the local store subcommands
type localCmd struct {
	app *app
}

func (*localCmd) Name() string     { return "local" }
func (*localCmd) Synopsis() string { return "read and write the local key/value store" }
func (*localCmd) Usage() string {
	return `local <subcommand> [args]

Commands:
  list              - print every key
  get <key>         - print one value
  set <key> <value> - store a value, e.g. set utm_source trusted-web-activity
  delete <key>      - remove a key
`
}

func (c *localCmd) SetFlags(f *flag.FlagSet) {}

func (c *localCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	commander := subcommands.NewCommander(f, "local")
	commander.Output = c.app.stdout
	commander.Error = c.app.stderr
	commander.Register(&localOpCmd{app: c.app, name: "list", nargs: 0}, "")
	commander.Register(&localOpCmd{app: c.app, name: "get", nargs: 1}, "")
	commander.Register(&localOpCmd{app: c.app, name: "set", nargs: 2}, "")
	commander.Register(&localOpCmd{app: c.app, name: "delete", nargs: 1}, "")
	return commander.Execute(ctx, args...)
}

// localOpCmd runs one operation against the local store file
type localOpCmd struct {
	app   *app
	name  string
	nargs int
}

func (c *localOpCmd) Name() string     { return c.name }
func (c *localOpCmd) Synopsis() string { return c.name + " local store entries" }
func (c *localOpCmd) Usage() string    { return "local " + c.name + "\n" }
func (c *localOpCmd) SetFlags(*flag.FlagSet) {}

func (c *localOpCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	ctx = logger.WithCommand(ctx, "local "+c.name)
	if f.NArg() != c.nargs {
		fmt.Fprintf(c.app.stderr, "usage: local %s takes %d argument(s)\n", c.name, c.nargs)
		return subcommands.ExitUsageError
	}
	st, err := c.app.openLocal()
	if err != nil {
		return c.app.fail(ctx, err)
	}

	args := f.Args()
	switch c.name {
	case "list":
		err = c.app.emit(st.Keys())
	case "get":
		v, ok := st.Get(args[0])
		if !ok {
			fmt.Fprintf(c.app.stderr, "key %q not set\n", args[0])
			return subcommands.ExitFailure
		}
		_, err = fmt.Fprintln(c.app.stdout, v)
	case "set":
		st.Set(args[0], args[1])
		err = st.Save()
	case "delete":
		st.Delete(args[0])
		err = st.Save()
	}
	if err != nil {
		return c.app.fail(ctx, err)
	}
	logger.C(ctx).Debug().Str("path", st.Path()).Msg("local store")
	return subcommands.ExitSuccess
}
