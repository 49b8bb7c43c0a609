package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"folio/internal/adapters/ghostfolio"
	"folio/internal/core/info"
	"folio/internal/core/version"
	"folio/internal/platform/config"
	perr "folio/internal/platform/errors"
	"folio/internal/platform/localstore"
	"folio/internal/platform/logger"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

// settings is the FOLIO_ environment
type settings struct {
	BaseURL      string
	Token        string
	UserAgent    string
	Timeout      time.Duration
	MaxBodyBytes int
	Rate         float64
	RateBurst    int
	InfoFile     string
	LocalStore   string
}

func loadSettings() settings {
	c := config.New().Prefix("FOLIO_")
	api := c.Prefix("API_")
	return settings{
		BaseURL:      api.MayURL("BASE_URL", ghostfolio.DefaultBaseURL),
		Token:        api.MayString("TOKEN", ""),
		UserAgent:    api.MayString("USER_AGENT", version.UserAgent()),
		Timeout:      api.MayDuration("TIMEOUT", 30*time.Second),
		MaxBodyBytes: api.MayInt("MAX_BODY_BYTES", 8<<20),
		Rate:         api.MayFloat("RATE", 0),
		RateBurst:    api.MayInt("RATE_BURST", 1),
		InfoFile:     c.MayString("INFO_FILE", ""),
		LocalStore:   c.MayString("LOCAL_STORE", localstore.DefaultPath()),
	}
}

// app is the state shared by every command of one invocation
type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	settings       settings

	// global flags
	path    string
	compact bool
}

// openLocal opens the local key/value store
func (a *app) openLocal() (*localstore.File, error) {
	return localstore.Open(a.settings.LocalStore)
}

// client builds the API client. It runs once per invocation and loads the
// info blob into info.Default when one is configured
func (a *app) client() (*ghostfolio.Client, error) {
	s := a.settings
	if s.InfoFile != "" {
		it, err := info.LoadFile(s.InfoFile)
		if err != nil {
			return nil, err
		}
		info.Default().Set(it)
	}
	local, err := a.openLocal()
	if err != nil {
		return nil, err
	}
	tr := ghostfolio.NewHTTPTransport(ghostfolio.Options{
		BaseURL:       s.BaseURL,
		Token:         s.Token,
		UserAgent:     s.UserAgent,
		Timeout:       s.Timeout,
		MaxBodyBytes:  int64(s.MaxBodyBytes),
		RatePerSecond: s.Rate,
		RateBurst:     s.RateBurst,
	})
	return ghostfolio.NewClient(tr, ghostfolio.WithInfo(info.Default()), ghostfolio.WithLocalStore(local)), nil
}

// emit prints v as JSON, narrowed by -path when set
func (a *app) emit(v any) error {
	if a.path != "" {
		b, err := json.Marshal(v)
		if err != nil {
			return perr.Wrap(err, perr.ErrorCodeJSON, "encode result")
		}
		var jobj any
		if err := json.Unmarshal(b, &jobj); err != nil {
			return perr.Wrap(err, perr.ErrorCodeJSON, "decode result")
		}
		jval, err := jsonpath.Get(a.path, jobj)
		if err != nil {
			return perr.WithField(perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "evaluate path %q", a.path), "path")
		}
		// a path matching one element yields a list of one; print the element
		if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
			jval = jlist[0]
		}
		v = jval
	}

	var (
		b   []byte
		err error
	)
	if a.compact {
		b, err = json.Marshal(v)
	} else {
		b, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeJSON, "encode result")
	}
	_, err = fmt.Fprintln(a.stdout, string(b))
	return err
}

// fail reports err on stderr and maps it to an exit status
func (a *app) fail(ctx context.Context, err error) subcommands.ExitStatus {
	logger.C(ctx).Debug().
		Err(err).
		Str("code", perr.CodeOf(err).String()).
		AnErr("cause", perr.Root(err)).
		Msg("command failed")

	msg := err.Error()
	if e, ok := perr.As(err); ok && e.Field() != "" && perr.IsCode(err, perr.ErrorCodeValidation) {
		msg = fmt.Sprintf("invalid payload: %s", e.Message())
	}
	fmt.Fprintf(a.stderr, "error: %s\n", msg)

	var se *ghostfolio.StatusError
	if errors.As(err, &se) && se.Body != "" {
		fmt.Fprintf(a.stderr, "response: %s\n", se.Body)
	}
	switch {
	case ghostfolio.IsUnauthorized(err):
		fmt.Fprintln(a.stderr, "hint: set FOLIO_API_TOKEN to a valid bearer token")
	case ghostfolio.IsNotFound(err):
		fmt.Fprintf(a.stderr, "hint: check the arguments and FOLIO_API_BASE_URL (%s)\n", a.settings.BaseURL)
	case perr.Retryable(err):
		fmt.Fprintln(a.stderr, "hint: the backend is busy or unreachable, try again later")
	}
	if perr.IsCode(err, perr.ErrorCodeInvalidArgument) && ghostfolio.StatusOf(err) == 0 {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// apiCmd is a command backed by one client call
type apiCmd struct {
	app      *app
	name     string
	synopsis string
	usage    string
	nargs    int // positional arguments required, -1 for any
	flags    func(f *flag.FlagSet)
	call     func(ctx context.Context, c *ghostfolio.Client, args []string) (any, error)
}

func (c *apiCmd) Name() string     { return c.name }
func (c *apiCmd) Synopsis() string { return c.synopsis }
func (c *apiCmd) Usage() string    { return c.usage + "\n" }

func (c *apiCmd) SetFlags(f *flag.FlagSet) {
	if c.flags != nil {
		c.flags(f)
	}
}

func (c *apiCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	ctx = logger.WithRequest(logger.WithCommand(ctx, c.name), uuid.NewString())
	if c.nargs >= 0 && f.NArg() != c.nargs {
		fmt.Fprintf(c.app.stderr, "usage: %s\n", c.usage)
		return subcommands.ExitUsageError
	}
	cl, err := c.app.client()
	if err != nil {
		return c.app.fail(ctx, err)
	}
	v, err := c.call(ctx, cl, f.Args())
	if err != nil {
		return c.app.fail(ctx, err)
	}
	if v == nil {
		return subcommands.ExitSuccess
	}
	if err := c.app.emit(v); err != nil {
		return c.app.fail(ctx, err)
	}
	return subcommands.ExitSuccess
}
