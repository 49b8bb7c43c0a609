package main

import (
	"context"
	"flag"
	"net/url"
	"strings"

	"folio/internal/adapters/ghostfolio"
	perr "folio/internal/platform/errors"
	pstrings "folio/internal/platform/strings"
)

// filterFlag collects repeated filter flags of one facet into a shared list
type filterFlag struct {
	typ  ghostfolio.FilterType
	dest *[]ghostfolio.Filter
}

func (f filterFlag) String() string { return "" }

func (f filterFlag) Set(v string) error {
	for _, id := range pstrings.SplitList(v, ",") {
		*f.dest = append(*f.dest, ghostfolio.Filter{ID: id, Type: f.typ})
	}
	return nil
}

// parseParams turns key=value arguments into query values
func parseParams(args []string) (url.Values, error) {
	q := url.Values{}
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, perr.WithField(perr.InvalidArgf("expected key=value, got %q", arg), "params")
		}
		q.Add(k, v)
	}
	return q, nil
}

func readCommands(a *app) []*apiCmd {
	var (
		chartRange    string
		positionRange string
		history       int
		filters       []ghostfolio.Filter
	)
	return []*apiCmd{
		{
			app: a, name: "accounts", synopsis: "list accounts with totals", usage: "accounts",
			call: func(ctx context.Context, c *ghostfolio.Client, _ []string) (any, error) {
				return c.FetchAccounts(ctx)
			},
		},
		{
			app: a, name: "accesses", synopsis: "list access grants", usage: "accesses",
			call: func(ctx context.Context, c *ghostfolio.Client, _ []string) (any, error) {
				return c.FetchAccesses(ctx)
			},
		},
		{
			app: a, name: "admin", synopsis: "show the admin overview", usage: "admin",
			call: func(ctx context.Context, c *ghostfolio.Client, _ []string) (any, error) {
				return c.FetchAdminData(ctx)
			},
		},
		{
			app: a, name: "market-data", synopsis: "list tracked symbols", usage: "market-data",
			call: func(ctx context.Context, c *ghostfolio.Client, _ []string) (any, error) {
				return c.FetchAdminMarketData(ctx)
			},
		},
		{
			app: a, name: "chart", synopsis: "show the performance chart", usage: "chart [-range max]",
			flags: func(f *flag.FlagSet) {
				f.StringVar(&chartRange, "range", string(ghostfolio.RangeMax), "date range: 1d, ytd, 1y, 5y, max")
			},
			call: func(ctx context.Context, c *ghostfolio.Client, _ []string) (any, error) {
				return c.FetchChart(ctx, ghostfolio.DateRange(chartRange))
			},
		},
		{
			app: a, name: "export", synopsis: "export activities", usage: "export [activity-id ...]", nargs: -1,
			call: func(ctx context.Context, c *ghostfolio.Client, args []string) (any, error) {
				return c.FetchExport(ctx, args)
			},
		},
		{
			app: a, name: "info", synopsis: "show instance info", usage: "info",
			call: func(ctx context.Context, c *ghostfolio.Client, _ []string) (any, error) {
				return c.FetchInfo(ctx)
			},
		},
		{
			app: a, name: "investments", synopsis: "show the investment timeline", usage: "investments",
			call: func(ctx context.Context, c *ghostfolio.Client, _ []string) (any, error) {
				return c.FetchInvestments(ctx)
			},
		},
		{
			app: a, name: "symbol", synopsis: "quote a symbol", usage: "symbol [-history days] <data-source> <symbol>", nargs: 2,
			flags: func(f *flag.FlagSet) {
				f.IntVar(&history, "history", 0, "days of historical data to include")
			},
			call: func(ctx context.Context, c *ghostfolio.Client, args []string) (any, error) {
				return c.FetchSymbolItem(ctx, args[0], args[1], history)
			},
		},
		{
			app: a, name: "positions", synopsis: "list positions", usage: "positions [-range max]",
			flags: func(f *flag.FlagSet) {
				f.StringVar(&positionRange, "range", string(ghostfolio.RangeMax), "date range: 1d, ytd, 1y, 5y, max")
			},
			call: func(ctx context.Context, c *ghostfolio.Client, _ []string) (any, error) {
				return c.FetchPositions(ctx, ghostfolio.DateRange(positionRange))
			},
		},
		{
			app: a, name: "lookup", synopsis: "search symbols", usage: "lookup <query ...>", nargs: -1,
			call: func(ctx context.Context, c *ghostfolio.Client, args []string) (any, error) {
				if len(args) == 0 {
					return nil, perr.WithField(perr.InvalidArgf("a search query is required"), "query")
				}
				return c.FetchSymbols(ctx, strings.Join(args, " "))
			},
		},
		{
			app: a, name: "orders", synopsis: "list activities", usage: "orders",
			call: func(ctx context.Context, c *ghostfolio.Client, _ []string) (any, error) {
				return c.FetchOrders(ctx)
			},
		},
		{
			app: a, name: "details", synopsis: "show the allocation breakdown",
			usage: "details [-account id] [-asset-class class] [-tag id]",
			flags: func(f *flag.FlagSet) {
				f.Var(filterFlag{ghostfolio.FilterAccount, &filters}, "account", "account id, repeatable or comma separated")
				f.Var(filterFlag{ghostfolio.FilterAssetClass, &filters}, "asset-class", "asset class, repeatable or comma separated")
				f.Var(filterFlag{ghostfolio.FilterTag, &filters}, "tag", "tag id, repeatable or comma separated")
			},
			call: func(ctx context.Context, c *ghostfolio.Client, _ []string) (any, error) {
				return c.FetchPortfolioDetails(ctx, filters)
			},
		},
		{
			app: a, name: "performance", synopsis: "show portfolio performance", usage: "performance [key=value ...]", nargs: -1,
			call: func(ctx context.Context, c *ghostfolio.Client, args []string) (any, error) {
				q, err := parseParams(args)
				if err != nil {
					return nil, err
				}
				return c.FetchPortfolioPerformance(ctx, q)
			},
		},
		{
			app: a, name: "public", synopsis: "show a shared portfolio", usage: "public <access-id>", nargs: 1,
			call: func(ctx context.Context, c *ghostfolio.Client, args []string) (any, error) {
				return c.FetchPortfolioPublic(ctx, args[0])
			},
		},
		{
			app: a, name: "report", synopsis: "show the x-ray report", usage: "report",
			call: func(ctx context.Context, c *ghostfolio.Client, _ []string) (any, error) {
				return c.FetchPortfolioReport(ctx)
			},
		},
		{
			app: a, name: "summary", synopsis: "show portfolio totals", usage: "summary",
			call: func(ctx context.Context, c *ghostfolio.Client, _ []string) (any, error) {
				return c.FetchPortfolioSummary(ctx)
			},
		},
		{
			app: a, name: "position", synopsis: "drill into one holding", usage: "position <data-source> <symbol>", nargs: 2,
			call: func(ctx context.Context, c *ghostfolio.Client, args []string) (any, error) {
				return c.FetchPositionDetail(ctx, args[0], args[1])
			},
		},
		{
			app: a, name: "login-anonymous", synopsis: "exchange an access token for an auth token",
			usage: "login-anonymous <access-token>", nargs: 1,
			call: func(ctx context.Context, c *ghostfolio.Client, args []string) (any, error) {
				return c.LoginAnonymous(ctx, args[0])
			},
		},
	}
}
