package ghostfolio

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"folio/internal/core/info"
	"folio/internal/core/permissions"
)

// local store marker set when launched as a trusted web activity
const (
	utmSourceKey       = "utm_source"
	trustedWebActivity = "trusted-web-activity"
)

// FetchAccounts lists the accounts
func (c *Client) FetchAccounts(ctx context.Context) (Accounts, error) {
	return get[Accounts](ctx, c, "/account", nil)
}

// FetchAccesses lists the access grants
func (c *Client) FetchAccesses(ctx context.Context) ([]Access, error) {
	return get[[]Access](ctx, c, "/access", nil)
}

// FetchAdminData returns the admin overview
func (c *Client) FetchAdminData(ctx context.Context) (AdminData, error) {
	return get[AdminData](ctx, c, "/admin", nil)
}

// FetchAdminMarketData lists the tracked symbols
func (c *Client) FetchAdminMarketData(ctx context.Context) (AdminMarketData, error) {
	return get[AdminMarketData](ctx, c, "/admin/market-data", nil)
}

// FetchChart returns the performance chart for range
func (c *Client) FetchChart(ctx context.Context, r DateRange) (PortfolioChart, error) {
	return get[PortfolioChart](ctx, c, "/portfolio/chart", rangeQuery(r))
}

// FetchExport exports all activities, or only activityIDs when any are given
func (c *Client) FetchExport(ctx context.Context, activityIDs []string) (Export, error) {
	var q url.Values
	if len(activityIDs) > 0 {
		q = url.Values{"activityIds": {strings.Join(activityIDs, ",")}}
	}
	return get[Export](ctx, c, "/export", q)
}

// FetchInfo returns a private copy of the instance info. When the app runs as a
// trusted web activity the subscription permission is withheld
func (c *Client) FetchInfo(ctx context.Context) (info.Item, error) {
	if err := ctx.Err(); err != nil {
		return info.Item{}, err
	}
	it, err := c.info.Get()
	if err != nil {
		return info.Item{}, err
	}
	if !permissions.Has(it.GlobalPermissions, permissions.EnableSubscription) {
		return it, nil
	}
	if v, ok := c.local.Get(utmSourceKey); ok && v == trustedWebActivity {
		it.GlobalPermissions = permissions.Without(it.GlobalPermissions, permissions.EnableSubscription)
	}
	return it, nil
}

// FetchInvestments returns the investment timeline with firstOrderDate parsed
func (c *Client) FetchInvestments(ctx context.Context) (PortfolioInvestments, error) {
	return getNormalized[investmentsWire, PortfolioInvestments](ctx, c, "/portfolio/investments")
}

// FetchSymbolItem quotes one symbol. includeHistoricalData > 0 asks for that many days of history
func (c *Client) FetchSymbolItem(ctx context.Context, dataSource, symbol string, includeHistoricalData int) (SymbolItem, error) {
	var q url.Values
	if includeHistoricalData > 0 {
		q = url.Values{"includeHistoricalData": {strconv.Itoa(includeHistoricalData)}}
	}
	return get[SymbolItem](ctx, c, "/symbol/"+seg(dataSource)+"/"+seg(symbol), q)
}

// FetchPositions lists positions over range
func (c *Client) FetchPositions(ctx context.Context, r DateRange) (PortfolioPositions, error) {
	return get[PortfolioPositions](ctx, c, "/portfolio/positions", rangeQuery(r))
}

// FetchSymbols searches symbols by name or ticker
func (c *Client) FetchSymbols(ctx context.Context, query string) ([]LookupItem, error) {
	env, err := get[lookupEnvelope](ctx, c, "/symbol/lookup", url.Values{"query": {query}})
	if err != nil {
		return nil, err
	}
	return env.Items, nil
}

// FetchOrders lists activities with createdAt and date parsed
func (c *Client) FetchOrders(ctx context.Context) (Activities, error) {
	return getNormalized[activitiesWire, Activities](ctx, c, "/order")
}

// FetchPortfolioDetails returns the allocation breakdown narrowed by filters
func (c *Client) FetchPortfolioDetails(ctx context.Context, filters []Filter) (PortfolioDetails, error) {
	return get[PortfolioDetails](ctx, c, "/portfolio/details", FilterQuery(filters))
}

// FetchPortfolioPerformance passes params through as the query; params is not modified
func (c *Client) FetchPortfolioPerformance(ctx context.Context, params url.Values) (PortfolioPerformanceResponse, error) {
	var q url.Values
	if len(params) > 0 {
		q = cloneValues(params)
	}
	return get[PortfolioPerformanceResponse](ctx, c, "/portfolio/performance", q)
}

// FetchPortfolioPublic returns the shared portfolio page with access id
func (c *Client) FetchPortfolioPublic(ctx context.Context, id string) (PortfolioPublicDetails, error) {
	return get[PortfolioPublicDetails](ctx, c, "/portfolio/public/"+seg(id), nil)
}

// FetchPortfolioReport returns the x-ray report
func (c *Client) FetchPortfolioReport(ctx context.Context) (PortfolioReport, error) {
	return get[PortfolioReport](ctx, c, "/portfolio/report", nil)
}

// FetchPortfolioSummary returns the totals with firstOrderDate parsed
func (c *Client) FetchPortfolioSummary(ctx context.Context) (PortfolioSummary, error) {
	return getNormalized[summaryWire, PortfolioSummary](ctx, c, "/portfolio/summary")
}

// FetchPositionDetail drills into one holding; its orders get createdAt and date parsed
func (c *Client) FetchPositionDetail(ctx context.Context, dataSource, symbol string) (PositionDetail, error) {
	return getNormalized[positionDetailWire, PositionDetail](ctx, c, "/portfolio/position/"+seg(dataSource)+"/"+seg(symbol))
}

// LoginAnonymous exchanges an access token for an auth token
func (c *Client) LoginAnonymous(ctx context.Context, accessToken string) (AuthToken, error) {
	return get[AuthToken](ctx, c, "/auth/anonymous/"+seg(accessToken), nil)
}

func rangeQuery(r DateRange) url.Values {
	if r == "" {
		return nil
	}
	return url.Values{"range": {string(r)}}
}

func cloneValues(in url.Values) url.Values {
	out := make(url.Values, len(in))
	for k, vs := range in {
		out[k] = append([]string(nil), vs...)
	}
	return out
}
