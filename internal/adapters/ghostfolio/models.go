package ghostfolio

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// DateRange selects the window of a chart or position query, e.g. 1d, ytd, 1y, 5y, max
type DateRange string

// Known date ranges. Other tokens are sent as given
const (
	Range1D  DateRange = "1d"
	RangeYTD DateRange = "ytd"
	Range1Y  DateRange = "1y"
	Range5Y  DateRange = "5y"
	RangeMax DateRange = "max"
)

// FilterType is the facet a Filter applies to
type FilterType string

// Filter facets
const (
	FilterAccount    FilterType = "ACCOUNT"
	FilterAssetClass FilterType = "ASSET_CLASS"
	FilterTag        FilterType = "TAG"
)

// Filter narrows portfolio details to one account, asset class or tag
type Filter struct {
	ID   string     `json:"id"`
	Type FilterType `json:"type"`
}

// Access is a grant of read access to the portfolio
type Access struct {
	Alias        string `json:"alias,omitempty"`
	GranteeAlias string `json:"granteeAlias,omitempty"`
	ID           string `json:"id"`
	Type         string `json:"type,omitempty"`
}

// Account is a cash or securities account
type Account struct {
	Balance             decimal.Decimal     `json:"balance"`
	Comment             *string             `json:"comment,omitempty"`
	CreatedAt           string              `json:"createdAt,omitempty"`
	Currency            string              `json:"currency"`
	ID                  string              `json:"id"`
	IsDefault           bool                `json:"isDefault,omitempty"`
	IsExcluded          bool                `json:"isExcluded,omitempty"`
	Name                string              `json:"name"`
	PlatformID          *string             `json:"platformId,omitempty"`
	TransactionCount    int                 `json:"transactionCount,omitempty"`
	UpdatedAt           string              `json:"updatedAt,omitempty"`
	UserID              string              `json:"userId,omitempty"`
	Value               decimal.NullDecimal `json:"value"`
	ValueInBaseCurrency decimal.NullDecimal `json:"valueInBaseCurrency"`
}

// Accounts is the account listing with totals in the base currency
type Accounts struct {
	Accounts                   []Account       `json:"accounts"`
	TotalBalanceInBaseCurrency decimal.Decimal `json:"totalBalanceInBaseCurrency"`
	TotalValueInBaseCurrency   decimal.Decimal `json:"totalValueInBaseCurrency"`
	TransactionCount           int             `json:"transactionCount"`
}

// ExchangeRate is one currency pair on the admin overview
type ExchangeRate struct {
	Label1 string          `json:"label1"`
	Label2 string          `json:"label2"`
	Value  decimal.Decimal `json:"value"`
}

// AdminUser is a user row on the admin overview
type AdminUser struct {
	AccountCount     int      `json:"accountCount"`
	Country          string   `json:"country,omitempty"`
	CreatedAt        string   `json:"createdAt"`
	Engagement       *float64 `json:"engagement,omitempty"`
	ID               string   `json:"id"`
	LastActivity     string   `json:"lastActivity,omitempty"`
	TransactionCount int      `json:"transactionCount"`
}

// AdminData is the admin overview
type AdminData struct {
	ExchangeRates     []ExchangeRate `json:"exchangeRates"`
	LastDataGathering *string        `json:"lastDataGathering,omitempty"`
	Settings          map[string]any `json:"settings"`
	TransactionCount  int            `json:"transactionCount"`
	UserCount         int            `json:"userCount"`
	Users             []AdminUser    `json:"users"`
}

// AdminMarketDataItem is one tracked symbol
type AdminMarketDataItem struct {
	ActivitiesCount int    `json:"activitiesCount,omitempty"`
	AssetClass      string `json:"assetClass,omitempty"`
	AssetSubClass   string `json:"assetSubClass,omitempty"`
	Currency        string `json:"currency,omitempty"`
	DataSource      string `json:"dataSource"`
	Date            string `json:"date,omitempty"`
	MarketDataCount int    `json:"marketDataItemCount,omitempty"`
	Symbol          string `json:"symbol"`
}

// AdminMarketData lists every tracked symbol
type AdminMarketData struct {
	Count      int                   `json:"count,omitempty"`
	MarketData []AdminMarketDataItem `json:"marketData"`
}

// HistoricalDataItem is one point of a time series; Date stays as sent
type HistoricalDataItem struct {
	Date                        string   `json:"date"`
	MarketPrice                 *float64 `json:"marketPrice,omitempty"`
	NetPerformanceInPercentage  *float64 `json:"netPerformanceInPercentage,omitempty"`
	TotalInvestment             *float64 `json:"totalInvestment,omitempty"`
	Value                       *float64 `json:"value,omitempty"`
	ValueInPercentage           *float64 `json:"valueInPercentage,omitempty"`
	NetWorth                    *float64 `json:"netWorth,omitempty"`
	NetPerformance              *float64 `json:"netPerformance,omitempty"`
	InvestmentValueWithCurrency *float64 `json:"investmentValueWithCurrencyEffect,omitempty"`
}

// PortfolioChart is the performance chart for a date range
type PortfolioChart struct {
	Chart    []HistoricalDataItem `json:"chart"`
	HasError bool                 `json:"hasError"`
}

// ExportMeta describes an export document
type ExportMeta struct {
	Date    string `json:"date"`
	Version string `json:"version"`
}

// ExportActivity is an activity in import/export shape
type ExportActivity struct {
	AccountID  *string         `json:"accountId,omitempty"`
	Comment    *string         `json:"comment,omitempty"`
	Currency   string          `json:"currency"`
	DataSource string          `json:"dataSource"`
	Date       string          `json:"date"`
	Fee        decimal.Decimal `json:"fee"`
	Quantity   decimal.Decimal `json:"quantity"`
	Symbol     string          `json:"symbol"`
	Type       string          `json:"type"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
}

// Export is a portable dump of accounts and activities
type Export struct {
	Meta       ExportMeta       `json:"meta"`
	Accounts   []Account        `json:"accounts"`
	Activities []ExportActivity `json:"activities"`
	User       struct {
		Settings struct {
			Currency string `json:"currency"`
		} `json:"settings"`
	} `json:"user"`
}

// InvestmentItem is the amount invested on a given date
type InvestmentItem struct {
	Date       string          `json:"date"`
	Investment decimal.Decimal `json:"investment"`
}

// PortfolioInvestments is the investment timeline
type PortfolioInvestments struct {
	FirstOrderDate *time.Time       `json:"firstOrderDate,omitempty"`
	Investments    []InvestmentItem `json:"investments"`
}

// SymbolItem is the quote of one symbol with optional history
type SymbolItem struct {
	Currency       string               `json:"currency"`
	DataSource     string               `json:"dataSource"`
	HistoricalData []HistoricalDataItem `json:"historicalData,omitempty"`
	MarketPrice    float64              `json:"marketPrice"`
}

// LookupItem is a symbol search hit
type LookupItem struct {
	AssetClass    string `json:"assetClass,omitempty"`
	AssetSubClass string `json:"assetSubClass,omitempty"`
	Currency      string `json:"currency"`
	DataSource    string `json:"dataSource"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
}

// MarketState tells whether the quote of a position is live
type MarketState string

// Known market states
const (
	MarketClosed  MarketState = "closed"
	MarketDelayed MarketState = "delayed"
	MarketOpen    MarketState = "open"
)

// Position is a holding summarized over a date range
type Position struct {
	AssetClass               string          `json:"assetClass,omitempty"`
	AssetSubClass            string          `json:"assetSubClass,omitempty"`
	AveragePrice             decimal.Decimal `json:"averagePrice"`
	Currency                 string          `json:"currency"`
	DataSource               string          `json:"dataSource"`
	FirstBuyDate             string          `json:"firstBuyDate,omitempty"`
	Investment               decimal.Decimal `json:"investment"`
	MarketPrice              float64         `json:"marketPrice"`
	MarketState              MarketState     `json:"marketState,omitempty"`
	Name                     string          `json:"name,omitempty"`
	NetPerformance           decimal.Decimal `json:"netPerformance"`
	NetPerformancePercentage float64         `json:"netPerformancePercentage"`
	Quantity                 decimal.Decimal `json:"quantity"`
	Symbol                   string          `json:"symbol"`
	TransactionCount         int             `json:"transactionCount"`
	URL                      string          `json:"url,omitempty"`
}

// PortfolioPositions lists positions for a date range
type PortfolioPositions struct {
	Positions []Position `json:"positions"`
}

// SymbolProfile describes an asset
type SymbolProfile struct {
	AssetClass    string `json:"assetClass,omitempty"`
	AssetSubClass string `json:"assetSubClass,omitempty"`
	Currency      string `json:"currency"`
	DataSource    string `json:"dataSource"`
	ID            string `json:"id,omitempty"`
	Name          string `json:"name,omitempty"`
	Symbol        string `json:"symbol"`
}

// AccountRef is the account embedded in an order
type AccountRef struct {
	Currency string `json:"currency,omitempty"`
	ID       string `json:"id"`
	Name     string `json:"name"`
}

// OrderFields are the order columns that are never reshaped. Optional
// columns are pointers so an absent column stays absent when re-encoded.
// Columns without a field here are kept in Extra
type OrderFields struct {
	Account             *AccountRef      `json:"Account,omitempty"`
	AccountID           *string          `json:"accountId,omitempty"`
	AccountUserID       *string          `json:"accountUserId,omitempty"`
	Comment             *string          `json:"comment,omitempty"`
	Currency            string           `json:"currency,omitempty"`
	DataSource          string           `json:"dataSource,omitempty"`
	Fee                 *decimal.Decimal `json:"fee,omitempty"`
	FeeInBaseCurrency   *decimal.Decimal `json:"feeInBaseCurrency,omitempty"`
	ID                  string           `json:"id"`
	IsDraft             *bool            `json:"isDraft,omitempty"`
	Quantity            *decimal.Decimal `json:"quantity,omitempty"`
	SymbolProfile       *SymbolProfile   `json:"SymbolProfile,omitempty"`
	SymbolProfileID     string           `json:"symbolProfileId,omitempty"`
	Tags                *[]Tag           `json:"tags,omitempty"`
	Type                string           `json:"type,omitempty"`
	UnitPrice           *decimal.Decimal `json:"unitPrice,omitempty"`
	UpdatedAt           string           `json:"updatedAt,omitempty"`
	UserID              string           `json:"userId,omitempty"`
	Value               *decimal.Decimal `json:"value,omitempty"`
	ValueInBaseCurrency *decimal.Decimal `json:"valueInBaseCurrency,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Order is an order as the backend sends it, dates as ISO strings
type Order struct {
	OrderFields
	CreatedAt string `json:"createdAt"`
	Date      string `json:"date"`
}

// Activity is an order with createdAt and date parsed
type Activity struct {
	OrderFields
	CreatedAt time.Time `json:"createdAt"`
	Date      time.Time `json:"date"`
}

// Activities is the order listing
type Activities struct {
	Activities []Activity `json:"activities"`
}

// DetailsAccount is an account bucket of the portfolio details
type DetailsAccount struct {
	Balance             decimal.Decimal `json:"balance"`
	Currency            string          `json:"currency"`
	Name                string          `json:"name"`
	Value               decimal.Decimal `json:"value"`
	ValueInBaseCurrency decimal.Decimal `json:"valueInBaseCurrency"`
}

// DetailsPlatform is a platform bucket of the portfolio details
type DetailsPlatform struct {
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
	Name     string          `json:"name"`
	Value    decimal.Decimal `json:"valueInBaseCurrency"`
}

// Weight is a share of a country or sector
type Weight struct {
	Code   string  `json:"code,omitempty"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// Holding is one position in the portfolio details
type Holding struct {
	AllocationInPercentage   float64         `json:"allocationInPercentage"`
	AssetClass               string          `json:"assetClass,omitempty"`
	AssetSubClass            string          `json:"assetSubClass,omitempty"`
	Countries                []Weight        `json:"countries,omitempty"`
	Currency                 string          `json:"currency"`
	DataSource               string          `json:"dataSource"`
	Investment               decimal.Decimal `json:"investment"`
	MarketPrice              float64         `json:"marketPrice"`
	MarketState              MarketState     `json:"marketState,omitempty"`
	Name                     string          `json:"name"`
	NetPerformance           decimal.Decimal `json:"netPerformance"`
	NetPerformancePercentage float64         `json:"netPerformancePercent"`
	Quantity                 decimal.Decimal `json:"quantity"`
	Sectors                  []Weight        `json:"sectors,omitempty"`
	Symbol                   string          `json:"symbol"`
	Value                    decimal.Decimal `json:"valueInBaseCurrency"`
}

// PortfolioDetails is the allocation breakdown, optionally filtered
type PortfolioDetails struct {
	Accounts  map[string]DetailsAccount  `json:"accounts"`
	HasErrors bool                       `json:"hasErrors"`
	Holdings  map[string]Holding         `json:"holdings"`
	Platforms map[string]DetailsPlatform `json:"platforms,omitempty"`
}

// PortfolioPerformance are the headline performance numbers
type PortfolioPerformance struct {
	AnnualizedPerformancePercent   *float64        `json:"annualizedPerformancePercent,omitempty"`
	CurrentGrossPerformance        decimal.Decimal `json:"currentGrossPerformance"`
	CurrentGrossPerformancePercent float64         `json:"currentGrossPerformancePercent"`
	CurrentNetPerformance          decimal.Decimal `json:"currentNetPerformance"`
	CurrentNetPerformancePercent   float64         `json:"currentNetPerformancePercent"`
	CurrentValue                   decimal.Decimal `json:"currentValue"`
	TotalInvestment                decimal.Decimal `json:"totalInvestment"`
}

// PortfolioPerformanceResponse wraps PortfolioPerformance
type PortfolioPerformanceResponse struct {
	Chart       []HistoricalDataItem `json:"chart,omitempty"`
	HasErrors   bool                 `json:"hasErrors"`
	Performance PortfolioPerformance `json:"performance"`
}

// PublicHolding is a holding on a shared portfolio page, amounts as shares only
type PublicHolding struct {
	AllocationInPercentage float64  `json:"allocationInPercentage"`
	Countries              []Weight `json:"countries,omitempty"`
	Currency               string   `json:"currency"`
	DataSource             string   `json:"dataSource"`
	Name                   string   `json:"name"`
	Sectors                []Weight `json:"sectors,omitempty"`
	Symbol                 string   `json:"symbol"`
	URL                    string   `json:"url,omitempty"`
	Value                  float64  `json:"valueInPercentage"`
}

// PortfolioPublicDetails is a shared portfolio page
type PortfolioPublicDetails struct {
	Alias      string                   `json:"alias,omitempty"`
	HasDetails bool                     `json:"hasDetails"`
	Holdings   map[string]PublicHolding `json:"holdings"`
}

// ReportRule is one rule evaluation of the x-ray report
type ReportRule struct {
	Evaluation string `json:"evaluation"`
	IsActive   bool   `json:"isActive"`
	Name       string `json:"name"`
	Value      bool   `json:"value"`
}

// PortfolioReport is the x-ray report grouped by category
type PortfolioReport struct {
	Rules map[string][]ReportRule `json:"rules"`
}

// PortfolioSummary are the portfolio totals
type PortfolioSummary struct {
	PortfolioPerformance
	Cash           decimal.Decimal `json:"cash"`
	Committed      decimal.Decimal `json:"committedFunds"`
	Dividend       decimal.Decimal `json:"dividend"`
	EmergencyFund  decimal.Decimal `json:"emergencyFund"`
	Fees           decimal.Decimal `json:"fees"`
	FirstOrderDate *time.Time      `json:"firstOrderDate,omitempty"`
	Items          decimal.Decimal `json:"items"`
	Liabilities    decimal.Decimal `json:"liabilities"`
	NetWorth       decimal.Decimal `json:"netWorth"`
	OrdersCount    int             `json:"ordersCount"`
	TotalBuy       decimal.Decimal `json:"totalBuy"`
	TotalSell      decimal.Decimal `json:"totalSell"`
}

// PositionDetail is the drill down of one holding
type PositionDetail struct {
	AveragePrice            decimal.Decimal      `json:"averagePrice"`
	DividendInBaseCurrency  decimal.Decimal      `json:"dividendInBaseCurrency"`
	FeeInBaseCurrency       decimal.Decimal      `json:"feeInBaseCurrency"`
	FirstBuyDate            string               `json:"firstBuyDate,omitempty"`
	GrossPerformance        decimal.Decimal      `json:"grossPerformance"`
	GrossPerformancePercent float64              `json:"grossPerformancePercent"`
	HistoricalData          []HistoricalDataItem `json:"historicalData,omitempty"`
	Investment              decimal.Decimal      `json:"investment"`
	MarketPrice             float64              `json:"marketPrice"`
	MaxPrice                float64              `json:"maxPrice"`
	MinPrice                float64              `json:"minPrice"`
	NetPerformance          decimal.Decimal      `json:"netPerformance"`
	NetPerformancePercent   float64              `json:"netPerformancePercent"`
	Orders                  []Activity           `json:"orders,omitempty"`
	Quantity                decimal.Decimal      `json:"quantity"`
	SymbolProfile           *SymbolProfile       `json:"SymbolProfile,omitempty"`
	TransactionCount        int                  `json:"transactionCount"`
	Value                   decimal.Decimal      `json:"value"`
}

// AuthToken is the result of an anonymous login
type AuthToken struct {
	AuthToken string `json:"authToken"`
}

// UserItem is the result of signing up
type UserItem struct {
	AccessToken string `json:"accessToken,omitempty"`
	AuthToken   string `json:"authToken"`
	Role        string `json:"role,omitempty"`
}

// UserSettings are the stored preferences of a user
type UserSettings struct {
	BaseCurrency           string              `json:"baseCurrency,omitempty"`
	DateRange              DateRange           `json:"dateRange,omitempty"`
	EmergencyFund          decimal.NullDecimal `json:"emergencyFund"`
	IsExperimentalFeatures bool                `json:"isExperimentalFeatures,omitempty"`
	IsRestrictedView       bool                `json:"isRestrictedView,omitempty"`
	Language               string              `json:"language,omitempty"`
	Locale                 string              `json:"locale,omitempty"`
	ViewMode               string              `json:"viewMode,omitempty"`
}

// UserSubscription is the plan a user is on
type UserSubscription struct {
	ExpiresAt string `json:"expiresAt,omitempty"`
	Offer     string `json:"offer,omitempty"`
	Type      string `json:"type"`
}

// Tag labels activities
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User is the signed in user
type User struct {
	Access       []Access          `json:"access,omitempty"`
	Accounts     []Account         `json:"accounts,omitempty"`
	ID           string            `json:"id"`
	Permissions  []string          `json:"permissions"`
	Settings     UserSettings      `json:"settings"`
	Subscription *UserSubscription `json:"subscription,omitempty"`
	Tags         []Tag             `json:"tags,omitempty"`
}

// CheckoutSession is a started payment flow
type CheckoutSession struct {
	SessionID string `json:"sessionId"`
}

// CouponRedemption is the result of redeeming a coupon
type CouponRedemption struct {
	Message    string `json:"message,omitempty"`
	StatusCode int    `json:"statusCode,omitempty"`
}
