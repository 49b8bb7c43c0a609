package ghostfolio

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CreateAccessDto grants access to the portfolio
type CreateAccessDto struct {
	Alias         string   `json:"alias,omitempty"`
	GranteeUserID string   `json:"granteeUserId,omitempty"`
	Permissions   []string `json:"permissions,omitempty" validate:"omitempty,dive,oneof=READ READ_RESTRICTED"`
	Type          string   `json:"type,omitempty" validate:"omitempty,oneof=PUBLIC PRIVATE"`
}

// CreateAccountDto opens an account
type CreateAccountDto struct {
	AccountType string          `json:"accountType,omitempty"`
	Balance     decimal.Decimal `json:"balance"`
	Comment     *string         `json:"comment,omitempty"`
	Currency    string          `json:"currency" validate:"required,currency"`
	ID          string          `json:"id,omitempty"`
	IsExcluded  bool            `json:"isExcluded,omitempty"`
	Name        string          `json:"name" validate:"required"`
	PlatformID  *string         `json:"platformId,omitempty"`
}

// UpdateAccountDto replaces an account; ID selects the target
type UpdateAccountDto struct {
	AccountType string          `json:"accountType,omitempty"`
	Balance     decimal.Decimal `json:"balance"`
	Comment     *string         `json:"comment,omitempty"`
	Currency    string          `json:"currency" validate:"required,currency"`
	ID          string          `json:"id" validate:"required"`
	IsExcluded  bool            `json:"isExcluded,omitempty"`
	Name        string          `json:"name" validate:"required"`
	PlatformID  *string         `json:"platformId,omitempty"`
}

// CreateOrderDto records an activity
type CreateOrderDto struct {
	AccountID  *string         `json:"accountId,omitempty"`
	Comment    *string         `json:"comment,omitempty"`
	Currency   string          `json:"currency" validate:"required,currency"`
	DataSource string          `json:"dataSource,omitempty"`
	Date       string          `json:"date" validate:"required"`
	Fee        decimal.Decimal `json:"fee" validate:"min=0"`
	Quantity   decimal.Decimal `json:"quantity" validate:"min=0"`
	Symbol     string          `json:"symbol" validate:"required"`
	Tags       []string        `json:"tags,omitempty"`
	Type       string          `json:"type" validate:"required,oneof=BUY DIVIDEND FEE INTEREST ITEM LIABILITY SELL"`
	UnitPrice  decimal.Decimal `json:"unitPrice" validate:"min=0"`
}

// UpdateOrderDto replaces an activity; ID selects the target
type UpdateOrderDto struct {
	AccountID  *string         `json:"accountId,omitempty"`
	Comment    *string         `json:"comment,omitempty"`
	Currency   string          `json:"currency" validate:"required,currency"`
	DataSource string          `json:"dataSource,omitempty"`
	Date       string          `json:"date" validate:"required"`
	Fee        decimal.Decimal `json:"fee" validate:"min=0"`
	ID         string          `json:"id" validate:"required"`
	Quantity   decimal.Decimal `json:"quantity" validate:"min=0"`
	Symbol     string          `json:"symbol" validate:"required"`
	Tags       []string        `json:"tags,omitempty"`
	Type       string          `json:"type" validate:"required,oneof=BUY DIVIDEND FEE INTEREST ITEM LIABILITY SELL"`
	UnitPrice  decimal.Decimal `json:"unitPrice" validate:"min=0"`
}

// PropertyDto is the value of an admin setting
type PropertyDto struct {
	Value string `json:"value"`
}

// UpdateUserSettingDto patches single preferences; nil fields are left alone
type UpdateUserSettingDto struct {
	BaseCurrency           *string          `json:"baseCurrency,omitempty" validate:"omitempty,currency"`
	Benchmark              *string          `json:"benchmark,omitempty"`
	DateRange              *DateRange       `json:"dateRange,omitempty"`
	EmergencyFund          *decimal.Decimal `json:"emergencyFund,omitempty" validate:"omitempty,min=0"`
	IsExperimentalFeatures *bool            `json:"isExperimentalFeatures,omitempty"`
	IsRestrictedView       *bool            `json:"isRestrictedView,omitempty"`
	Language               *string          `json:"language,omitempty"`
	Locale                 *string          `json:"locale,omitempty" validate:"omitempty,locale"`
	ViewMode               *string          `json:"viewMode,omitempty" validate:"omitempty,oneof=DEFAULT ZEN"`
}

// UpdateUserSettingsDto replaces the base preferences
type UpdateUserSettingsDto struct {
	BaseCurrency string `json:"baseCurrency" validate:"required,currency"`
	Locale       string `json:"locale,omitempty" validate:"omitempty,locale"`
	ViewMode     string `json:"viewMode,omitempty" validate:"omitempty,oneof=DEFAULT ZEN"`
}

type checkoutSessionBody struct {
	CouponID string `json:"couponId,omitempty"`
	PriceID  string `json:"priceId"`
}

type redeemCouponBody struct {
	CouponCode string `json:"couponCode"`
}

// The backend expects amounts as JSON numbers, so DTO encoders write decimals
// through json.Number whatever decimal.MarshalJSONWithoutQuotes says

func number(d decimal.Decimal) json.Number { return json.Number(d.String()) }

func (d CreateAccountDto) MarshalJSON() ([]byte, error) {
	type plain CreateAccountDto
	return json.Marshal(struct {
		plain
		Balance json.Number `json:"balance"`
	}{plain(d), number(d.Balance)})
}

func (d UpdateAccountDto) MarshalJSON() ([]byte, error) {
	type plain UpdateAccountDto
	return json.Marshal(struct {
		plain
		Balance json.Number `json:"balance"`
	}{plain(d), number(d.Balance)})
}

func (d CreateOrderDto) MarshalJSON() ([]byte, error) {
	type plain CreateOrderDto
	return json.Marshal(struct {
		plain
		Fee       json.Number `json:"fee"`
		Quantity  json.Number `json:"quantity"`
		UnitPrice json.Number `json:"unitPrice"`
	}{plain(d), number(d.Fee), number(d.Quantity), number(d.UnitPrice)})
}

func (d UpdateOrderDto) MarshalJSON() ([]byte, error) {
	type plain UpdateOrderDto
	return json.Marshal(struct {
		plain
		Fee       json.Number `json:"fee"`
		Quantity  json.Number `json:"quantity"`
		UnitPrice json.Number `json:"unitPrice"`
	}{plain(d), number(d.Fee), number(d.Quantity), number(d.UnitPrice)})
}

func (d UpdateUserSettingDto) MarshalJSON() ([]byte, error) {
	type plain UpdateUserSettingDto
	var fund *json.Number
	if d.EmergencyFund != nil {
		n := number(*d.EmergencyFund)
		fund = &n
	}
	return json.Marshal(struct {
		plain
		EmergencyFund *json.Number `json:"emergencyFund,omitempty"`
	}{plain(d), fund})
}
