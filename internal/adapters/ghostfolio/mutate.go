package ghostfolio

import (
	"context"

	perr "folio/internal/platform/errors"
)

// DeleteAccess revokes an access grant
func (c *Client) DeleteAccess(ctx context.Context, id string) (Access, error) {
	return del[Access](ctx, c, "/access/"+seg(id))
}

// DeleteAccount removes an account
func (c *Client) DeleteAccount(ctx context.Context, id string) (Account, error) {
	return del[Account](ctx, c, "/account/"+seg(id))
}

// DeleteOrder removes an activity
func (c *Client) DeleteOrder(ctx context.Context, id string) (Order, error) {
	return del[Order](ctx, c, "/order/"+seg(id))
}

// DeleteUser removes a user
func (c *Client) DeleteUser(ctx context.Context, id string) (User, error) {
	return del[User](ctx, c, "/user/"+seg(id))
}

// PostAccess creates an access grant
func (c *Client) PostAccess(ctx context.Context, dto CreateAccessDto) (Access, error) {
	return post[Access](ctx, c, "/access", dto)
}

// PostAccount creates an account
func (c *Client) PostAccount(ctx context.Context, dto CreateAccountDto) (Account, error) {
	return post[Account](ctx, c, "/account", dto)
}

// PostOrder creates an activity. The returned order keeps its dates as sent
func (c *Client) PostOrder(ctx context.Context, dto CreateOrderDto) (Order, error) {
	return post[Order](ctx, c, "/order", dto)
}

// PostUser signs up a new anonymous user
func (c *Client) PostUser(ctx context.Context) (UserItem, error) {
	return post[UserItem](ctx, c, "/user", struct{}{})
}

// PutAccount updates the account dto.ID
func (c *Client) PutAccount(ctx context.Context, dto UpdateAccountDto) (Account, error) {
	if dto.ID == "" {
		return Account{}, perr.WithField(perr.InvalidArgf("account id is required"), "id")
	}
	return put[Account](ctx, c, "/account/"+seg(dto.ID), dto)
}

// PutAdminSetting stores an admin setting under key
func (c *Client) PutAdminSetting(ctx context.Context, key string, dto PropertyDto) error {
	return c.t.Put(ctx, "/admin/settings/"+seg(key), dto, nil)
}

// PutOrder updates the activity dto.ID
func (c *Client) PutOrder(ctx context.Context, dto UpdateOrderDto) (Order, error) {
	if dto.ID == "" {
		return Order{}, perr.WithField(perr.InvalidArgf("order id is required"), "id")
	}
	return put[Order](ctx, c, "/order/"+seg(dto.ID), dto)
}

// PutUserSetting patches individual user preferences
func (c *Client) PutUserSetting(ctx context.Context, dto UpdateUserSettingDto) (User, error) {
	return put[User](ctx, c, "/user/setting", dto)
}

// PutUserSettings replaces the base user preferences
func (c *Client) PutUserSettings(ctx context.Context, dto UpdateUserSettingsDto) (User, error) {
	return put[User](ctx, c, "/user/settings", dto)
}

// CreateCheckoutSession starts a payment for priceID, optionally discounted by couponID
func (c *Client) CreateCheckoutSession(ctx context.Context, couponID, priceID string) (CheckoutSession, error) {
	return post[CheckoutSession](ctx, c, "/subscription/stripe/checkout-session",
		checkoutSessionBody{CouponID: couponID, PriceID: priceID})
}

// RedeemCoupon applies a coupon code to the signed in user
func (c *Client) RedeemCoupon(ctx context.Context, code string) (CouponRedemption, error) {
	return post[CouponRedemption](ctx, c, "/subscription/redeem-coupon", redeemCouponBody{CouponCode: code})
}
