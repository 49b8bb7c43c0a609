package main

import (
	"context"
	"flag"
	"io"
	"os"

	"folio/internal/adapters/ghostfolio"
	"folio/internal/platform/bind"
	perr "folio/internal/platform/errors"
)

// payload reads and validates a JSON document from file, or stdin when file is empty or "-"
func payload[T any](a *app, file string) (T, error) {
	var r io.Reader = a.stdin
	if file != "" && file != "-" {
		f, err := os.Open(file)
		if err != nil {
			var zero T
			return zero, perr.WithField(perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "open payload %s", file), "f")
		}
		defer func() { _ = f.Close() }()
		r = f
	}
	return bind.DecodeJSON[T](r)
}

// payloadCmd builds a command that sends a validated JSON payload of type T
func payloadCmd[T any](a *app, name, synopsis, usage string, nargs int,
	send func(ctx context.Context, c *ghostfolio.Client, dto T, args []string) (any, error),
) *apiCmd {
	var file string
	return &apiCmd{
		app: a, name: name, synopsis: synopsis, usage: usage, nargs: nargs,
		flags: func(f *flag.FlagSet) {
			f.StringVar(&file, "f", "", "JSON payload file, stdin when empty or -")
		},
		call: func(ctx context.Context, c *ghostfolio.Client, args []string) (any, error) {
			dto, err := payload[T](a, file)
			if err != nil {
				return nil, err
			}
			return send(ctx, c, dto, args)
		},
	}
}

func writeCommands(a *app) []*apiCmd {
	var couponID, priceID string
	return []*apiCmd{
		{
			app: a, name: "delete-access", synopsis: "revoke an access grant", usage: "delete-access <id>", nargs: 1,
			call: func(ctx context.Context, c *ghostfolio.Client, args []string) (any, error) {
				return c.DeleteAccess(ctx, args[0])
			},
		},
		{
			app: a, name: "delete-account", synopsis: "remove an account", usage: "delete-account <id>", nargs: 1,
			call: func(ctx context.Context, c *ghostfolio.Client, args []string) (any, error) {
				return c.DeleteAccount(ctx, args[0])
			},
		},
		{
			app: a, name: "delete-order", synopsis: "remove an activity", usage: "delete-order <id>", nargs: 1,
			call: func(ctx context.Context, c *ghostfolio.Client, args []string) (any, error) {
				return c.DeleteOrder(ctx, args[0])
			},
		},
		{
			app: a, name: "delete-user", synopsis: "remove a user", usage: "delete-user <id>", nargs: 1,
			call: func(ctx context.Context, c *ghostfolio.Client, args []string) (any, error) {
				return c.DeleteUser(ctx, args[0])
			},
		},
		payloadCmd(a, "create-access", "grant access to the portfolio", "create-access [-f file]", 0,
			func(ctx context.Context, c *ghostfolio.Client, dto ghostfolio.CreateAccessDto, _ []string) (any, error) {
				return c.PostAccess(ctx, dto)
			}),
		payloadCmd(a, "create-account", "open an account", "create-account [-f file]", 0,
			func(ctx context.Context, c *ghostfolio.Client, dto ghostfolio.CreateAccountDto, _ []string) (any, error) {
				return c.PostAccount(ctx, dto)
			}),
		payloadCmd(a, "create-order", "record an activity", "create-order [-f file]", 0,
			func(ctx context.Context, c *ghostfolio.Client, dto ghostfolio.CreateOrderDto, _ []string) (any, error) {
				return c.PostOrder(ctx, dto)
			}),
		{
			app: a, name: "create-user", synopsis: "sign up a new user", usage: "create-user",
			call: func(ctx context.Context, c *ghostfolio.Client, _ []string) (any, error) {
				return c.PostUser(ctx)
			},
		},
		payloadCmd(a, "update-account", "update an account", "update-account [-f file]", 0,
			func(ctx context.Context, c *ghostfolio.Client, dto ghostfolio.UpdateAccountDto, _ []string) (any, error) {
				return c.PutAccount(ctx, dto)
			}),
		payloadCmd(a, "update-admin-setting", "store an admin setting", "update-admin-setting [-f file] <key>", 1,
			func(ctx context.Context, c *ghostfolio.Client, dto ghostfolio.PropertyDto, args []string) (any, error) {
				return nil, c.PutAdminSetting(ctx, args[0], dto)
			}),
		payloadCmd(a, "update-order", "update an activity", "update-order [-f file]", 0,
			func(ctx context.Context, c *ghostfolio.Client, dto ghostfolio.UpdateOrderDto, _ []string) (any, error) {
				return c.PutOrder(ctx, dto)
			}),
		payloadCmd(a, "update-user-setting", "patch user preferences", "update-user-setting [-f file]", 0,
			func(ctx context.Context, c *ghostfolio.Client, dto ghostfolio.UpdateUserSettingDto, _ []string) (any, error) {
				return c.PutUserSetting(ctx, dto)
			}),
		payloadCmd(a, "update-user-settings", "replace user preferences", "update-user-settings [-f file]", 0,
			func(ctx context.Context, c *ghostfolio.Client, dto ghostfolio.UpdateUserSettingsDto, _ []string) (any, error) {
				return c.PutUserSettings(ctx, dto)
			}),
		{
			app: a, name: "checkout-session", synopsis: "start a subscription payment",
			usage: "checkout-session -price id [-coupon id]",
			flags: func(f *flag.FlagSet) {
				f.StringVar(&priceID, "price", "", "price id")
				f.StringVar(&couponID, "coupon", "", "coupon id")
			},
			call: func(ctx context.Context, c *ghostfolio.Client, _ []string) (any, error) {
				if priceID == "" {
					return nil, perr.WithField(perr.InvalidArgf("-price is required"), "price")
				}
				return c.CreateCheckoutSession(ctx, couponID, priceID)
			},
		},
		{
			app: a, name: "redeem-coupon", synopsis: "redeem a coupon code", usage: "redeem-coupon <code>", nargs: 1,
			call: func(ctx context.Context, c *ghostfolio.Client, args []string) (any, error) {
				return c.RedeemCoupon(ctx, args[0])
			},
		},
	}
}
