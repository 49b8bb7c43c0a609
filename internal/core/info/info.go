// Package info holds the process-wide info blob handed to the client at startup.
// The shared instance is never exposed: every read returns a deep copy
package info

import (
	"encoding/json"
	"io"
	"os"
	"sync/atomic"

	perr "folio/internal/platform/errors"

	"github.com/shopspring/decimal"
)

// ErrNotLoaded is returned by Get when no info blob was set
var ErrNotLoaded = perr.NotFoundf("info not loaded")

// Item is the info blob: instance wide settings, permissions and statistics
type Item struct {
	Currencies        []string       `json:"currencies"`
	DemoAuthToken     string         `json:"demoAuthToken,omitempty"`
	GlobalPermissions []string       `json:"globalPermissions"`
	IsReadOnlyMode    bool           `json:"isReadOnlyMode,omitempty"`
	LastDataGathering *string        `json:"lastDataGathering,omitempty"`
	Platforms         []Platform     `json:"platforms"`
	PrimaryDataSource string         `json:"primaryDataSource,omitempty"`
	Statistics        *Statistics    `json:"statistics,omitempty"`
	StripePublicKey   string         `json:"stripePublicKey,omitempty"`
	Subscriptions     []Subscription `json:"subscriptions"`
	SystemMessage     string         `json:"systemMessage,omitempty"`
}

// Platform is a broker or bank an account can be attached to
type Platform struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Statistics are the public usage counters of the instance
type Statistics struct {
	ActiveUsers1d      int `json:"activeUsers1d"`
	ActiveUsers7d      int `json:"activeUsers7d"`
	ActiveUsers30d     int `json:"activeUsers30d"`
	GitHubContributors int `json:"gitHubContributors"`
	GitHubStargazers   int `json:"gitHubStargazers"`
	NewUsers30d        int `json:"newUsers30d"`
}

// Subscription is a purchasable plan
type Subscription struct {
	Coupon   decimal.NullDecimal `json:"coupon"`
	CouponID string              `json:"couponId,omitempty"`
	Price    decimal.Decimal     `json:"price"`
	PriceID  string              `json:"priceId"`
}

// Clone returns a deep copy; nothing reachable from the copy aliases it
func (it Item) Clone() Item {
	c := it
	c.Currencies = cloneSlice(it.Currencies)
	c.GlobalPermissions = cloneSlice(it.GlobalPermissions)
	c.Platforms = cloneSlice(it.Platforms)
	c.Subscriptions = cloneSlice(it.Subscriptions)
	if it.LastDataGathering != nil {
		s := *it.LastDataGathering
		c.LastDataGathering = &s
	}
	if it.Statistics != nil {
		st := *it.Statistics
		c.Statistics = &st
	}
	return c
}

// element types are flat values (decimal is immutable), so a shallow element copy is deep
func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// Store keeps one Item and hands out copies of it
type Store struct {
	cur atomic.Pointer[Item]
}

// NewStore returns a Store already holding a copy of it
func NewStore(it Item) *Store {
	s := &Store{}
	s.Set(it)
	return s
}

// Set replaces the held item with a copy of it
func (s *Store) Set(it Item) {
	c := it.Clone()
	s.cur.Store(&c)
}

// Get returns a deep copy of the held item, or ErrNotLoaded
func (s *Store) Get() (Item, error) {
	p := s.cur.Load()
	if p == nil {
		return Item{}, ErrNotLoaded
	}
	return p.Clone(), nil
}

var def Store

// Default is the process-wide store, filled once at startup
func Default() *Store { return &def }

// Load decodes an info blob from r
func Load(r io.Reader) (Item, error) {
	var it Item
	if err := json.NewDecoder(r).Decode(&it); err != nil {
		return Item{}, perr.Wrap(err, perr.ErrorCodeJSON, "decode info blob")
	}
	return it, nil
}

// LoadFile decodes the info blob stored at path
func LoadFile(path string) (Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return Item{}, perr.Wrapf(err, perr.ErrorCodeNotFound, "open info blob %s", path)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}
