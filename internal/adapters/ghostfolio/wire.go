package ghostfolio

import (
	"encoding/json"
	"reflect"
	"strings"
	"time"

	perr "folio/internal/platform/errors"
	ptime "folio/internal/platform/time"
)

// Wire records mirror what the backend sends for the endpoints whose dates get parsed.
// The outer field shadows the embedded one of the same JSON name while decoding

type lookupEnvelope struct {
	Items []LookupItem `json:"items"`
}

type activitiesWire struct {
	Activities []Order `json:"activities"`
}

type investmentsWire struct {
	PortfolioInvestments
	FirstOrderDate *string `json:"firstOrderDate"`
}

type summaryWire struct {
	PortfolioSummary
	FirstOrderDate *string `json:"firstOrderDate"`
}

type positionDetailWire struct {
	PositionDetail
	Orders []Order `json:"orders"`
}

// parseISO reports failures as JSON errors carrying the field name
func parseISO(field, s string) (time.Time, error) {
	t, err := ptime.ParseISO(s)
	if err != nil {
		return time.Time{}, perr.WithField(perr.Wrapf(err, perr.ErrorCodeJSON, "%s: invalid ISO-8601 date %q", field, s), field)
	}
	return t, nil
}

// parseOptional maps an absent or empty date to nil
func parseOptional(field string, s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := parseISO(field, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// orderKeys are the JSON names of the modelled order columns, lower cased
// because decoding matches names case-insensitively
var orderKeys = jsonKeys(reflect.TypeOf(Order{}), map[string]struct{}{})

func jsonKeys(t reflect.Type, into map[string]struct{}) map[string]struct{} {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if f.Anonymous && name == "" && f.Type.Kind() == reflect.Struct {
			jsonKeys(f.Type, into)
			continue
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		into[strings.ToLower(name)] = struct{}{}
	}
	return into
}

// unknownFields returns the members of the object b that no order column decodes
func unknownFields(b []byte) (map[string]json.RawMessage, error) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(b, &all); err != nil {
		return nil, err
	}
	var extra map[string]json.RawMessage
	for k, v := range all {
		if _, ok := orderKeys[strings.ToLower(k)]; ok {
			continue
		}
		if extra == nil {
			extra = map[string]json.RawMessage{}
		}
		extra[k] = v
	}
	return extra, nil
}

// withExtra encodes v and adds the extra members it does not already carry
func withExtra(v any, extra map[string]json.RawMessage) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return b, err
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, err
	}
	for k, raw := range extra {
		if _, ok := obj[k]; !ok {
			obj[k] = raw
		}
	}
	return json.Marshal(obj)
}

// UnmarshalJSON decodes the modelled columns and keeps the rest in Extra
func (o *Order) UnmarshalJSON(b []byte) error {
	type plain Order
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	extra, err := unknownFields(b)
	if err != nil {
		return err
	}
	*o = Order(p)
	o.Extra = extra
	return nil
}

// MarshalJSON writes the modelled columns and the members kept in Extra
func (o Order) MarshalJSON() ([]byte, error) {
	type plain Order
	return withExtra(plain(o), o.Extra)
}

// UnmarshalJSON decodes the modelled columns and keeps the rest in Extra
func (a *Activity) UnmarshalJSON(b []byte) error {
	type plain Activity
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	extra, err := unknownFields(b)
	if err != nil {
		return err
	}
	*a = Activity(p)
	a.Extra = extra
	return nil
}

// MarshalJSON writes the modelled columns and the members kept in Extra
func (a Activity) MarshalJSON() ([]byte, error) {
	type plain Activity
	return withExtra(plain(a), a.Extra)
}

// ToActivity parses createdAt and date; every other field is carried as is.
// An empty date stays the zero time
func (o Order) ToActivity() (Activity, error) {
	a := Activity{OrderFields: o.OrderFields}
	var err error
	if o.CreatedAt != "" {
		if a.CreatedAt, err = parseISO("createdAt", o.CreatedAt); err != nil {
			return Activity{}, err
		}
	}
	if o.Date != "" {
		if a.Date, err = parseISO("date", o.Date); err != nil {
			return Activity{}, err
		}
	}
	return a, nil
}

func toActivities(in []Order) ([]Activity, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]Activity, len(in))
	for i, o := range in {
		a, err := o.ToActivity()
		if err != nil {
			return nil, perr.WithOp(err, "activity "+o.ID)
		}
		out[i] = a
	}
	return out, nil
}

func (w activitiesWire) normalize() (Activities, error) {
	acts, err := toActivities(w.Activities)
	if err != nil {
		return Activities{}, err
	}
	return Activities{Activities: acts}, nil
}

func (w investmentsWire) normalize() (PortfolioInvestments, error) {
	out := w.PortfolioInvestments
	first, err := parseOptional("firstOrderDate", w.FirstOrderDate)
	if err != nil {
		return PortfolioInvestments{}, err
	}
	out.FirstOrderDate = first
	return out, nil
}

func (w summaryWire) normalize() (PortfolioSummary, error) {
	out := w.PortfolioSummary
	first, err := parseOptional("firstOrderDate", w.FirstOrderDate)
	if err != nil {
		return PortfolioSummary{}, err
	}
	out.FirstOrderDate = first
	return out, nil
}

func (w positionDetailWire) normalize() (PositionDetail, error) {
	out := w.PositionDetail
	orders, err := toActivities(w.Orders)
	if err != nil {
		return PositionDetail{}, err
	}
	out.Orders = orders
	return out, nil
}
