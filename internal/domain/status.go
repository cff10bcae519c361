package domain

import (
	"encoding/json"
	"fmt"
)

// Status is the closed set of order lifecycle states. The zero value is
// StatusNew, which is also the state every order is created in. Values are
// persisted as their ordinal.
type Status int

const (
	StatusNew Status = iota
	StatusPaid
	StatusCanceled
)

// statusNames maps each status to its wire form.
var statusNames = map[Status]string{
	StatusNew:      "new",
	StatusPaid:     "paid",
	StatusCanceled: "canceled",
}

// String returns the wire form of the status ("new", "paid", "canceled").
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// Valid reports whether s is one of the defined statuses.
func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// HoldsStock reports whether an order in this status holds reserved inventory.
// Canceled orders never hold inventory.
func (s Status) HoldsStock() bool {
	return s == StatusNew || s == StatusPaid
}

// ParseStatus converts the wire form back to a Status.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("invalid order status %q", name)
}

// MarshalJSON encodes the status as its wire form.
func (s Status) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid order status %d", int(s))
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes the status from its wire form.
func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseStatus(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// StockEffect describes what a status transition does to the stock of every
// item referenced by the order's lines.
type StockEffect int

const (
	// EffectNone leaves stock untouched.
	EffectNone StockEffect = iota
	// EffectRelease returns each line's quantity to its item's stock.
	EffectRelease
	// EffectReserve withdraws each line's quantity from its item's stock
	// and fails the whole transition if any item has too little.
	EffectReserve
)

type transition struct {
	from, to Status
}

// transitionEffects is the explicit transition table. Pairs not listed have
// no stock effect (NEW<->PAID and same->same). Adding a state later means
// adding rows here, not rewriting conditionals.
var transitionEffects = map[transition]StockEffect{
	{StatusNew, StatusCanceled}:  EffectRelease,
	{StatusPaid, StatusCanceled}: EffectRelease,
	{StatusCanceled, StatusNew}:  EffectReserve,
	{StatusCanceled, StatusPaid}: EffectReserve,
}

// TransitionEffect returns the stock effect of moving an order from one
// status to another. Any status may move to any other; only transitions in
// and out of CANCELED touch stock.
func TransitionEffect(from, to Status) StockEffect {
	return transitionEffects[transition{from, to}]
}
