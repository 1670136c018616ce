package reconcile

import (
	"errors"
	"fmt"
)

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionInsert creates a record that the store has not seen yet.
	ActionInsert ActionType = "insert"
	// ActionMarkAvailable flips a record to available.
	ActionMarkAvailable ActionType = "mark_available"
	// ActionMarkSoldOut flips a record to sold out.
	ActionMarkSoldOut ActionType = "mark_sold_out"
)

// Options controls how a plan is evaluated and applied.
type Options struct {
	// DryRun computes plans without writing anything.
	DryRun bool
	// MinAvailable is the smallest number of available records an availability
	// plan may leave behind. Values below 1 are treated as 1, and the threshold
	// never exceeds the number of persisted records.
	MinAvailable int
}

// Guard reasons.
var (
	// ErrEmptyFeed means the live feed had no entries, so nothing can be trusted.
	ErrEmptyFeed = errors.New("live feed is empty")
	// ErrBelowMinimum means applying the plan would leave too few available records.
	ErrBelowMinimum = errors.New("available records below minimum")
)

// GuardError reports a suppressed availability plan.
type GuardError struct {
	Reason    error
	Persisted int
	Available int
	Minimum   int
}

func (e *GuardError) Error() string {
	if errors.Is(e.Reason, ErrEmptyFeed) {
		return fmt.Sprintf("availability update suppressed: %v", e.Reason)
	}
	return fmt.Sprintf("availability update suppressed: %v (available=%d persisted=%d minimum=%d)",
		e.Reason, e.Available, e.Persisted, e.Minimum)
}

func (e *GuardError) Unwrap() error {
	return e.Reason
}

// ReasonLabel returns a short metric-friendly name for the guard.
func (e *GuardError) ReasonLabel() string {
	if errors.Is(e.Reason, ErrEmptyFeed) {
		return "empty_feed"
	}
	return "below_minimum"
}

// InsertPlan partitions candidate keys for insert-if-absent.
type InsertPlan[K comparable] struct {
	// Insert holds keys to create, in candidate order.
	Insert []K `json:"insert"`
	// Existing holds keys the store already has.
	Existing []K `json:"existing"`
	// Duplicates holds keys repeated within the candidate list.
	Duplicates []K `json:"duplicates"`
}

// AvailabilitySummary gives aggregate counts for an availability plan.
type AvailabilitySummary struct {
	LiveEntries int `json:"live_entries"`
	InStock     int `json:"in_stock"`
	Persisted   int `json:"persisted"`
	Available   int `json:"available"`
	SoldOut     int `json:"sold_out"`
	Unchanged   int `json:"unchanged"`
}

// AvailabilityPlan holds the flag flips needed to match the live feed.
type AvailabilityPlan[K comparable] struct {
	ToAvailable []K                 `json:"to_available"`
	ToSoldOut   []K                 `json:"to_sold_out"`
	Summary     AvailabilitySummary `json:"summary"`
}

// Empty reports whether the plan changes nothing.
func (p *AvailabilityPlan[K]) Empty() bool {
	return p == nil || (len(p.ToAvailable) == 0 && len(p.ToSoldOut) == 0)
}

// Actions flattens the plan into typed actions, mainly for reporting.
func (p *AvailabilityPlan[K]) Actions() []Action[K] {
	if p == nil {
		return nil
	}
	actions := make([]Action[K], 0, len(p.ToAvailable)+len(p.ToSoldOut))
	for _, k := range p.ToAvailable {
		actions = append(actions, Action[K]{Type: ActionMarkAvailable, Key: k, Reason: "in live feed"})
	}
	for _, k := range p.ToSoldOut {
		actions = append(actions, Action[K]{Type: ActionMarkSoldOut, Key: k, Reason: "missing from live feed or sold out"})
	}
	return actions
}

// Action represents a planned mutation operation.
type Action[K comparable] struct {
	Type   ActionType `json:"type"`
	Key    K          `json:"key"`
	Reason string     `json:"reason"`
}
