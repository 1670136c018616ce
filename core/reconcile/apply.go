package reconcile

import (
	"context"
	"fmt"
)

// AvailabilityWriter persists availability flips. Implementations must apply both
// lists atomically.
type AvailabilityWriter[K comparable] interface {
	ApplyAvailability(ctx context.Context, toAvailable, toSoldOut []K) error
}

// ApplyAvailability writes a plan produced by PlanAvailability.
// Returns the number of records changed. Dry runs and empty plans write nothing.
func ApplyAvailability[K comparable](ctx context.Context, w AvailabilityWriter[K], plan *AvailabilityPlan[K], opts Options) (int, error) {
	if opts.DryRun || plan.Empty() {
		return 0, nil
	}

	if err := w.ApplyAvailability(ctx, plan.ToAvailable, plan.ToSoldOut); err != nil {
		return 0, fmt.Errorf("failed to apply availability plan: %w", err)
	}
	return len(plan.ToAvailable) + len(plan.ToSoldOut), nil
}
