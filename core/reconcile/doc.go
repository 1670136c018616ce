// Package reconcile plans and applies the merge of a live external feed into the
// persisted catalog.
//
// Reconciliation has two independent halves:
//
//   - Inserts: PlanInserts partitions candidate keys into new, already stored and
//     duplicated keys. Stored records are never refreshed.
//   - Availability: PlanAvailability computes the flag flips that make every stored
//     record match the live feed, and ApplyAvailability hands them to a writer that
//     commits them atomically.
//
// # Guards
//
// An availability plan is suppressed, and returned together with a *GuardError,
// when the live feed is empty (ErrEmptyFeed) or when applying it would leave fewer
// available records than Options.MinAvailable (ErrBelowMinimum). With the default
// minimum of one this stops a corrupted feed from marking the whole catalog sold out.
// Guards are evaluated before anything is written.
//
// # Safety
//
// Options.DryRun computes plans without writing.
//
// # Usage
//
//	plan, err := reconcile.PlanAvailability(live, persisted, reconcile.Options{MinAvailable: 1})
//	var guard *reconcile.GuardError
//	if errors.As(err, &guard) {
//	    log.Warn("availability update suppressed", zap.String("reason", guard.ReasonLabel()))
//	    return
//	}
//	changed, err := reconcile.ApplyAvailability(ctx, store, plan, opts)
package reconcile
