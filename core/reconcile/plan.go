package reconcile

// PlanInserts splits candidates into keys to insert, keys already stored and
// keys repeated within the candidate list. The first occurrence of a key wins.
func PlanInserts[K comparable](candidates []K, existing map[K]struct{}) InsertPlan[K] {
	var plan InsertPlan[K]
	seen := make(map[K]struct{}, len(candidates))

	for _, key := range candidates {
		if _, dup := seen[key]; dup {
			plan.Duplicates = append(plan.Duplicates, key)
			continue
		}
		seen[key] = struct{}{}

		if _, ok := existing[key]; ok {
			plan.Existing = append(plan.Existing, key)
			continue
		}
		plan.Insert = append(plan.Insert, key)
	}
	return plan
}

// PlanAvailability computes the flips that make every persisted record match the live feed.
//
// live maps each live key to its sold-out flag and persisted maps each stored key to its
// current sold-out flag. A persisted key is available only when it is live and not sold
// out; everything else becomes sold out.
//
// The plan is suppressed with a *GuardError when the live feed is empty or when the
// resulting available count falls under the minimum. In both cases the returned plan
// still carries the summary so callers can report it, but it must not be applied.
func PlanAvailability[K comparable](live map[K]bool, persisted map[K]bool, opts Options) (*AvailabilityPlan[K], error) {
	plan := &AvailabilityPlan[K]{}
	plan.Summary.LiveEntries = len(live)
	plan.Summary.Persisted = len(persisted)

	if len(live) == 0 {
		return plan, &GuardError{Reason: ErrEmptyFeed, Persisted: len(persisted)}
	}

	for _, soldOut := range live {
		if !soldOut {
			plan.Summary.InStock++
		}
	}

	for key, currentlySoldOut := range persisted {
		liveSoldOut, isLive := live[key]
		targetSoldOut := !isLive || liveSoldOut

		if targetSoldOut {
			plan.Summary.SoldOut++
		} else {
			plan.Summary.Available++
		}

		switch {
		case currentlySoldOut == targetSoldOut:
			plan.Summary.Unchanged++
		case targetSoldOut:
			plan.ToSoldOut = append(plan.ToSoldOut, key)
		default:
			plan.ToAvailable = append(plan.ToAvailable, key)
		}
	}

	if len(persisted) == 0 {
		return plan, nil
	}

	minimum := max(opts.MinAvailable, 1)
	minimum = min(minimum, len(persisted))
	if plan.Summary.Available < minimum {
		return plan, &GuardError{
			Reason:    ErrBelowMinimum,
			Persisted: len(persisted),
			Available: plan.Summary.Available,
			Minimum:   minimum,
		}
	}

	return plan, nil
}
