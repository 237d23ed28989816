package ledger

import "sort"

// StatsFor aggregates a user's entries for one calendar day against a goal.
// A zero goal yields zero progress rather than a division by zero.
func StatsFor(entries []Entry, userID, date string, goalMl int) Stats {
	consumed := 0
	for _, e := range entries {
		if e.UserID == userID && e.Date == date {
			consumed += e.AmountMl
		}
	}

	remaining := goalMl - consumed
	if remaining < 0 {
		remaining = 0
	}

	progress := 0.0
	if goalMl > 0 {
		progress = float64(consumed) / float64(goalMl)
		if progress > 1 {
			progress = 1
		}
	}

	return Stats{ConsumedMl: consumed, RemainingMl: remaining, Progress: progress}
}

// ListFor returns a user's entries for one day, most recent first. The sort
// is stable so entries with equal timestamps keep their insertion order.
func ListFor(entries []Entry, userID, date string) []Entry {
	out := make([]Entry, 0)
	for _, e := range entries {
		if e.UserID == userID && e.Date == date {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ConsumedAt > out[j].ConsumedAt
	})
	return out
}

// Users returns the distinct user ids present in entries, sorted.
func Users(entries []Entry) []string {
	seen := map[string]bool{}
	out := make([]string, 0)
	for _, e := range entries {
		if !seen[e.UserID] {
			seen[e.UserID] = true
			out = append(out, e.UserID)
		}
	}
	sort.Strings(out)
	return out
}
