package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func entry(id, user, date, at string, ml int) Entry {
	return Entry{ID: id, UserID: user, AmountMl: ml, Unit: "ml", ConsumedAt: at, Date: date}
}

func TestStatsFor(t *testing.T) {
	entries := []Entry{
		entry("1", "alice", "2026-08-30", "2026-08-30T08:00:00Z", 500),
		entry("2", "alice", "2026-08-30", "2026-08-30T12:00:00Z", 300),
		entry("3", "alice", "2026-08-29", "2026-08-29T12:00:00Z", 999),
		entry("4", "bob", "2026-08-30", "2026-08-30T09:00:00Z", 250),
	}

	s := StatsFor(entries, "alice", "2026-08-30", 2500)
	require.Equal(t, 800, s.ConsumedMl)
	require.Equal(t, 1700, s.RemainingMl)
	require.InDelta(t, 0.32, s.Progress, 1e-9)
}

func TestStatsForInvariants(t *testing.T) {
	entries := []Entry{
		entry("1", "alice", "2026-08-30", "2026-08-30T08:00:00Z", 3000),
	}

	// over goal: remaining floors at zero, progress clamps at one
	s := StatsFor(entries, "alice", "2026-08-30", 2500)
	require.Equal(t, 0, s.RemainingMl)
	require.Equal(t, 1.0, s.Progress)
	require.GreaterOrEqual(t, s.ConsumedMl+s.RemainingMl, 2500)

	// empty day
	s = StatsFor(entries, "alice", "2026-08-31", 2500)
	require.Equal(t, Stats{ConsumedMl: 0, RemainingMl: 2500, Progress: 0}, s)

	// zero goal never divides by zero
	s = StatsFor(entries, "alice", "2026-08-30", 0)
	require.Equal(t, 0.0, s.Progress)
	require.Equal(t, 0, s.RemainingMl)
}

func TestListForOrdersMostRecentFirst(t *testing.T) {
	entries := []Entry{
		entry("1", "alice", "2026-08-30", "2026-08-30T08:00:00Z", 100),
		entry("2", "alice", "2026-08-30", "2026-08-30T12:00:00Z", 100),
		entry("3", "bob", "2026-08-30", "2026-08-30T13:00:00Z", 100),
		entry("4", "alice", "2026-08-30", "2026-08-30T10:00:00Z", 100),
	}

	got := ListFor(entries, "alice", "2026-08-30")
	require.Len(t, got, 3)
	require.Equal(t, []string{"2", "4", "1"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestListForStableOnEqualTimestamps(t *testing.T) {
	entries := []Entry{
		entry("first", "alice", "2026-08-30", "2026-08-30T08:00:00Z", 100),
		entry("second", "alice", "2026-08-30", "2026-08-30T08:00:00Z", 100),
		entry("third", "alice", "2026-08-30", "2026-08-30T08:00:00Z", 100),
	}

	got := ListFor(entries, "alice", "2026-08-30")
	require.Equal(t, []string{"first", "second", "third"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestUsers(t *testing.T) {
	entries := []Entry{
		entry("1", "carol", "2026-08-30", "2026-08-30T08:00:00Z", 100),
		entry("2", "alice", "2026-08-30", "2026-08-30T09:00:00Z", 100),
		entry("3", "carol", "2026-08-30", "2026-08-30T10:00:00Z", 100),
	}
	require.Equal(t, []string{"alice", "carol"}, Users(entries))
}
