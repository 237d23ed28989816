package service

import (
	"errors"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tidelog/tidelog/internal/config"
	"github.com/tidelog/tidelog/internal/identity"
	"github.com/tidelog/tidelog/internal/ledger"
	"github.com/tidelog/tidelog/internal/ledger/store"
	"github.com/tidelog/tidelog/internal/units"
	"github.com/tidelog/tidelog/pkg/metrics"
)

var (
	ErrInvalidTimestamp = errors.New("consumedAt is not a valid timestamp")
	ErrInvalidWeight    = errors.New("weightKg is out of bounds")
	ErrNotFound         = errors.New("entry not found")
)

const maxNoteLen = 120

// Service orchestrates the intake ledger: unit normalization, identifier
// policy, goal resolution and aggregation over the file-backed document.
// The store itself provides no locking, so every mutation takes mu for the
// whole read-modify-write sequence; reads run against the last-written
// snapshot unsynchronized.
type Service struct {
	store *store.FileStore
	cfg   *config.Config

	mu  sync.Mutex
	now func() time.Time
}

func New(st *store.FileStore, cfg *config.Config) *Service {
	return &Service{store: st, cfg: cfg, now: time.Now}
}

// CreateEntryInput carries the caller-supplied fields of a new entry.
type CreateEntryInput struct {
	Amount     float64
	Unit       string
	ConsumedAt string
	Note       string
	UserID     string
}

// TodayStats is the aggregate the stats endpoint reports.
type TodayStats struct {
	UserID      string
	Date        string
	Stats       ledger.Stats
	DailyGoalMl int
	WeightKg    float64 // zero when the user has no profiled weight
}

func (s *Service) userID(raw string) (string, error) {
	return identity.Parse(raw, s.cfg.Identity.StrictUserIDs)
}

func (s *Service) today() string {
	return s.now().UTC().Format(time.DateOnly)
}

// CreateEntry validates, normalizes and persists one intake event.
func (s *Service) CreateEntry(in CreateEntryInput) (*ledger.Entry, error) {
	uid, err := s.userID(in.UserID)
	if err != nil {
		return nil, err
	}

	unit := in.Unit
	if unit == "" {
		unit = units.UnitMl
	}
	amountMl, err := units.VolumeToMl(in.Amount, unit)
	if err != nil {
		return nil, err
	}

	consumedAt := s.now()
	if in.ConsumedAt != "" {
		consumedAt, err = time.Parse(time.RFC3339, in.ConsumedAt)
		if err != nil {
			return nil, ErrInvalidTimestamp
		}
	}
	// stored in UTC so the date key is the UTC-day projection and timestamp
	// strings compare chronologically
	consumedAt = consumedAt.UTC()

	note := strings.TrimSpace(in.Note)
	// the limit counts characters, not bytes; never split a rune
	if r := []rune(note); len(r) > maxNoteLen {
		note = string(r[:maxNoteLen])
	}

	entry := ledger.Entry{
		ID:         uuid.NewString(),
		UserID:     uid,
		AmountMl:   amountMl,
		Unit:       unit,
		ConsumedAt: consumedAt.Format(time.RFC3339),
		Date:       consumedAt.Format(time.DateOnly),
		Note:       note,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	doc.Entries = append(doc.Entries, entry)
	if err := s.store.Save(doc); err != nil {
		return nil, err
	}

	metrics.EntriesCreated.WithLabelValues(unit).Inc()
	return &entry, nil
}

// DeleteEntry removes one entry by id. The entry must belong to the given
// user; an unknown id and a foreign id are both reported as not found.
func (s *Service) DeleteEntry(id, rawUserID string) error {
	uid, err := s.userID(rawUserID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.store.Load()
	if err != nil {
		return err
	}

	idx := -1
	for i, e := range doc.Entries {
		if e.ID == id && e.UserID == uid {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	doc.Entries = append(doc.Entries[:idx], doc.Entries[idx+1:]...)
	if err := s.store.Save(doc); err != nil {
		return err
	}

	metrics.EntriesDeleted.Inc()
	return nil
}

// ListEntries returns a user's entries for one day, most recent first.
// An empty date means the current UTC day.
func (s *Service) ListEntries(rawUserID, date string) (string, string, []ledger.Entry, error) {
	uid, err := s.userID(rawUserID)
	if err != nil {
		return "", "", nil, err
	}
	if date == "" {
		date = s.today()
	}

	doc, err := s.store.Load()
	if err != nil {
		return "", "", nil, err
	}
	return uid, date, ledger.ListFor(doc.Entries, uid, date), nil
}

// StatsToday aggregates the current UTC day against the user's resolved goal.
func (s *Service) StatsToday(rawUserID string) (*TodayStats, error) {
	uid, err := s.userID(rawUserID)
	if err != nil {
		return nil, err
	}

	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	out := &TodayStats{UserID: uid, Date: s.today()}
	if prof, ok := doc.Profiles[uid]; ok {
		out.WeightKg = prof.WeightKg
		out.DailyGoalMl = ledger.ResolveGoal(&prof, s.cfg.Goal)
	} else {
		out.DailyGoalMl = ledger.ResolveGoal(nil, s.cfg.Goal)
	}
	out.Stats = ledger.StatsFor(doc.Entries, uid, out.Date, out.DailyGoalMl)
	return out, nil
}

// GetProfile returns the user's profile (nil when absent) and resolved goal.
func (s *Service) GetProfile(rawUserID string) (string, *ledger.Profile, int, error) {
	uid, err := s.userID(rawUserID)
	if err != nil {
		return "", nil, 0, err
	}

	doc, err := s.store.Load()
	if err != nil {
		return "", nil, 0, err
	}

	if prof, ok := doc.Profiles[uid]; ok {
		return uid, &prof, ledger.ResolveGoal(&prof, s.cfg.Goal), nil
	}
	return uid, nil, ledger.ResolveGoal(nil, s.cfg.Goal), nil
}

// PutProfile upserts the user's weight and returns the new resolved goal.
func (s *Service) PutProfile(rawUserID string, weightKg float64) (string, *ledger.Profile, int, error) {
	uid, err := s.userID(rawUserID)
	if err != nil {
		return "", nil, 0, err
	}

	if math.IsNaN(weightKg) || math.IsInf(weightKg, 0) || weightKg <= 0 {
		return "", nil, 0, ErrInvalidWeight
	}
	rounded, err := units.WeightToKg(weightKg, units.UnitKg)
	if err != nil {
		return "", nil, 0, ErrInvalidWeight
	}
	if rounded < s.cfg.Goal.MinWeightKg || rounded > s.cfg.Goal.MaxWeightKg {
		return "", nil, 0, ErrInvalidWeight
	}

	prof := ledger.Profile{WeightKg: rounded, UpdatedAt: s.now().UTC().Format(time.RFC3339)}

	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.store.Load()
	if err != nil {
		return "", nil, 0, err
	}
	doc.Profiles[uid] = prof
	if err := s.store.Save(doc); err != nil {
		return "", nil, 0, err
	}

	metrics.ProfileUpserts.Inc()
	return uid, &prof, ledger.ResolveGoal(&prof, s.cfg.Goal), nil
}

// Users lists the distinct user ids that have recorded entries.
func (s *Service) Users() ([]string, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return ledger.Users(doc.Entries), nil
}
