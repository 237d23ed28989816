package ledger

// Entry is one recorded intake event. Entries are immutable after creation
// and only ever removed whole, keyed by ID.
type Entry struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	AmountMl int    `json:"amountMl"`
	// Unit is the unit the caller supplied, kept for display fidelity.
	// Aggregation always uses AmountMl.
	Unit       string `json:"unit"`
	ConsumedAt string `json:"consumedAt"`
	// Date is the UTC calendar-day slice of ConsumedAt (YYYY-MM-DD), derived
	// at write time and used as the aggregation partition key.
	Date string `json:"date"`
	Note string `json:"note"`
}

// Profile carries the optional per-user weight that personalizes the daily
// goal. At most one profile exists per normalized user id.
type Profile struct {
	WeightKg  float64 `json:"weightKg,omitempty"`
	UpdatedAt string  `json:"updatedAt"`
}

// Document is the durable aggregate root: every entry plus the per-user
// profiles, serialized as a single JSON file by the store. Missing members
// unmarshal to nil and are treated as empty, never as corruption.
type Document struct {
	Entries  []Entry            `json:"entries"`
	Profiles map[string]Profile `json:"profiles,omitempty"`
}

// Stats is the per-user, per-day aggregate the API reports.
type Stats struct {
	ConsumedMl  int     `json:"consumedMl"`
	RemainingMl int     `json:"remainingMl"`
	Progress    float64 `json:"progress"`
}
