package models

import "time"

// Usage log entry status values
const (
	UsageStatusSuccess = "success"
	UsageStatusFailure = "failure"
)

// UsageEntry represents a single print job logged against a spool.
// WeightDelta is the amount of filament (grams) consumed by the job;
// the owning service keeps FilamentSpool.UsedWeight equal to the sum
// of all deltas, the store never enforces it.
type UsageEntry struct {
	Timestamp   time.Time `json:"timestamp"`
	ID          string    `json:"id"`
	PrintName   string    `json:"print_name"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	WeightDelta float64   `json:"weight_delta"`
}

// FilamentSpool represents one inventory item.
// ID is either a 36-character UUID or an 8-character alphanumeric code
// used on printable QR labels. Rev is the store-internal revision marker;
// it is regenerated by the store on every write and stripped from exports.
type FilamentSpool struct {
	ID           string       `json:"id"`
	Rev          string       `json:"rev,omitempty"`
	Name         string       `json:"name"`
	Material     string       `json:"material"`
	Brand        string       `json:"brand"`
	Color        string       `json:"color"`
	Location     string       `json:"location"`
	Comments     string       `json:"comments,omitempty"`
	UsageHistory []UsageEntry `json:"usage_history,omitempty"`
	Price        float64      `json:"price"`
	UsedWeight   float64      `json:"used_weight"`
	TotalWeight  float64      `json:"total_weight"`
}

// RemainingWeight returns the grams of filament left on the spool.
// Computed at read time, never stored.
func (s *FilamentSpool) RemainingWeight() float64 {
	return s.TotalWeight - s.UsedWeight
}

// Clone creates a deep copy of the spool
func (s *FilamentSpool) Clone() *FilamentSpool {
	out := *s
	if s.UsageHistory != nil {
		out.UsageHistory = make([]UsageEntry, len(s.UsageHistory))
		copy(out.UsageHistory, s.UsageHistory)
	}
	return &out
}

// Duplicate returns a copy of the spool with its identity stripped.
// The caller assigns a fresh ID before saving; the store assigns the Rev.
func (s *FilamentSpool) Duplicate() *FilamentSpool {
	out := s.Clone()
	out.ID = ""
	out.Rev = ""
	return out
}
