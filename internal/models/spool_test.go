package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemainingWeight(t *testing.T) {
	spool := &FilamentSpool{
		ID:          "spool-1",
		TotalWeight: 1000,
		UsedWeight:  250,
	}

	assert.Equal(t, float64(750), spool.RemainingWeight())
}

func TestClone_DeepCopiesUsageHistory(t *testing.T) {
	spool := &FilamentSpool{
		ID:   "spool-1",
		Name: "Galaxy Black",
		UsageHistory: []UsageEntry{
			{ID: "use-1", PrintName: "benchy", WeightDelta: 12.5, Status: UsageStatusSuccess, Timestamp: time.Now()},
		},
	}

	clone := spool.Clone()
	clone.UsageHistory[0].PrintName = "calibration cube"

	assert.Equal(t, "benchy", spool.UsageHistory[0].PrintName)
	assert.Equal(t, spool.ID, clone.ID)
}

func TestDuplicate_StripsIdentity(t *testing.T) {
	spool := &FilamentSpool{
		ID:       "spool-1",
		Rev:      "rev-abc",
		Name:     "Galaxy Black",
		Material: "PLA",
		Brand:    "Prusament",
	}

	dup := spool.Duplicate()

	assert.Empty(t, dup.ID)
	assert.Empty(t, dup.Rev)
	assert.Equal(t, "Galaxy Black", dup.Name)
	assert.Equal(t, "PLA", dup.Material)
}

func TestStripRevisions(t *testing.T) {
	env := &ExportEnvelope{
		Regular: []FilamentSpool{
			{ID: "spool-1", Rev: "rev-1", Name: "A"},
			{ID: "spool-2", Rev: "rev-2", Name: "B"},
		},
		Local: []LocalDocument{
			{ID: SchemaDocID, Rev: "rev-3", Body: json.RawMessage(`{"version":2}`)},
		},
	}

	clean := env.StripRevisions()

	for _, spool := range clean.Regular {
		assert.Empty(t, spool.Rev)
	}
	for _, doc := range clean.Local {
		assert.Empty(t, doc.Rev)
	}

	// Original envelope keeps its revisions
	assert.Equal(t, "rev-1", env.Regular[0].Rev)
	assert.Equal(t, "rev-3", env.Local[0].Rev)
}

func TestIdentityState(t *testing.T) {
	tests := []struct {
		identity *SyncIdentity
		name     string
		want     IdentityState
	}{
		{name: "nil identity", identity: nil, want: IdentityNone},
		{name: "empty identity", identity: &SyncIdentity{}, want: IdentityNone},
		{
			name:     "pending verification",
			identity: &SyncIdentity{Email: "user@example.com", NeedsVerification: true},
			want:     IdentityPendingVerification,
		},
		{
			name:     "engaged",
			identity: &SyncIdentity{SyncKey: "abc123", Email: "user@example.com"},
			want:     IdentityEngaged,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.identity.State())
		})
	}
}

func TestIdentityState_String(t *testing.T) {
	assert.Equal(t, "none", IdentityNone.String())
	assert.Equal(t, "pending verification", IdentityPendingVerification.String())
	assert.Equal(t, "engaged", IdentityEngaged.String())
	assert.Equal(t, "unknown", IdentityState(42).String())
}

func TestSpool_JSONRoundTrip_OmitsEmptyRev(t *testing.T) {
	spool := FilamentSpool{ID: "spool-1", Name: "A"}

	data, err := json.Marshal(spool)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "rev")
}
