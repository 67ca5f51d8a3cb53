// Package merge reconciles a local document export with a remote one.
//
// The policy is last-writer-wins-by-source: for any spool present on both
// sides the remote version overwrites the local one in full. There is no
// field-level merge and no user-facing conflict prompt. This is a
// deliberate simplicity/safety trade-off, not a bug: both sides pushed
// complete snapshots, so picking one whole record per id keeps every
// spool internally consistent.
package merge

import "github.com/SiloCityLabs/filameter.com-sub000/internal/models"

// Merge reconciles local and remote envelopes into one consistent set.
//
// Regular records: local ordering is preserved; a same-id conflict is
// resolved by taking the remote record; remote-only records are appended
// in remote order. Local metadata documents are discarded and replaced
// by the remote's wholesale. The inputs are not modified and the result
// is deterministic for identical inputs.
func Merge(local, remote *models.ExportEnvelope) models.ExportEnvelope {
	result := models.ExportEnvelope{
		Regular: make([]models.FilamentSpool, 0, len(local.Regular)+len(remote.Regular)),
		Local:   make([]models.LocalDocument, 0, len(remote.Local)),
	}

	remoteByID := make(map[string]*models.FilamentSpool, len(remote.Regular))
	for i := range remote.Regular {
		remoteByID[remote.Regular[i].ID] = &remote.Regular[i]
	}

	// Walk local records in original order; remote is authoritative on a
	// same-id conflict.
	seen := make(map[string]bool, len(local.Regular))
	for i := range local.Regular {
		id := local.Regular[i].ID
		if seen[id] {
			continue
		}
		seen[id] = true

		if remoteSpool, ok := remoteByID[id]; ok {
			result.Regular = append(result.Regular, *remoteSpool.Clone())
		} else {
			result.Regular = append(result.Regular, *local.Regular[i].Clone())
		}
	}

	// Append additions from other devices: remote records never matched
	// against a local id, in remote order.
	for i := range remote.Regular {
		if !seen[remote.Regular[i].ID] {
			seen[remote.Regular[i].ID] = true
			result.Regular = append(result.Regular, *remote.Regular[i].Clone())
		}
	}

	// Store-internal metadata is never merged field-by-field; the remote
	// side replaces it verbatim.
	result.Local = append(result.Local, remote.Local...)

	return result
}
