package models

import "encoding/json"

// SchemaDocID identifies the store-internal schema version document
// carried in the local half of an envelope.
const SchemaDocID = "_local/schema"

// LocalDocument carries store-internal metadata (e.g. the schema version
// marker). Local documents do not participate in per-record conflict
// resolution: on merge the incoming side always replaces them wholesale.
type LocalDocument struct {
	ID   string          `json:"id"`
	Rev  string          `json:"rev,omitempty"`
	Body json.RawMessage `json:"body,omitempty"`
}

// ExportEnvelope is the unit exchanged with the relay and written to
// backup files. Regular spools exclude store revision markers; they are
// stripped before transmission and regenerated by the recipient store.
type ExportEnvelope struct {
	Regular []FilamentSpool `json:"regular"`
	Local   []LocalDocument `json:"local"`
}

// StripRevisions returns a copy of the envelope with all store revision
// markers cleared. The receiver is not modified.
func (e *ExportEnvelope) StripRevisions() ExportEnvelope {
	out := ExportEnvelope{
		Regular: make([]FilamentSpool, 0, len(e.Regular)),
		Local:   make([]LocalDocument, 0, len(e.Local)),
	}
	for _, spool := range e.Regular {
		clean := *spool.Clone()
		clean.Rev = ""
		out.Regular = append(out.Regular, clean)
	}
	for _, doc := range e.Local {
		doc.Rev = ""
		out.Local = append(out.Local, doc)
	}
	return out
}
