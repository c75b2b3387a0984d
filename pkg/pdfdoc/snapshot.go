package pdfdoc

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// documentState is the serialized form of a Document: the untouched original
// bytes plus the edit overlay. Restoring re-extracts from the original and
// replays the overlay, so region IDs and geometry come out the same as when
// the snapshot was taken.
type documentState struct {
	Base  []byte
	Edits []Edit
}

// Snapshot serializes the full document state.
func (d *Document) Snapshot() ([]byte, error) {
	state := documentState{Base: d.base}
	for _, ps := range d.pages {
		state.Edits = append(state.Edits, ps.edits...)
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(state); err != nil {
		return nil, fmt.Errorf("failed to encode document state: %w", err)
	}
	return buf.Bytes(), nil
}

// Restore rebuilds a document from a snapshot taken with Snapshot.
func Restore(data []byte) (*Document, error) {
	var state documentState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&state); err != nil {
		return nil, fmt.Errorf("failed to decode document state: %w", err)
	}
	doc, err := Load(state.Base)
	if err != nil {
		return nil, err
	}
	for _, e := range state.Edits {
		ps, err := doc.page(e.Page)
		if err != nil {
			return nil, fmt.Errorf("snapshot references %w", err)
		}
		ps.edits = append(ps.edits, e)
		doc.applyToRegions(ps, e, ResolveFamily(e.Font.Family))
	}
	return doc, nil
}
