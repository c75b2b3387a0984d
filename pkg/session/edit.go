package session

import (
	"strings"

	"github.com/skriva/retext/pkg/pdfdoc"
	"github.com/skriva/retext/pkg/region"
)

// EditOutcome describes what an applied edit did, regardless of backend.
// NoOp is true when the replacement text was empty and nothing changed.
type EditOutcome struct {
	NoOp     bool
	Erased   region.Rect
	Inserted region.TextRegion
	Font     region.FontResolution
}

// ApplyEdit replaces the selected region's text with the active style.
//
// Empty or whitespace-only text is a no-op, not an error. On success the
// selection is cleared; for PDFs the new document state is committed to
// history, for photos the backend has already saved its own undo state.
func (s *Session) ApplyEdit(text string) (EditOutcome, error) {
	if s.mode == ModeNone {
		return EditOutcome{}, ErrNoDocument
	}
	if s.selection == nil {
		return EditOutcome{}, ErrNoSelection
	}
	if strings.TrimSpace(text) == "" {
		return EditOutcome{NoOp: true}, nil
	}

	switch s.mode {
	case ModePDF:
		res, err := s.pdf.ApplyEdit(s.selection.Page, s.selection.Region, text, s.style)
		if err != nil {
			return EditOutcome{}, err
		}
		s.selection = nil
		if err := s.commitPDF(); err != nil {
			return EditOutcome{}, err
		}
		return EditOutcome{Erased: res.Erased, Inserted: res.Inserted, Font: res.Font}, nil
	default:
		res, err := s.photo.ApplyEdit(s.selection.Region, text, s.style)
		if err != nil {
			return EditOutcome{}, err
		}
		s.selection = nil
		return EditOutcome{Erased: res.Erased, Inserted: res.Inserted, Font: res.Font}, nil
	}
}

// Undo steps the document back one state. It reports whether anything
// changed; undo at the oldest state is a no-op.
func (s *Session) Undo() (bool, error) {
	switch s.mode {
	case ModePDF:
		snap, ok := s.hist.Undo()
		if !ok {
			return false, nil
		}
		doc, err := pdfdoc.Restore(snap.Data)
		if err != nil {
			return false, err
		}
		s.pdf = doc
		s.page = snap.PageIndex
		s.selection = nil
		return true, nil
	case ModePhoto:
		if !s.photo.Undo() {
			return false, nil
		}
		s.selection = nil
		return true, nil
	default:
		return false, ErrNoDocument
	}
}

// Redo steps the document forward again after an undo. Photos have no redo.
func (s *Session) Redo() (bool, error) {
	switch s.mode {
	case ModePDF:
		snap, ok := s.hist.Redo()
		if !ok {
			return false, nil
		}
		doc, err := pdfdoc.Restore(snap.Data)
		if err != nil {
			return false, err
		}
		s.pdf = doc
		s.page = snap.PageIndex
		s.selection = nil
		return true, nil
	case ModePhoto:
		return false, ErrPhotoRedo
	default:
		return false, ErrNoDocument
	}
}
