package session

import (
	"fmt"
	"io"

	"github.com/skriva/retext/pkg/export"
)

// SavePDF writes the flattened PDF. Only valid with a PDF open.
func (s *Session) SavePDF(w io.Writer) error {
	switch s.mode {
	case ModePDF:
		return export.PDF(s.pdf, w)
	case ModePhoto:
		return fmt.Errorf("photo documents save as PNG, not PDF")
	default:
		return ErrNoDocument
	}
}

// SaveDOCX writes the document's text as a Word file.
func (s *Session) SaveDOCX(w io.Writer) error {
	switch s.mode {
	case ModePDF:
		return export.DOCX(s.pdf, w)
	case ModePhoto:
		return export.PhotoDOCX(s.photo, w)
	default:
		return ErrNoDocument
	}
}

// SavePNG writes the photo's current pixels. Only valid with a photo open.
func (s *Session) SavePNG(w io.Writer) error {
	switch s.mode {
	case ModePhoto:
		return export.PNG(s.photo, w)
	case ModePDF:
		return fmt.Errorf("PDF documents save as PDF, not PNG")
	default:
		return ErrNoDocument
	}
}
