package ocr

import (
	"context"
	"fmt"

	"github.com/skriva/retext/pkg/hocr"
	"github.com/skriva/retext/pkg/region"
)

// HOCRFile is an Engine fed from a precomputed hOCR document instead of a
// live recognizer, for workflows where OCR ran out of band. The image passed
// to Recognize is ignored; words come from the configured page of the hOCR
// data.
type HOCRFile struct {
	doc  hocr.Document
	page int
}

// NewHOCRFile parses hOCR data and serves words from the given 1-based page.
func NewHOCRFile(data []byte, page int) (*HOCRFile, error) {
	doc, err := hocr.Parse(data)
	if err != nil {
		return nil, err
	}
	if page < 1 || page > len(doc.Pages) {
		return nil, fmt.Errorf("hOCR data has %d pages, requested page %d", len(doc.Pages), page)
	}
	return &HOCRFile{doc: doc, page: page}, nil
}

// Recognize returns the words recorded for the configured page.
func (h *HOCRFile) Recognize(ctx context.Context, image []byte) ([]Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	src := h.doc.Pages[h.page-1].AllWords()
	words := make([]Word, 0, len(src))
	for _, w := range src {
		words = append(words, Word{
			Text: w.Text,
			Bounds: region.Rect{
				X: w.BBox.X1,
				Y: w.BBox.Y1,
				W: w.BBox.Width(),
				H: w.BBox.Height(),
			},
			Confidence: w.Confidence,
		})
	}
	return words, nil
}

// Close is a no-op; the document is held in memory.
func (h *HOCRFile) Close() error { return nil }
