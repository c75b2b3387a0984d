//go:build tesseract

package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/skriva/retext/pkg/region"
)

// Tesseract recognizes text with a local Tesseract installation via
// gosseract. Requires the "tesseract" build tag and the Tesseract shared
// libraries at build time.
type Tesseract struct {
	client *gosseract.Client
}

// NewTesseract creates a Tesseract-backed engine. The returned engine must be
// closed to release the underlying client.
func NewTesseract(opts ...TesseractOption) (*Tesseract, error) {
	cfg := defaultTesseractOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	client := gosseract.NewClient()
	if cfg.language != "" {
		if err := client.SetLanguage(cfg.language); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to set language %q: %w", cfg.language, err)
		}
	}
	if err := client.SetPageSegMode(gosseract.PageSegMode(cfg.pageSegMode)); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set page segmentation mode %d: %w", cfg.pageSegMode, err)
	}
	return &Tesseract{client: client}, nil
}

// Recognize runs word-level OCR over the encoded image.
func (t *Tesseract) Recognize(ctx context.Context, image []byte) ([]Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := t.client.SetImageFromBytes(image); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}
	boxes, err := t.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	words := make([]Word, 0, len(boxes))
	for _, box := range boxes {
		words = append(words, Word{
			Text: box.Word,
			Bounds: region.Rect{
				X: float64(box.Box.Min.X),
				Y: float64(box.Box.Min.Y),
				W: float64(box.Box.Dx()),
				H: float64(box.Box.Dy()),
			},
			Confidence: box.Confidence,
		})
	}
	return words, nil
}

// Close releases the gosseract client.
func (t *Tesseract) Close() error {
	return t.client.Close()
}
