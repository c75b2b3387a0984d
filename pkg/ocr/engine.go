// Package ocr abstracts the OCR engines that turn a raster image into
// positioned text. The editor only needs word-level tokens with pixel
// bounding boxes and confidences; everything engine-specific stays behind the
// Engine interface.
//
// Three engines are provided: Tesseract (local, behind the "tesseract" build
// tag), Google Document AI (cloud), and a reader for precomputed hOCR files.
package ocr

import (
	"context"

	"github.com/skriva/retext/pkg/region"
)

// Word is a single recognized token in image pixel coordinates.
type Word struct {
	Text       string
	Bounds     region.Rect
	Confidence float64 // 0-100 scale
}

// Engine recognizes text in an encoded raster image (PNG, JPEG or TIFF).
type Engine interface {
	// Recognize runs OCR over the image and returns the recognized words in
	// scan order.
	Recognize(ctx context.Context, image []byte) ([]Word, error)

	// Close releases any resources held by the engine.
	Close() error
}
