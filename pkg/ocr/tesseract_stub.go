//go:build !tesseract

package ocr

import (
	"context"
	"errors"
)

// ErrTesseractUnavailable is returned when the Tesseract engine is requested
// but support was not compiled in. The condition is recoverable: install
// Tesseract and rebuild with the "tesseract" build tag.
var ErrTesseractUnavailable = errors.New(`Tesseract OCR not available; rebuild with -tags tesseract after installing it:
  Windows: https://github.com/UB-Mannheim/tesseract/wiki
  macOS:   brew install tesseract
  Linux:   apt-get install tesseract-ocr libtesseract-dev`)

// Tesseract is the stub engine used when the "tesseract" build tag is off.
type Tesseract struct{}

// NewTesseract reports that Tesseract support is not compiled in.
func NewTesseract(opts ...TesseractOption) (*Tesseract, error) {
	return nil, ErrTesseractUnavailable
}

// Recognize always fails on the stub engine.
func (t *Tesseract) Recognize(ctx context.Context, image []byte) ([]Word, error) {
	return nil, ErrTesseractUnavailable
}

// Close is a no-op on the stub engine.
func (t *Tesseract) Close() error { return nil }
