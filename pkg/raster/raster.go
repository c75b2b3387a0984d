// Package raster renders PDF pages to images by shelling out to an external
// rasterizer. Pages of scanned PDFs carry no text structure, so the editor
// rasterizes them and runs OCR on the pixels instead.
package raster

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// DefaultDPI is the render resolution when the caller does not pick one.
const DefaultDPI = 150

// Renderer turns one page of a PDF into PNG bytes. Page indexes are 0-based.
type Renderer interface {
	RenderPage(ctx context.Context, pdfData []byte, page, dpi int) ([]byte, error)
}

// PDFToPPM renders pages with the poppler pdftoppm binary.
type PDFToPPM struct {
	// Binary overrides the executable name, for tests or nonstandard
	// installs. Empty means "pdftoppm" from PATH.
	Binary string
}

// NewPDFToPPM returns a renderer using pdftoppm from PATH, or an error with
// install guidance when the binary is missing.
func NewPDFToPPM() (*PDFToPPM, error) {
	if _, err := exec.LookPath("pdftoppm"); err != nil {
		return nil, fmt.Errorf(
			"pdftoppm not found in PATH; install poppler-utils "+
				"(apt install poppler-utils, brew install poppler): %w", err)
	}
	return &PDFToPPM{}, nil
}

// RenderPage writes the PDF to a temporary file and renders the given page
// to PNG on pdftoppm's stdout.
func (r *PDFToPPM) RenderPage(ctx context.Context, pdfData []byte, page, dpi int) ([]byte, error) {
	if page < 0 {
		return nil, fmt.Errorf("page %d out of range", page)
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	tmp, err := os.CreateTemp("", "retext-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to stage PDF for rendering: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(pdfData); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to stage PDF for rendering: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to stage PDF for rendering: %w", err)
	}

	bin := r.Binary
	if bin == "" {
		bin = "pdftoppm"
	}
	num := strconv.Itoa(page + 1)
	cmd := exec.CommandContext(ctx, bin,
		"-png",
		"-r", strconv.Itoa(dpi),
		"-f", num,
		"-l", num,
		"-singlefile",
		tmp.Name(),
	)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("pdftoppm failed: %w: %s", err, stderr.String())
	}
	if out.Len() == 0 {
		return nil, fmt.Errorf("pdftoppm produced no output for page %d", page)
	}
	return out.Bytes(), nil
}
