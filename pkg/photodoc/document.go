// Package photodoc implements the photo side of the editor: decoding an
// image, recognizing its text regions with an OCR engine, painting
// replacement text over the pixels, and stepping back through previous
// states.
//
// Unlike the PDF side there is no overlay to replay; edits are destructive
// pixel operations, so history is a stack of full image copies and only undo
// is supported.
package photodoc

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/skriva/retext/pkg/ocr"
	"github.com/skriva/retext/pkg/region"
)

// Document is a loaded photo with its recognized regions and undo stack.
// Regions come from recognition only; edits paint over the pixels without
// touching the region list, so a region keeps pointing at its spot even after
// the text there has been replaced.
type Document struct {
	img     *image.RGBA
	format  string
	regions []region.TextRegion
	undo    []*image.RGBA
}

// Load decodes image bytes. PNG, JPEG, GIF, BMP and TIFF are recognized.
func Load(data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("input image data is empty")
	}
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return &Document{img: toRGBA(src), format: format}, nil
}

// Format returns the decoded source format name, e.g. "png" or "jpeg".
func (d *Document) Format() string { return d.format }

// Image returns the current working pixels.
func (d *Document) Image() image.Image { return d.img }

// Bounds returns the image extent.
func (d *Document) Bounds() image.Rectangle { return d.img.Bounds() }

// PNG encodes the current working image as PNG.
func (d *Document) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, d.img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// Recognize runs the OCR engine over the current pixels and replaces the
// document's regions with the results, filtered at the given confidence
// threshold.
func (d *Document) Recognize(ctx context.Context, engine ocr.Engine, threshold float64) error {
	data, err := d.PNG()
	if err != nil {
		return err
	}
	words, err := engine.Recognize(ctx, data)
	if err != nil {
		return fmt.Errorf("text recognition failed: %w", err)
	}
	d.regions = ocr.RegionsFromWords(words, threshold)
	return nil
}

// Regions returns the current text regions in recognition order.
func (d *Document) Regions() []region.TextRegion {
	return append([]region.TextRegion(nil), d.regions...)
}

// PlainText joins the region texts in recognition order, one per line.
func (d *Document) PlainText() string {
	var buf bytes.Buffer
	for _, r := range d.regions {
		buf.WriteString(r.Text)
		buf.WriteByte('\n')
	}
	return buf.String()
}

// CanUndo reports whether a previous state exists.
func (d *Document) CanUndo() bool { return len(d.undo) > 0 }

// Undo restores the most recent saved pixels. There is no redo for photos.
func (d *Document) Undo() bool {
	if len(d.undo) == 0 {
		return false
	}
	d.img = d.undo[len(d.undo)-1]
	d.undo = d.undo[:len(d.undo)-1]
	return true
}

// pushUndo saves a copy of the current pixels.
func (d *Document) pushUndo() {
	d.undo = append(d.undo, cloneRGBA(d.img))
}

func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
