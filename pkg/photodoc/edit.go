package photodoc

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/skriva/retext/pkg/region"
)

const (
	// coordTolerance matches a stale selection back to a recognized region.
	coordTolerance = 5.0
	// patchPadding widens the white patch around the erased region so
	// anti-aliased fringes of the old glyphs do not survive the repaint.
	patchPadding = 5
	// charWidthRatio and lineHeightRatio estimate a replacement region's
	// extent from its text length and font size.
	charWidthRatio  = 0.6
	lineHeightRatio = 1.2
)

// EditResult describes what an applied edit did to the photo.
type EditResult struct {
	Erased   region.Rect
	Inserted region.TextRegion
	Font     region.FontResolution
}

// ApplyEdit paints replacement text over the selected region.
//
// The previous pixels are pushed onto the undo stack first. The selection is
// located by ID, then by proximity of its recorded corner; when neither
// matches, the erase rectangle is synthesized at the selection position. The
// erased area is patched white with padding and the text is drawn at the
// region's top-left in the style's color. The region list is left as
// recognition produced it; regions are not re-extracted from edited pixels.
func (d *Document) ApplyEdit(sel region.TextRegion, text string, style region.FontStyle) (EditResult, error) {
	if strings.TrimSpace(text) == "" {
		return EditResult{}, fmt.Errorf("replacement text is empty")
	}
	if style.Size <= 0 {
		style.Size = sel.Font.Size
	}
	if style.Size <= 0 {
		return EditResult{}, fmt.Errorf("font size must be positive")
	}

	erase := sel.Bounds
	if located, ok := locate(d.regions, sel); ok {
		erase = located.Bounds
	} else {
		erase = region.Rect{
			X: sel.Bounds.X,
			Y: sel.Bounds.Y,
			W: float64(utf8.RuneCountInString(text)) * style.Size * charWidthRatio,
			H: style.Size * lineHeightRatio,
		}
	}

	d.pushUndo()

	patch := image.Rect(
		int(erase.X)-patchPadding,
		int(erase.Y)-patchPadding,
		int(erase.Right())+patchPadding,
		int(erase.Bottom())+patchPadding,
	).Intersect(d.img.Bounds())
	draw.Draw(d.img, patch, image.NewUniform(color.White), image.Point{}, draw.Src)

	face, res := resolveFace(style.Family, style.Size)
	drawText(d.img, face, text, erase.X, erase.Y, style.Color)

	// Describes the drawn text for the caller; it is not tracked in the
	// region list, so it carries no usable ID.
	inserted := region.TextRegion{
		ID:   -1,
		Text: text,
		Bounds: region.Rect{
			X: erase.X,
			Y: erase.Y,
			W: float64(utf8.RuneCountInString(text)) * style.Size * charWidthRatio,
			H: style.Size * lineHeightRatio,
		},
		Font: region.FontStyle{
			Family: res.Family,
			Size:   style.Size,
			Color:  style.Color,
		},
		Confidence: region.ExactConfidence,
	}

	return EditResult{Erased: erase, Inserted: inserted, Font: res}, nil
}

func locate(regions []region.TextRegion, sel region.TextRegion) (region.TextRegion, bool) {
	if r, ok := region.FindByID(regions, sel.ID); ok {
		return r, true
	}
	return region.FindNear(regions, sel.Bounds.X, sel.Bounds.Y, coordTolerance)
}

// drawText renders text with its baseline one ascent below the region top,
// so the glyphs fill the erased box from the top down.
func drawText(dst draw.Image, face font.Face, text string, x, y float64, col region.RGB) {
	drawer := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{R: col.R, G: col.G, B: col.B, A: 255}),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(int(x)),
			Y: fixed.I(int(y)) + face.Metrics().Ascent,
		},
	}
	drawer.DrawString(text)
}
