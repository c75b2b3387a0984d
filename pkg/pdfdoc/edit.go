package pdfdoc

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/skriva/retext/pkg/region"
)

// coordTolerance is how far, in points, a selection's recorded position may
// drift from the current extraction and still match the same region.
const coordTolerance = 5.0

// Edit is one recorded replace operation on a page. The overlay of edits is
// what turns the original PDF into the working document: it is replayed on
// the extracted regions after a reload and painted over the original page on
// flatten.
type Edit struct {
	Page   int
	Erase  region.Rect
	Text   string
	Font   region.FontStyle
	Anchor region.Point
}

// EditResult describes what an applied edit did to the page.
type EditResult struct {
	Erased   region.Rect
	Inserted region.TextRegion
	Font     region.FontResolution
}

// ApplyEdit replaces the selected region's text on the page.
//
// The selection is located by ID first, then by its recorded top-left corner
// within coordTolerance. When neither matches, the erase rectangle is
// synthesized at the selection position from the replacement text length and
// the style's font size. Every region intersecting the erase rectangle is
// removed, and a new region for the replacement text is appended with a fresh
// ID.
func (d *Document) ApplyEdit(page int, sel region.TextRegion, text string, style region.FontStyle) (EditResult, error) {
	ps, err := d.page(page)
	if err != nil {
		return EditResult{}, err
	}
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
	if located, ok := locate(ps.regions, sel); ok {
		erase = located.Bounds
	} else {
		erase = synthesizedErase(sel.Bounds.X, sel.Bounds.Y, text, style.Size)
	}

	e := Edit{
		Page:   page,
		Erase:  erase,
		Text:   text,
		Font:   style,
		Anchor: region.Point{X: erase.X, Y: erase.Y},
	}
	ps.edits = append(ps.edits, e)

	res := ResolveFamily(style.Family)
	inserted := d.applyToRegions(ps, e, res)
	return EditResult{Erased: erase, Inserted: inserted, Font: res}, nil
}

// applyToRegions mutates the page's region list for one edit: regions
// touching the erase rectangle disappear and the replacement is appended in
// extraction order. Shared between a live edit and snapshot replay so both
// produce the same region state.
func (d *Document) applyToRegions(ps *pageState, e Edit, res region.FontResolution) region.TextRegion {
	kept := ps.regions[:0]
	for _, r := range ps.regions {
		if !r.Bounds.Intersects(e.Erase) {
			kept = append(kept, r)
		}
	}
	ps.regions = kept

	inserted := region.TextRegion{
		ID:   d.nextID,
		Text: e.Text,
		Bounds: region.Rect{
			X: e.Anchor.X,
			Y: e.Anchor.Y,
			W: float64(utf8.RuneCountInString(e.Text)) * e.Font.Size * charWidthRatio,
			H: e.Font.Size * lineHeightRatio,
		},
		Font: region.FontStyle{
			Family: res.Family,
			Size:   e.Font.Size,
			Color:  e.Font.Color,
		},
		Confidence: region.ExactConfidence,
	}
	d.nextID++
	ps.regions = append(ps.regions, inserted)
	return inserted
}

// locate finds the selection's current region, by stable ID first and then
// by proximity of its recorded corner.
func locate(regions []region.TextRegion, sel region.TextRegion) (region.TextRegion, bool) {
	if r, ok := region.FindByID(regions, sel.ID); ok {
		return r, true
	}
	return region.FindNear(regions, sel.Bounds.X, sel.Bounds.Y, coordTolerance)
}

// synthesizedErase estimates a clearing rectangle for a selection that no
// longer matches any extracted region.
func synthesizedErase(x, y float64, text string, size float64) region.Rect {
	return region.Rect{
		X: x,
		Y: y,
		W: float64(utf8.RuneCountInString(text)) * size * charWidthRatio,
		H: size * lineHeightRatio,
	}
}
