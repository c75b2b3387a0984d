// Package region defines the common representation of editable text found on a
// PDF page or a photograph: a rectangle, the text it carries and the font it is
// rendered in. Both document backends produce regions in this form, so
// selection and editing code never needs to know where a region came from.
package region

// RGB is an opaque 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// Black is the default text color for regions whose source reports none.
var Black = RGB{0, 0, 0}

// Point is a coordinate in the source's native space: PDF points for PDF
// pages, pixels for images. The origin is the top-left corner in both cases.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle with a top-left origin.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the right edge X coordinate.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the bottom edge Y coordinate.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// IsEmpty reports whether the rectangle has non-positive extent.
func (r Rect) IsEmpty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether p lies inside the rectangle. Boundaries are
// inclusive on all four edges.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() &&
		p.Y >= r.Y && p.Y <= r.Bottom()
}

// Intersects reports whether the two rectangles share any point.
func (r Rect) Intersects(other Rect) bool {
	return !(r.Right() < other.X ||
		r.X > other.Right() ||
		r.Bottom() < other.Y ||
		r.Y > other.Bottom())
}

// Expand grows the rectangle by margin on all four sides.
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		X: r.X - margin,
		Y: r.Y - margin,
		W: r.W + 2*margin,
		H: r.H + 2*margin,
	}
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// FontStyle describes how a region's text is rendered.
type FontStyle struct {
	Family string
	Size   float64
	Color  RGB
}

// ExactConfidence marks regions whose text is known exactly rather than
// recognized, such as PDF-extracted spans or freshly inserted replacements.
const ExactConfidence = 100.0

// DefaultFamily is the font family assumed when extraction cannot name one.
const DefaultFamily = "Helvetica"

// FontResolution reports how a requested font family was mapped onto a font
// the output backend could actually render. Fallback is true when the
// requested family was unavailable and a substitute was used.
type FontResolution struct {
	Requested string
	Family    string
	Fallback  bool
}

// TextRegion is one rectangle of text found on a page or image.
//
// ID is assigned at extraction time and stays valid until the page is
// re-extracted; it is how a selection refers back to "the same" region after
// the document has been mutated. Confidence is the OCR certainty on a 0-100
// scale, or ExactConfidence for regions whose text is exact.
type TextRegion struct {
	ID         int
	Text       string
	Bounds     Rect
	Font       FontStyle
	Confidence float64
}
