package pdfdoc

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/skriva/retext/pkg/region"
)

const (
	// baselineRatio places the text baseline relative to the top of the
	// region box, as a fraction of the font size.
	baselineRatio = 0.8
	// lineHeightRatio is the region box height as a fraction of font size.
	lineHeightRatio = 1.2
	// charWidthRatio estimates the width of a glyph as a fraction of font
	// size when the real advance is unknown.
	charWidthRatio = 0.6
)

// extractRegions groups the page's positioned characters into spans of equal
// font, size and baseline, and converts each span to a top-origin region.
func extractRegions(p pdf.Page, pageHeight float64, nextID *int) []region.TextRegion {
	chars := p.Content().Text
	var out []region.TextRegion

	var (
		span  []pdf.Text
		flush = func() {
			if r, ok := spanToRegion(span, pageHeight, *nextID); ok {
				out = append(out, r)
				*nextID++
			}
			span = span[:0]
		}
	)
	for _, t := range chars {
		if len(span) > 0 && splits(span[len(span)-1], t) {
			flush()
		}
		span = append(span, t)
	}
	flush()
	return out
}

// splits reports whether a new span starts at next. A span breaks on a font
// or size change, a baseline jump, or a horizontal gap wider than half the
// font size.
func splits(prev, next pdf.Text) bool {
	if prev.Font != next.Font || math.Abs(prev.FontSize-next.FontSize) > 0.01 {
		return true
	}
	if math.Abs(prev.Y-next.Y) > 0.1 {
		return true
	}
	gap := next.X - (prev.X + prev.W)
	return gap > prev.FontSize*0.5 || gap < -prev.FontSize
}

func spanToRegion(span []pdf.Text, pageHeight float64, id int) (region.TextRegion, bool) {
	if len(span) == 0 {
		return region.TextRegion{}, false
	}
	var b strings.Builder
	for _, t := range span {
		b.WriteString(t.S)
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return region.TextRegion{}, false
	}

	first, last := span[0], span[len(span)-1]
	size := first.FontSize
	width := last.X + last.W - first.X
	if width <= 0 {
		// Some producers report zero glyph advances, leaving every char at
		// the span's start position. Estimate the width from the text length
		// instead of dropping the span.
		width = float64(utf8.RuneCountInString(text)) * size * charWidthRatio
	}
	bounds := region.Rect{
		X: first.X,
		Y: pageHeight - first.Y - baselineRatio*size,
		W: width,
		H: lineHeightRatio * size,
	}
	if bounds.IsEmpty() {
		return region.TextRegion{}, false
	}
	return region.TextRegion{
		ID:     id,
		Text:   text,
		Bounds: bounds,
		Font: region.FontStyle{
			Family: baseFontFamily(first.Font),
			Size:   size,
			Color:  region.Black,
		},
		Confidence: region.ExactConfidence,
	}, true
}

// baseFontFamily strips a subset prefix like "ABCDEF+" and any style suffix
// from a PDF base font name.
func baseFontFamily(name string) string {
	if i := strings.IndexByte(name, '+'); i >= 0 && i == 6 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '-'); i > 0 {
		name = name[:i]
	}
	if name == "" {
		return region.DefaultFamily
	}
	return name
}
