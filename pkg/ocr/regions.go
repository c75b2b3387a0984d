package ocr

import (
	"strings"

	"github.com/skriva/retext/pkg/region"
)

// DefaultConfidenceThreshold is the minimum confidence (0-100) a word needs
// to become an editable region. Tokens at or below it are noise more often
// than text.
const DefaultConfidenceThreshold = 30.0

// minEstimatedSize is the floor for the estimated font size of a region.
const minEstimatedSize = 10.0

// RegionsFromWords converts recognized words into editable text regions,
// dropping words with empty trimmed text, non-positive extent, or confidence
// at or below threshold. The font size is estimated from the box height as
// 0.75 x height, never below 10; the color defaults to black. IDs are
// assigned in scan order starting at 0.
func RegionsFromWords(words []Word, threshold float64) []region.TextRegion {
	var out []region.TextRegion
	for _, w := range words {
		text := strings.TrimSpace(w.Text)
		if text == "" || w.Confidence <= threshold || w.Bounds.IsEmpty() {
			continue
		}
		size := 0.75 * w.Bounds.H
		if size < minEstimatedSize {
			size = minEstimatedSize
		}
		out = append(out, region.TextRegion{
			ID:     len(out),
			Text:   text,
			Bounds: w.Bounds,
			Font: region.FontStyle{
				Family: region.DefaultFamily,
				Size:   size,
				Color:  region.Black,
			},
			Confidence: w.Confidence,
		})
	}
	return out
}
