package region

// HitTest returns the first region, in extraction order, whose bounds contain
// p. When several regions overlap at p the earliest one wins; there is no
// z-order or area-based disambiguation. The second return value reports
// whether any region was hit.
func HitTest(regions []TextRegion, p Point) (TextRegion, bool) {
	for _, r := range regions {
		if r.Bounds.Contains(p) {
			return r, true
		}
	}
	return TextRegion{}, false
}

// FindByID returns the region with the given ID, if it is still present.
func FindByID(regions []TextRegion, id int) (TextRegion, bool) {
	for _, r := range regions {
		if r.ID == id {
			return r, true
		}
	}
	return TextRegion{}, false
}

// FindNear returns the first region whose top-left corner lies within
// tolerance of (x, y) on both axes. It is the fallback used to re-locate a
// selected region when its ID no longer resolves, for example after the page
// has been re-extracted.
func FindNear(regions []TextRegion, x, y, tolerance float64) (TextRegion, bool) {
	for _, r := range regions {
		if abs(r.Bounds.X-x) < tolerance && abs(r.Bounds.Y-y) < tolerance {
			return r, true
		}
	}
	return TextRegion{}, false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
