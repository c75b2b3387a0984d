package pdfdoc

import (
	"strings"

	"github.com/skriva/retext/pkg/region"
)

// coreFamilies maps lowercased family names onto the standard PDF base-14
// families the writer supports without embedding.
var coreFamilies = map[string]string{
	"helvetica":       "Helvetica",
	"arial":           "Helvetica",
	"courier":         "Courier",
	"courier new":     "Courier",
	"times":           "Times",
	"times-roman":     "Times",
	"times new roman": "Times",
	"symbol":          "Symbol",
	"zapfdingbats":    "ZapfDingbats",
}

// ResolveFamily maps a requested font family onto a writable one, falling
// back to Helvetica for anything outside the base-14 set.
func ResolveFamily(requested string) region.FontResolution {
	key := strings.ToLower(strings.TrimSpace(requested))
	if fam, ok := coreFamilies[key]; ok {
		return region.FontResolution{Requested: requested, Family: fam}
	}
	return region.FontResolution{Requested: requested, Family: "Helvetica", Fallback: true}
}
