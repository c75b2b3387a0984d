package photodoc

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	"github.com/skriva/retext/pkg/region"
)

// fontPathPatterns are the per-platform locations probed for a TrueType file
// matching the requested family name.
var fontPathPatterns = []string{
	"C:/Windows/Fonts/%s.ttf",
	"/Library/Fonts/%s.ttf",
	"/usr/share/fonts/truetype/%s.ttf",
}

// resolveFace loads a scalable face for the requested family at the given
// size. When no matching font file exists on this system the fixed 7x13
// bitmap face is substituted and the resolution is marked as a fallback.
func resolveFace(requested string, size float64) (font.Face, region.FontResolution) {
	for _, name := range candidateNames(requested) {
		for _, pattern := range fontPathPatterns {
			data, err := os.ReadFile(fmt.Sprintf(pattern, name))
			if err != nil {
				continue
			}
			parsed, err := opentype.Parse(data)
			if err != nil {
				continue
			}
			face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
				Size:    size,
				DPI:     72,
				Hinting: font.HintingFull,
			})
			if err != nil {
				continue
			}
			return face, region.FontResolution{Requested: requested, Family: name}
		}
	}
	return basicfont.Face7x13, region.FontResolution{
		Requested: requested,
		Family:    "Fixed7x13",
		Fallback:  true,
	}
}

func candidateNames(family string) []string {
	family = strings.TrimSpace(family)
	if family == "" {
		return []string{"arial"}
	}
	lower := strings.ToLower(family)
	if lower == family {
		return []string{family}
	}
	return []string{family, lower}
}
