package pdfdoc

import (
	"bytes"
	"fmt"
	"io"

	"codeberg.org/go-pdf/fpdf"
	"codeberg.org/go-pdf/fpdf/contrib/gofpdi"
	"golang.org/x/text/encoding/charmap"
)

// Compose flattens the working document into final PDF bytes. Each original
// page is imported as a template and the page's edits are painted over it in
// order: a white patch over the erase rectangle, then the replacement text at
// the edit's anchor.
func (d *Document) Compose() ([]byte, error) {
	doc := fpdf.New("P", "pt", "", "")
	importer := gofpdi.NewImporter()
	rs := io.ReadSeeker(bytes.NewReader(d.base))

	for i, ps := range d.pages {
		doc.AddPageFormat("P", fpdf.SizeType{Wd: ps.width, Ht: ps.height})

		tpl := importer.ImportPageFromStream(doc, &rs, i+1, "/MediaBox")
		importer.UseImportedTemplate(doc, tpl, 0, 0, ps.width, 0)

		for _, e := range ps.edits {
			doc.SetFillColor(255, 255, 255)
			doc.Rect(e.Erase.X, e.Erase.Y, e.Erase.W, e.Erase.H, "F")

			res := ResolveFamily(e.Font.Family)
			doc.SetFont(res.Family, "", e.Font.Size)
			doc.SetTextColor(int(e.Font.Color.R), int(e.Font.Color.G), int(e.Font.Color.B))

			// ISO-8859-1 keeps the base-14 fonts happy; unmappable
			// runes fall back to the raw string.
			latin1, err := charmap.ISO8859_1.NewEncoder().String(e.Text)
			if err != nil {
				latin1 = e.Text
			}
			doc.Text(e.Anchor.X, e.Anchor.Y+baselineRatio*e.Font.Size, latin1)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate output PDF: %w", err)
	}
	return buf.Bytes(), nil
}
