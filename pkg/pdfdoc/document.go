// Package pdfdoc implements the PDF side of the editor: loading a document,
// extracting its text spans as editable regions, replacing a region's text in
// place, and flattening the result back to PDF bytes.
//
// The working document is the original PDF plus an ordered overlay of edits.
// Region extraction reads the original bytes with ledongthuc/pdf and replays
// the overlay on top; flattening rebuilds the file with fpdf, importing each
// original page as a template and painting the erase patches and replacement
// text over it.
package pdfdoc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/skriva/retext/pkg/region"
)

// Document is a loaded PDF with its extracted regions and pending edits.
type Document struct {
	base   []byte
	pages  []*pageState
	nextID int
}

type pageState struct {
	width   float64
	height  float64
	regions []region.TextRegion
	edits   []Edit
}

// Load parses PDF bytes and extracts the text regions of every page.
func Load(data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("input PDF data is empty")
	}
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	doc := &Document{base: append([]byte(nil), data...)}
	for num := 1; num <= reader.NumPage(); num++ {
		page := reader.Page(num)
		ps := &pageState{width: 612, height: 792} // US Letter when unspecified
		if !page.V.IsNull() {
			if w, h, ok := mediaBox(page); ok {
				ps.width, ps.height = w, h
			}
			ps.regions = extractRegions(page, ps.height, &doc.nextID)
		}
		doc.pages = append(doc.pages, ps)
	}
	if len(doc.pages) == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}
	return doc, nil
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int { return len(d.pages) }

// PageSize returns the page extent in PDF points.
func (d *Document) PageSize(page int) (w, h float64, err error) {
	ps, err := d.page(page)
	if err != nil {
		return 0, 0, err
	}
	return ps.width, ps.height, nil
}

// Regions returns the page's current text regions in extraction order.
// Callers must not assume any spatial sorting.
func (d *Document) Regions(page int) ([]region.TextRegion, error) {
	ps, err := d.page(page)
	if err != nil {
		return nil, err
	}
	return append([]region.TextRegion(nil), ps.regions...), nil
}

// PlainText joins the page's region texts in extraction order, one region
// per line.
func (d *Document) PlainText(page int) (string, error) {
	ps, err := d.page(page)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, r := range ps.regions {
		b.WriteString(r.Text)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func (d *Document) page(page int) (*pageState, error) {
	if page < 0 || page >= len(d.pages) {
		return nil, fmt.Errorf("page %d out of range [0,%d)", page, len(d.pages))
	}
	return d.pages[page], nil
}

// mediaBox resolves the page's MediaBox, walking up the page tree for
// inherited values.
func mediaBox(p pdf.Page) (w, h float64, ok bool) {
	v := p.V
	for !v.IsNull() {
		if mb := v.Key("MediaBox"); !mb.IsNull() && mb.Len() == 4 {
			x0, y0 := mb.Index(0).Float64(), mb.Index(1).Float64()
			x1, y1 := mb.Index(2).Float64(), mb.Index(3).Float64()
			if x1 > x0 && y1 > y0 {
				return x1 - x0, y1 - y0, true
			}
			return 0, 0, false
		}
		v = v.Key("Parent")
	}
	return 0, 0, false
}
