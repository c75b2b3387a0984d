// Package export saves a working document in its final formats: flattened
// PDF, Word, and PNG for photos.
package export

import (
	"context"
	"fmt"
	"image/png"
	"io"

	"github.com/gonfva/docxlib"

	"github.com/skriva/retext/pkg/pdfdoc"
	"github.com/skriva/retext/pkg/photodoc"
	"github.com/skriva/retext/pkg/raster"
	"github.com/skriva/retext/pkg/region"
)

// headingSize is the docx run size, in half-points, of per-page headings.
const headingSize = 32

// PDF flattens the document and writes the final PDF bytes.
func PDF(doc *pdfdoc.Document, w io.Writer) error {
	data, err := doc.Compose()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// DOCX writes the document's text as a Word file, one heading per page
// followed by the page's regions in extraction order. Geometry is not
// preserved; this is a text export.
func DOCX(doc *pdfdoc.Document, w io.Writer) error {
	out := docxlib.New()
	for page := 0; page < doc.PageCount(); page++ {
		regions, err := doc.Regions(page)
		if err != nil {
			return err
		}
		out.AddParagraph().AddText(fmt.Sprintf("Page %d", page+1)).Size(headingSize)
		for _, r := range regions {
			addRegionParagraph(out.AddParagraph(), r)
		}
	}
	if err := out.Write(w); err != nil {
		return fmt.Errorf("failed to write DOCX: %w", err)
	}
	return nil
}

// PhotoDOCX writes a photo's recognized text as a Word file.
func PhotoDOCX(doc *photodoc.Document, w io.Writer) error {
	out := docxlib.New()
	for _, r := range doc.Regions() {
		addRegionParagraph(out.AddParagraph(), r)
	}
	if err := out.Write(w); err != nil {
		return fmt.Errorf("failed to write DOCX: %w", err)
	}
	return nil
}

// PNG writes the photo's current pixels.
func PNG(doc *photodoc.Document, w io.Writer) error {
	if err := png.Encode(w, doc.Image()); err != nil {
		return fmt.Errorf("failed to write PNG: %w", err)
	}
	return nil
}

// PagePNG renders one page of the flattened document to PNG through the
// rasterizer.
func PagePNG(ctx context.Context, doc *pdfdoc.Document, page int, r raster.Renderer, dpi int, w io.Writer) error {
	data, err := doc.Compose()
	if err != nil {
		return err
	}
	img, err := r.RenderPage(ctx, data, page, dpi)
	if err != nil {
		return err
	}
	if _, err := w.Write(img); err != nil {
		return fmt.Errorf("failed to write PNG: %w", err)
	}
	return nil
}

// addRegionParagraph emits one run sized and colored from the region's
// style. Docx run sizes are half-points.
func addRegionParagraph(p *docxlib.Paragraph, r region.TextRegion) {
	run := p.AddText(r.Text)
	if r.Font.Size > 0 {
		run.Size(int(r.Font.Size * 2))
	}
	if r.Font.Color != region.Black {
		run.Color(fmt.Sprintf("%02X%02X%02X",
			r.Font.Color.R, r.Font.Color.G, r.Font.Color.B))
	}
}
