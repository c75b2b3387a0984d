// retext is a command-line editor for the text baked into PDFs and photos.
//
// It extracts the text regions of a page, replaces a selected region's text
// in place, and writes the edited document back out. PDF pages keep their
// original appearance with the replacement painted over the erased region;
// photos are repainted pixel by pixel. Photos and scanned PDF pages get
// their regions from an OCR engine.
//
// Usage:
//
//	retext -input document.pdf [options]
//
// Inspect:
//
//	-page int         1-based page number (default 1)
//	-list             List the page's text regions and exit
//
// Edit:
//
//	-select int       ID of the region to edit
//	-at string        Select the region at point "x,y" instead of -select
//	-text string      Replacement text
//	-font string      Font family override
//	-size float       Font size override in points
//	-color string     Text color override as RRGGBB hex
//	-undo int         Undo this many steps after editing
//
// Output:
//
//	-output string    Output path: .pdf saves the document, .png saves the
//	                  photo or renders the current PDF page
//	-docx string      Also write the document text as a Word file
//	-overwrite        Overwrite the output file if it exists
//
// OCR:
//
//	-ocr string       Engine for photos and scanned pages: tesseract, docai or hocr
//	-hocr string      hOCR file for -ocr hocr
//	-dpi int          Render resolution for OCR on scanned PDF pages
//
// Examples:
//
// Replace region 3 on page 2 and save:
//
//	retext -input report.pdf -page 2 -select 3 -text "Paid" -output report_edited.pdf
//
// Recognize and list the regions of a photo:
//
//	retext -input receipt.jpg -ocr tesseract -list
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/skriva/retext/pkg/export"
	"github.com/skriva/retext/pkg/ocr"
	"github.com/skriva/retext/pkg/raster"
	"github.com/skriva/retext/pkg/region"
	"github.com/skriva/retext/pkg/session"
)

func main() {
	configPath := flag.String("config", "", "Path to the config YAML file")
	inputPath := flag.String("input", "", "Path to the input PDF or image (required)")
	page := flag.Int("page", 1, "1-based page number")
	list := flag.Bool("list", false, "List the page's text regions and exit")
	selectID := flag.Int("select", -1, "ID of the region to edit")
	at := flag.String("at", "", "Select the region at point \"x,y\" instead of -select")
	text := flag.String("text", "", "Replacement text")
	fontFlag := flag.String("font", "", "Font family override")
	sizeFlag := flag.Float64("size", 0, "Font size override in points")
	colorFlag := flag.String("color", "", "Text color override as RRGGBB hex")
	undoSteps := flag.Int("undo", 0, "Undo this many steps after editing")
	outputPath := flag.String("output", "", "Output path (.pdf saves the document, .png the photo or rendered page)")
	docxPath := flag.String("docx", "", "Also write the document text as a Word file")
	engineName := flag.String("ocr", "", "OCR engine: tesseract, docai or hocr")
	hocrPath := flag.String("hocr", "", "hOCR file for -ocr hocr")
	dpi := flag.Int("dpi", raster.DefaultDPI, "Render resolution for OCR on scanned PDF pages")
	overwrite := flag.Bool("overwrite", false, "Overwrite the output file if it exists")
	flag.Parse()

	if *inputPath == "" {
		fmt.Println("Error: Must provide -input path")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *engineName != "" {
		cfg.Engine = *engineName
	}

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		fmt.Printf("Failed to read input file: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var engine ocr.Engine
	if cfg.Engine != "" {
		engine, err = buildEngine(ctx, cfg, *hocrPath, *page)
		if err != nil {
			fmt.Printf("Failed to set up OCR engine: %v\n", err)
			os.Exit(1)
		}
		defer engine.Close()
	}

	sess := session.New()
	if bytes.HasPrefix(data, []byte("%PDF")) {
		err = sess.OpenPDF(data)
	} else {
		err = sess.OpenPhoto(ctx, data, engine)
	}
	if err != nil {
		fmt.Printf("Failed to open %s: %v\n", *inputPath, err)
		os.Exit(1)
	}
	if sess.Mode() == session.ModePhoto && engine != nil {
		regions, _ := sess.Regions()
		fmt.Printf("Recognized %d text regions\n", len(regions))
	}

	sess.SetStyle(cfg.Style)
	override := styleOverride{family: *fontFlag, size: *sizeFlag}
	if *colorFlag != "" {
		col, err := parseHexColor(*colorFlag)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		override.color = &col
	}

	if err := sess.GoToPage(*page - 1); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if *list {
		if err := listRegions(ctx, sess, engine, cfg, data, *dpi); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *text != "" {
		if err := applyEdit(sess, *selectID, *at, *text, override); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	for i := 0; i < *undoSteps; i++ {
		changed, err := sess.Undo()
		if err != nil {
			fmt.Printf("Undo failed: %v\n", err)
			os.Exit(1)
		}
		if !changed {
			fmt.Println("Nothing left to undo")
			break
		}
	}

	if *outputPath != "" {
		if err := writeOutput(ctx, sess, *outputPath, *dpi, *overwrite); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Saved:", *outputPath)
	}
	if *docxPath != "" {
		if err := writeFile(*docxPath, *overwrite, sess.SaveDOCX); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Saved:", *docxPath)
	}
}

// buildEngine constructs the configured OCR engine.
func buildEngine(ctx context.Context, cfg config, hocrPath string, page int) (ocr.Engine, error) {
	switch cfg.Engine {
	case "tesseract":
		return ocr.NewTesseract(
			ocr.WithLanguage(cfg.Language),
			ocr.WithPageSegMode(cfg.PageSegMode),
		)
	case "docai":
		return ocr.NewDocAI(ctx, cfg.DocAI)
	case "hocr":
		if hocrPath == "" {
			return nil, fmt.Errorf("-ocr hocr needs -hocr with a hOCR file")
		}
		data, err := os.ReadFile(hocrPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read hOCR file: %w", err)
		}
		return ocr.NewHOCRFile(data, page)
	default:
		return nil, fmt.Errorf("unknown OCR engine %q: want tesseract, docai or hocr", cfg.Engine)
	}
}

// listRegions prints the current page's regions. A PDF page without any text
// structure is treated as scanned: it is rasterized and run through the OCR
// engine instead.
func listRegions(ctx context.Context, sess *session.Session, engine ocr.Engine, cfg config, pdfData []byte, dpi int) error {
	regions, err := sess.Regions()
	if err != nil {
		return err
	}
	if len(regions) == 0 && sess.Mode() == session.ModePDF && engine != nil {
		renderer, err := raster.NewPDFToPPM()
		if err != nil {
			return err
		}
		img, err := renderer.RenderPage(ctx, pdfData, sess.CurrentPage(), dpi)
		if err != nil {
			return err
		}
		words, err := engine.Recognize(ctx, img)
		if err != nil {
			return err
		}
		regions = ocr.RegionsFromWords(words, cfg.ConfidenceThreshold)
		fmt.Printf("Page %d has no text structure; showing OCR results at %d dpi\n",
			sess.CurrentPage()+1, dpi)
	}
	if len(regions) == 0 {
		fmt.Println("No text regions found")
		return nil
	}
	for _, r := range regions {
		fmt.Printf("%4d  %5.1f%%  (%.1f, %.1f) %.1fx%.1f  %s\n",
			r.ID, r.Confidence, r.Bounds.X, r.Bounds.Y, r.Bounds.W, r.Bounds.H, r.Text)
	}
	return nil
}

// styleOverride holds style flags applied on top of the selected region's
// own style. Selecting a region adopts its font, so overrides must land
// after the selection is made.
type styleOverride struct {
	family string
	size   float64
	color  *region.RGB
}

func (o styleOverride) apply(sess *session.Session) {
	style := sess.Style()
	if o.family != "" {
		style.Family = o.family
	}
	if o.size > 0 {
		style.Size = o.size
	}
	if o.color != nil {
		style.Color = *o.color
	}
	sess.SetStyle(style)
}

// applyEdit selects a region by ID or point and replaces its text.
func applyEdit(sess *session.Session, selectID int, at, text string, override styleOverride) error {
	switch {
	case at != "":
		var p region.Point
		if _, err := fmt.Sscanf(at, "%f,%f", &p.X, &p.Y); err != nil {
			return fmt.Errorf("invalid -at %q: want \"x,y\"", at)
		}
		if _, ok, err := sess.SelectAt(p); err != nil {
			return err
		} else if !ok {
			return fmt.Errorf("no region at %s", at)
		}
	case selectID >= 0:
		if _, ok, err := sess.SelectByID(selectID); err != nil {
			return err
		} else if !ok {
			return fmt.Errorf("no region with ID %d on this page", selectID)
		}
	default:
		return fmt.Errorf("editing needs -select or -at")
	}

	override.apply(sess)
	out, err := sess.ApplyEdit(text)
	if err != nil {
		return err
	}
	if out.Font.Fallback {
		fmt.Printf("Font %q not available, used %s\n", out.Font.Requested, out.Font.Family)
	}
	fmt.Printf("Replaced region at (%.1f, %.1f) with %q\n", out.Erased.X, out.Erased.Y, text)
	return nil
}

func writeOutput(ctx context.Context, sess *session.Session, path string, dpi int, overwrite bool) error {
	lower := strings.ToLower(path)
	if sess.Mode() == session.ModePhoto {
		if !strings.HasSuffix(lower, ".png") {
			fmt.Println("Warning: photo output usually ends in .png")
		}
		return writeFile(path, overwrite, sess.SavePNG)
	}
	// A .png output on a PDF renders the current page instead of saving the
	// whole document.
	if strings.HasSuffix(lower, ".png") {
		renderer, err := raster.NewPDFToPPM()
		if err != nil {
			return err
		}
		return writeFile(path, overwrite, func(w io.Writer) error {
			return export.PagePNG(ctx, sess.PDF(), sess.CurrentPage(), renderer, dpi, w)
		})
	}
	if !strings.HasSuffix(lower, ".pdf") {
		fmt.Println("Warning: PDF output usually ends in .pdf")
	}
	return writeFile(path, overwrite, sess.SavePDF)
}

func writeFile(path string, overwrite bool, save func(w io.Writer) error) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("output file %s already exists, use -overwrite to overwrite", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
