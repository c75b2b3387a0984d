package ocr

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	documentai "cloud.google.com/go/documentai/apiv1"
	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"google.golang.org/api/option"

	"github.com/skriva/retext/pkg/region"
)

// DocAIConfig identifies the Document AI processor to use. Authentication
// comes from GOOGLE_APPLICATION_CREDENTIALS or other ambient Google Cloud
// credentials.
type DocAIConfig struct {
	ProjectID   string
	Location    string
	ProcessorID string
}

// DocAI recognizes text with a Google Document AI OCR processor.
type DocAI struct {
	client *documentai.DocumentProcessorClient
	name   string
}

// NewDocAI creates a Document AI backed engine against the regional endpoint
// for cfg.Location.
func NewDocAI(ctx context.Context, cfg DocAIConfig, opts ...option.ClientOption) (*DocAI, error) {
	if cfg.ProjectID == "" || cfg.Location == "" || cfg.ProcessorID == "" {
		return nil, fmt.Errorf("document AI config requires project_id, location and processor_id")
	}
	endpoint := fmt.Sprintf("%s-documentai.googleapis.com:443", cfg.Location)
	opts = append([]option.ClientOption{option.WithEndpoint(endpoint)}, opts...)
	client, err := documentai.NewDocumentProcessorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Document AI client: %w", err)
	}
	return &DocAI{
		client: client,
		name: fmt.Sprintf("projects/%s/locations/%s/processors/%s",
			cfg.ProjectID, cfg.Location, cfg.ProcessorID),
	}, nil
}

// Recognize processes the image and maps every token to a word. Document AI
// reports normalized (0-1) vertices, which are scaled by the page dimension
// to pixels; token confidence is scaled from 0-1 to the 0-100 range.
func (d *DocAI) Recognize(ctx context.Context, image []byte) ([]Word, error) {
	req := &documentaipb.ProcessRequest{
		Name: d.name,
		Source: &documentaipb.ProcessRequest_RawDocument{
			RawDocument: &documentaipb.RawDocument{
				Content:  image,
				MimeType: detectMimeType(image),
			},
		},
		SkipHumanReview: true,
	}
	resp, err := d.client.ProcessDocument(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to process document: %w", err)
	}

	doc := resp.GetDocument()
	var words []Word
	for _, page := range doc.GetPages() {
		dim := page.GetDimension()
		for _, token := range page.GetTokens() {
			layout := token.GetLayout()
			text := textFromLayout(layout, doc.GetText())
			bounds, ok := boundsFromLayout(layout, dim)
			if !ok {
				continue
			}
			words = append(words, Word{
				Text:       text,
				Bounds:     bounds,
				Confidence: float64(layout.GetConfidence()) * 100,
			})
		}
	}
	return words, nil
}

// Close releases the underlying gRPC client.
func (d *DocAI) Close() error {
	return d.client.Close()
}

// textFromLayout joins the layout's text anchor segments of the document's
// full text.
func textFromLayout(layout *documentaipb.Document_Page_Layout, fullText string) string {
	if layout.GetTextAnchor() == nil {
		return ""
	}
	runes := []rune(fullText)
	var b strings.Builder
	for _, seg := range layout.GetTextAnchor().GetTextSegments() {
		start, end := int(seg.GetStartIndex()), int(seg.GetEndIndex())
		if start < 0 {
			start = 0
		}
		if end > len(runes) {
			end = len(runes)
		}
		if start > end {
			start = end
		}
		b.WriteString(string(runes[start:end]))
	}
	return b.String()
}

// boundsFromLayout scales the layout's normalized bounding polygon to pixel
// coordinates. Vertex 0 is the top-left corner and vertex 2 the bottom-right.
func boundsFromLayout(layout *documentaipb.Document_Page_Layout, dim *documentaipb.Document_Page_Dimension) (region.Rect, bool) {
	poly := layout.GetBoundingPoly()
	if poly == nil || dim == nil || len(poly.GetNormalizedVertices()) < 4 {
		return region.Rect{}, false
	}
	v := poly.GetNormalizedVertices()
	x1 := float64(v[0].GetX()) * float64(dim.GetWidth())
	y1 := float64(v[0].GetY()) * float64(dim.GetHeight())
	x2 := float64(v[2].GetX()) * float64(dim.GetWidth())
	y2 := float64(v[2].GetY()) * float64(dim.GetHeight())
	return region.Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}, true
}

func detectMimeType(image []byte) string {
	mime := http.DetectContentType(image)
	if !strings.HasPrefix(mime, "image/") {
		return "image/png"
	}
	return mime
}
