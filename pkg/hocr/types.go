// Package hocr parses hOCR documents, the de-facto standard HTML format OCR
// engines use to report recognized text with positions. Only the parts needed
// to recover word-level regions are modeled: pages, lines and words with their
// pixel bounding boxes and confidences.
package hocr

// Document is a parsed hOCR file.
type Document struct {
	Title    string            // Document title from the head section
	Metadata map[string]string // Meta tags (ocr-system, ocr-capabilities, ...)
	Pages    []Page            // Pages in document order
}

// Page is one recognized page.
// Corresponds to an hOCR element with class 'ocr_page'.
type Page struct {
	ID         string      // Unique identifier
	PageNumber int         // 1-based page number
	BBox       BoundingBox // Page extent in pixels
	Lines      []Line      // Text lines in document order
	Words      []Word      // Words with no line parent (rare)
}

// Line is a line of recognized words.
// Corresponds to an hOCR element with class 'ocr_line' or 'ocr_header'.
type Line struct {
	ID    string      // Unique identifier
	BBox  BoundingBox // Line extent in pixels
	Words []Word      // Words in reading order
}

// Word is a recognized token with its position and confidence.
// Corresponds to an hOCR element with class 'ocrx_word'.
type Word struct {
	ID         string      // Unique identifier
	Text       string      // Recognized text
	BBox       BoundingBox // Word extent in pixels
	Confidence float64     // x_wconf value on a 0-100 scale
}

// BoundingBox is a rectangle in hOCR coordinates: x1,y1 is the top-left
// corner, x2,y2 the bottom-right corner, both in pixels.
type BoundingBox struct {
	X1, Y1, X2, Y2 float64
}

// Width returns the horizontal extent of the box.
func (b BoundingBox) Width() float64 { return b.X2 - b.X1 }

// Height returns the vertical extent of the box.
func (b BoundingBox) Height() float64 { return b.Y2 - b.Y1 }
