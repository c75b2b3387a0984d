package hocr

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"
)

// Parse converts raw hOCR data into a Document. Input declared with a
// non-UTF-8 charset in its meta tags is decoded as ISO-8859-1 first, which
// covers the legacy encodings Tesseract emits.
func Parse(data []byte) (Document, error) {
	doc := Document{Metadata: make(map[string]string)}

	decoded := data
	if enc := sniffCharset(string(data)); enc != "" && enc != "utf-8" {
		converted, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return doc, fmt.Errorf("failed to decode %s hOCR: %w", enc, err)
		}
		decoded = converted
	}

	root, err := html.Parse(strings.NewReader(string(decoded)))
	if err != nil {
		return doc, fmt.Errorf("failed to parse hOCR HTML: %w", err)
	}

	parseHead(&doc, root)

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "ocr_page") {
			doc.Pages = append(doc.Pages, parsePage(n, len(doc.Pages)+1))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	if len(doc.Pages) == 0 {
		return doc, fmt.Errorf("no ocr_page elements found in hOCR data")
	}
	return doc, nil
}

// sniffCharset pulls the charset name out of a meta tag, if any.
func sniffCharset(content string) string {
	idx := strings.Index(content, "charset=")
	if idx < 0 {
		return ""
	}
	rest := content[idx+len("charset="):]
	fields := strings.FieldsFunc(rest, func(r rune) bool {
		return r == '"' || r == '\'' || r == ';' || r == '>' || r == ' '
	})
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

func parseHead(doc *Document, root *html.Node) {
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
					doc.Title = strings.TrimSpace(n.FirstChild.Data)
				}
			case "meta":
				name, content := attr(n, "name"), attr(n, "content")
				if name != "" && content != "" {
					doc.Metadata[name] = content
				}
			case "body":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
}

func parsePage(n *html.Node, number int) Page {
	page := Page{
		ID:         attr(n, "id"),
		PageNumber: number,
	}
	if bbox, ok := boundingBoxFromTitle(attr(n, "title")); ok {
		page.BBox = bbox
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case hasClass(n, "ocr_line"), hasClass(n, "ocr_header"), hasClass(n, "ocr_caption"):
				page.Lines = append(page.Lines, parseLine(n))
				return
			case hasClass(n, "ocrx_word"):
				// Word without an enclosing line.
				page.Words = append(page.Words, parseWord(n))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return page
}

func parseLine(n *html.Node) Line {
	line := Line{ID: attr(n, "id")}
	if bbox, ok := boundingBoxFromTitle(attr(n, "title")); ok {
		line.BBox = bbox
	}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "ocrx_word") {
			line.Words = append(line.Words, parseWord(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return line
}

func parseWord(n *html.Node) Word {
	word := Word{
		ID:   attr(n, "id"),
		Text: strings.TrimSpace(textContent(n)),
	}
	title := attr(n, "title")
	if bbox, ok := boundingBoxFromTitle(title); ok {
		word.BBox = bbox
	}
	props := ParseTitle(title)
	if conf, ok := props["x_wconf"]; ok && len(conf) > 0 {
		word.Confidence, _ = strconv.ParseFloat(conf[0], 64)
	}
	return word
}

// ParseTitle breaks an hOCR title attribute into its properties.
// Example input: "bbox 100 200 300 400; x_wconf 95".
func ParseTitle(title string) map[string][]string {
	props := make(map[string][]string)
	for _, part := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) > 0 {
			props[fields[0]] = fields[1:]
		}
	}
	return props
}

func boundingBoxFromTitle(title string) (BoundingBox, bool) {
	props := ParseTitle(title)
	bbox, ok := props["bbox"]
	if !ok || len(bbox) < 4 {
		return BoundingBox{}, false
	}
	x1, _ := strconv.ParseFloat(bbox[0], 64)
	y1, _ := strconv.ParseFloat(bbox[1], 64)
	x2, _ := strconv.ParseFloat(bbox[2], 64)
	y2, _ := strconv.ParseFloat(bbox[3], 64)
	return BoundingBox{X1: x1, Y1: y1, X2: x2, Y2: y2}, true
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" && strings.Contains(a.Val, class) {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
