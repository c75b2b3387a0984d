package hocr

import "strings"

// AllWords returns every word on the page in reading order, flattening the
// line structure. Words that sit directly under the page follow the lines.
func (p Page) AllWords() []Word {
	var out []Word
	for _, line := range p.Lines {
		out = append(out, line.Words...)
	}
	out = append(out, p.Words...)
	return out
}

// Text joins the document's words into plain text, one line per hOCR line
// and a blank line between pages.
func (d Document) Text() string {
	var b strings.Builder
	for i, page := range d.Pages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		for _, line := range page.Lines {
			for j, word := range line.Words {
				if j > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(word.Text)
			}
			b.WriteByte('\n')
		}
		for _, word := range page.Words {
			b.WriteString(word.Text)
			b.WriteByte('\n')
		}
	}
	return b.String()
}
