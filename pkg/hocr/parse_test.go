package hocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHOCR = `<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml">
 <head>
  <title>receipt.png</title>
  <meta http-equiv="Content-Type" content="text/html;charset=utf-8"/>
  <meta name="ocr-system" content="tesseract 5.3.0"/>
 </head>
 <body>
  <div class="ocr_page" id="page_1" title="image &quot;receipt.png&quot;; bbox 0 0 640 480; ppageno 0">
   <div class="ocr_carea" id="block_1_1" title="bbox 10 10 600 60">
    <p class="ocr_par" id="par_1_1" title="bbox 10 10 600 60">
     <span class="ocr_line" id="line_1_1" title="bbox 10 10 300 40; baseline 0 -4">
      <span class="ocrx_word" id="word_1_1" title="bbox 10 10 120 40; x_wconf 96">TOTAL</span>
      <span class="ocrx_word" id="word_1_2" title="bbox 140 10 300 40; x_wconf 91">19.90</span>
     </span>
     <span class="ocr_line" id="line_1_2" title="bbox 10 50 200 80">
      <span class="ocrx_word" id="word_1_3" title="bbox 10 50 90 80; x_wconf 22">smudge</span>
      <span class="ocrx_word" id="word_1_4" title="bbox 100 50 200 80; x_wconf 88">THANKS</span>
     </span>
    </p>
   </div>
  </div>
 </body>
</html>`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sampleHOCR))
	require.NoError(t, err)

	assert.Equal(t, "receipt.png", doc.Title)
	assert.Equal(t, "tesseract 5.3.0", doc.Metadata["ocr-system"])
	require.Len(t, doc.Pages, 1)

	page := doc.Pages[0]
	assert.Equal(t, 1, page.PageNumber)
	assert.Equal(t, BoundingBox{0, 0, 640, 480}, page.BBox)
	require.Len(t, page.Lines, 2)

	first := page.Lines[0]
	require.Len(t, first.Words, 2)
	assert.Equal(t, "TOTAL", first.Words[0].Text)
	assert.Equal(t, BoundingBox{10, 10, 120, 40}, first.Words[0].BBox)
	assert.InDelta(t, 96, first.Words[0].Confidence, 0.001)

	words := page.AllWords()
	require.Len(t, words, 4)
	assert.Equal(t, "smudge", words[2].Text)
	assert.InDelta(t, 22, words[2].Confidence, 0.001)
}

func TestParseNoPages(t *testing.T) {
	_, err := Parse([]byte("<html><body><p>plain html</p></body></html>"))
	assert.Error(t, err)
}

func TestParseTitle(t *testing.T) {
	props := ParseTitle("bbox 100 200 300 400; x_wconf 95")
	assert.Equal(t, []string{"100", "200", "300", "400"}, props["bbox"])
	assert.Equal(t, []string{"95"}, props["x_wconf"])
}

func TestBoundingBoxDimensions(t *testing.T) {
	b := BoundingBox{X1: 10, Y1: 20, X2: 110, Y2: 60}
	assert.Equal(t, 100.0, b.Width())
	assert.Equal(t, 40.0, b.Height())
}

func TestDocumentText(t *testing.T) {
	doc, err := Parse([]byte(sampleHOCR))
	require.NoError(t, err)
	assert.Equal(t, "TOTAL 19.90\nsmudge THANKS\n", doc.Text())
}
