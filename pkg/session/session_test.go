package session

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"testing"

	"codeberg.org/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skriva/retext/pkg/ocr"
	"github.com/skriva/retext/pkg/region"
)

// helloPDF builds a PDF whose first page says "Hello" and, when twoPages is
// set, a second page saying "World".
func helloPDF(t *testing.T, twoPages bool) []byte {
	t.Helper()
	f := fpdf.New("P", "pt", "", "")
	f.AddPageFormat("P", fpdf.SizeType{Wd: 612, Ht: 792})
	f.SetFont("Helvetica", "", 12)
	f.Text(72, 100, "Hello")
	if twoPages {
		f.AddPageFormat("P", fpdf.SizeType{Wd: 612, Ht: 792})
		f.SetFont("Helvetica", "", 12)
		f.Text(72, 100, "World")
	}
	var buf bytes.Buffer
	require.NoError(t, f.Output(&buf))
	return buf.Bytes()
}

type stubEngine struct{ words []ocr.Word }

func (s *stubEngine) Recognize(context.Context, []byte) ([]ocr.Word, error) {
	return s.words, nil
}

func (s *stubEngine) Close() error { return nil }

func photoBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func openPhotoSession(t *testing.T) *Session {
	t.Helper()
	s := New()
	engine := &stubEngine{words: []ocr.Word{
		{Text: "old", Bounds: region.Rect{X: 20, Y: 20, W: 40, H: 16}, Confidence: 90},
	}}
	require.NoError(t, s.OpenPhoto(context.Background(), photoBytes(t), engine))
	return s
}

func selectFirst(t *testing.T, s *Session) region.TextRegion {
	t.Helper()
	regions, err := s.Regions()
	require.NoError(t, err)
	require.NotEmpty(t, regions)
	r, ok, err := s.SelectAt(region.Point{
		X: regions[0].Bounds.X + 1,
		Y: regions[0].Bounds.Y + 1,
	})
	require.NoError(t, err)
	require.True(t, ok)
	return r
}

func pageTexts(t *testing.T, s *Session) []string {
	t.Helper()
	regions, err := s.Regions()
	require.NoError(t, err)
	var out []string
	for _, r := range regions {
		out = append(out, r.Text)
	}
	return out
}

func TestEditRequiresDocumentAndSelection(t *testing.T) {
	s := New()
	_, err := s.ApplyEdit("x")
	assert.ErrorIs(t, err, ErrNoDocument)

	require.NoError(t, s.OpenPDF(helloPDF(t, false)))
	_, err = s.ApplyEdit("x")
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestEmptyTextIsNoOp(t *testing.T) {
	s := New()
	require.NoError(t, s.OpenPDF(helloPDF(t, false)))
	selectFirst(t, s)

	out, err := s.ApplyEdit("   ")
	require.NoError(t, err)
	assert.True(t, out.NoOp)
	assert.Equal(t, []string{"Hello"}, pageTexts(t, s))
	_, ok := s.Selection()
	assert.True(t, ok, "a no-op keeps the selection")
}

func TestPDFEditUndoRedo(t *testing.T) {
	s := New()
	require.NoError(t, s.OpenPDF(helloPDF(t, false)))
	sel := selectFirst(t, s)
	assert.Equal(t, "Hello", sel.Text)

	out, err := s.ApplyEdit("Goodbye")
	require.NoError(t, err)
	assert.False(t, out.NoOp)
	assert.Equal(t, "Goodbye", out.Inserted.Text)
	assert.Equal(t, []string{"Goodbye"}, pageTexts(t, s))
	_, ok := s.Selection()
	assert.False(t, ok, "an applied edit clears the selection")

	changed, err := s.Undo()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"Hello"}, pageTexts(t, s))

	changed, err = s.Undo()
	require.NoError(t, err)
	assert.False(t, changed, "undo at the initial state is a no-op")

	changed, err = s.Redo()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"Goodbye"}, pageTexts(t, s))

	changed, err = s.Redo()
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestEditAfterUndoDropsRedoFuture(t *testing.T) {
	s := New()
	require.NoError(t, s.OpenPDF(helloPDF(t, false)))
	selectFirst(t, s)
	_, err := s.ApplyEdit("Goodbye")
	require.NoError(t, err)

	_, err = s.Undo()
	require.NoError(t, err)

	selectFirst(t, s)
	_, err = s.ApplyEdit("Farewell")
	require.NoError(t, err)

	changed, err := s.Redo()
	require.NoError(t, err)
	assert.False(t, changed, "committing after undo discards the redo branch")
	assert.Equal(t, []string{"Farewell"}, pageTexts(t, s))
}

func TestSelectionAdoptsRegionStyle(t *testing.T) {
	s := New()
	require.NoError(t, s.OpenPDF(helloPDF(t, false)))
	sel := selectFirst(t, s)
	assert.Equal(t, sel.Font, s.Style())
}

func TestSelectByID(t *testing.T) {
	s := New()
	require.NoError(t, s.OpenPDF(helloPDF(t, false)))
	regions, err := s.Regions()
	require.NoError(t, err)

	r, ok, err := s.SelectByID(regions[0].ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Hello", r.Text)

	_, ok, err = s.SelectByID(999)
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok = s.Selection()
	assert.False(t, ok, "an unknown ID clears the selection")
}

func TestSelectAtMissClearsSelection(t *testing.T) {
	s := New()
	require.NoError(t, s.OpenPDF(helloPDF(t, false)))
	selectFirst(t, s)

	_, ok, err := s.SelectAt(region.Point{X: 500, Y: 700})
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok = s.Selection()
	assert.False(t, ok)
}

func TestPageNavigationClearsSelection(t *testing.T) {
	s := New()
	require.NoError(t, s.OpenPDF(helloPDF(t, true)))
	require.Equal(t, 2, s.PageCount())
	selectFirst(t, s)

	require.NoError(t, s.NextPage())
	assert.Equal(t, 1, s.CurrentPage())
	_, ok := s.Selection()
	assert.False(t, ok)
	assert.Equal(t, []string{"World"}, pageTexts(t, s))

	require.NoError(t, s.PrevPage())
	assert.Equal(t, 0, s.CurrentPage())

	assert.Error(t, s.PrevPage())
	assert.Error(t, s.GoToPage(2))
}

func TestZoomClamps(t *testing.T) {
	s := New()
	assert.Equal(t, DefaultZoom, s.Zoom())
	assert.Equal(t, MaxZoom, s.SetZoom(1000))
	assert.Equal(t, MinZoom, s.SetZoom(10))
	s.SetZoom(MaxZoom)
	assert.Equal(t, MaxZoom, s.ZoomIn())
	s.SetZoom(MinZoom)
	assert.Equal(t, MinZoom, s.ZoomOut())
	s.SetZoom(100)
	assert.Equal(t, 110, s.ZoomIn())
	assert.Equal(t, 100, s.ZoomOut())
}

func TestPhotoEditAndUndo(t *testing.T) {
	s := openPhotoSession(t)
	assert.Equal(t, ModePhoto, s.Mode())
	assert.Equal(t, 1, s.PageCount())

	selectFirst(t, s)
	out, err := s.ApplyEdit("new")
	require.NoError(t, err)
	assert.Equal(t, "new", out.Inserted.Text)
	// Photo edits change pixels, not the recognized region list.
	assert.Equal(t, []string{"old"}, pageTexts(t, s))
	_, ok := s.Selection()
	assert.False(t, ok, "applying an edit clears the selection")

	changed, err := s.Undo()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"old"}, pageTexts(t, s))

	changed, err = s.Undo()
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = s.Redo()
	assert.ErrorIs(t, err, ErrPhotoRedo)
}

func TestSaveRouting(t *testing.T) {
	s := New()
	var buf bytes.Buffer
	assert.ErrorIs(t, s.SavePDF(&buf), ErrNoDocument)
	assert.ErrorIs(t, s.SaveDOCX(&buf), ErrNoDocument)
	assert.ErrorIs(t, s.SavePNG(&buf), ErrNoDocument)

	require.NoError(t, s.OpenPDF(helloPDF(t, false)))
	require.NoError(t, s.SavePDF(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Error(t, s.SavePNG(&buf))

	p := openPhotoSession(t)
	buf.Reset()
	require.NoError(t, p.SavePNG(&buf))
	assert.Error(t, p.SavePDF(&buf))
	buf.Reset()
	require.NoError(t, p.SaveDOCX(&buf))
	assert.NotZero(t, buf.Len())
}
