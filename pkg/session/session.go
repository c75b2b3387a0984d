// Package session holds the editing state around a single open document: the
// current page, the selected region, the active text style, zoom, and the
// undo history. It routes operations to the PDF or photo backend depending on
// what is open.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/skriva/retext/pkg/history"
	"github.com/skriva/retext/pkg/ocr"
	"github.com/skriva/retext/pkg/pdfdoc"
	"github.com/skriva/retext/pkg/photodoc"
	"github.com/skriva/retext/pkg/region"
)

// Mode says which kind of document the session has open.
type Mode int

const (
	ModeNone Mode = iota
	ModePDF
	ModePhoto
)

func (m Mode) String() string {
	switch m {
	case ModePDF:
		return "pdf"
	case ModePhoto:
		return "photo"
	default:
		return "none"
	}
}

// Zoom limits, in percent.
const (
	MinZoom     = 50
	MaxZoom     = 300
	DefaultZoom = 100
	zoomStep    = 10
)

var (
	// ErrNoDocument is returned by operations that need an open document.
	ErrNoDocument = errors.New("no document is open")
	// ErrNoSelection is returned by edits without a selected region.
	ErrNoSelection = errors.New("no region is selected")
	// ErrPhotoRedo is returned when redo is attempted on a photo, whose
	// history only goes backward.
	ErrPhotoRedo = errors.New("redo is not supported for photo documents")
)

// Selection is the region the next edit will replace, remembered together
// with the page it was picked on.
type Selection struct {
	Region region.TextRegion
	Page   int
}

// Session is the editing state around one open document.
type Session struct {
	mode  Mode
	pdf   *pdfdoc.Document
	photo *photodoc.Document

	page      int
	selection *Selection
	style     region.FontStyle
	zoom      int
	hist      *history.Stack
}

// New returns an empty session with the default style and zoom.
func New() *Session {
	return &Session{
		style: region.FontStyle{Family: region.DefaultFamily, Size: 12, Color: region.Black},
		zoom:  DefaultZoom,
		hist:  history.New(),
	}
}

// OpenPDF loads a PDF and makes it the session's document. The freshly
// loaded state is committed to history so the first edit can be undone back
// to it.
func (s *Session) OpenPDF(data []byte) error {
	doc, err := pdfdoc.Load(data)
	if err != nil {
		return err
	}
	s.mode = ModePDF
	s.pdf = doc
	s.photo = nil
	s.page = 0
	s.selection = nil
	s.hist.Reset()
	return s.commitPDF()
}

// OpenPhoto loads an image document and, when an OCR engine is given, runs
// recognition so the photo opens with its regions already found.
func (s *Session) OpenPhoto(ctx context.Context, data []byte, engine ocr.Engine) error {
	doc, err := photodoc.Load(data)
	if err != nil {
		return err
	}
	if engine != nil {
		if err := doc.Recognize(ctx, engine, ocr.DefaultConfidenceThreshold); err != nil {
			return err
		}
	}
	s.mode = ModePhoto
	s.photo = doc
	s.pdf = nil
	s.page = 0
	s.selection = nil
	s.hist.Reset()
	return nil
}

// Mode reports what kind of document is open.
func (s *Session) Mode() Mode { return s.mode }

// PDF returns the open PDF document, if any.
func (s *Session) PDF() *pdfdoc.Document { return s.pdf }

// Photo returns the open photo document, if any.
func (s *Session) Photo() *photodoc.Document { return s.photo }

// CurrentPage returns the 0-based page index. Photos are a single page 0.
func (s *Session) CurrentPage() int { return s.page }

// PageCount returns the number of pages in the open document.
func (s *Session) PageCount() int {
	switch s.mode {
	case ModePDF:
		return s.pdf.PageCount()
	case ModePhoto:
		return 1
	default:
		return 0
	}
}

// Regions returns the current page's text regions.
func (s *Session) Regions() ([]region.TextRegion, error) {
	switch s.mode {
	case ModePDF:
		return s.pdf.Regions(s.page)
	case ModePhoto:
		return s.photo.Regions(), nil
	default:
		return nil, ErrNoDocument
	}
}

// SelectAt hit-tests the current page and remembers the first region under
// the point. A miss clears the selection.
func (s *Session) SelectAt(p region.Point) (region.TextRegion, bool, error) {
	regions, err := s.Regions()
	if err != nil {
		return region.TextRegion{}, false, err
	}
	r, ok := region.HitTest(regions, p)
	if !ok {
		s.selection = nil
		return region.TextRegion{}, false, nil
	}
	s.selection = &Selection{Region: r, Page: s.page}
	// Picking up a region adopts its style as the active one.
	s.style = r.Font
	return r, true, nil
}

// SelectByID selects a region on the current page by its stable ID. An
// unknown ID clears the selection.
func (s *Session) SelectByID(id int) (region.TextRegion, bool, error) {
	regions, err := s.Regions()
	if err != nil {
		return region.TextRegion{}, false, err
	}
	r, ok := region.FindByID(regions, id)
	if !ok {
		s.selection = nil
		return region.TextRegion{}, false, nil
	}
	s.selection = &Selection{Region: r, Page: s.page}
	s.style = r.Font
	return r, true, nil
}

// Selection returns the current selection, if any.
func (s *Session) Selection() (Selection, bool) {
	if s.selection == nil {
		return Selection{}, false
	}
	return *s.selection, true
}

// ClearSelection drops the current selection.
func (s *Session) ClearSelection() { s.selection = nil }

// Style returns the active text style.
func (s *Session) Style() region.FontStyle { return s.style }

// SetStyle replaces the active text style. Non-positive sizes keep the
// previous size.
func (s *Session) SetStyle(style region.FontStyle) {
	if style.Size <= 0 {
		style.Size = s.style.Size
	}
	if strings.TrimSpace(style.Family) == "" {
		style.Family = s.style.Family
	}
	s.style = style
}

// Zoom returns the zoom percentage.
func (s *Session) Zoom() int { return s.zoom }

// SetZoom sets the zoom percentage, clamped to [MinZoom, MaxZoom].
func (s *Session) SetZoom(pct int) int {
	if pct < MinZoom {
		pct = MinZoom
	}
	if pct > MaxZoom {
		pct = MaxZoom
	}
	s.zoom = pct
	return s.zoom
}

// ZoomIn steps the zoom up.
func (s *Session) ZoomIn() int { return s.SetZoom(s.zoom + zoomStep) }

// ZoomOut steps the zoom down.
func (s *Session) ZoomOut() int { return s.SetZoom(s.zoom - zoomStep) }

// NextPage moves to the next page and clears the selection.
func (s *Session) NextPage() error { return s.GoToPage(s.page + 1) }

// PrevPage moves to the previous page and clears the selection.
func (s *Session) PrevPage() error { return s.GoToPage(s.page - 1) }

// GoToPage jumps to a 0-based page and clears the selection.
func (s *Session) GoToPage(page int) error {
	if s.mode == ModeNone {
		return ErrNoDocument
	}
	if page < 0 || page >= s.PageCount() {
		return fmt.Errorf("page %d out of range [0,%d)", page, s.PageCount())
	}
	s.page = page
	s.selection = nil
	return nil
}

func (s *Session) commitPDF() error {
	data, err := s.pdf.Snapshot()
	if err != nil {
		return err
	}
	s.hist.Commit(history.Snapshot{PageIndex: s.page, Data: data})
	return nil
}
