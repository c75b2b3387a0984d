package photodoc

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/skriva/retext/pkg/region"
)

var (
	overlayColor   = color.RGBA{R: 0, G: 170, B: 0, A: 255}
	selectionColor = color.RGBA{R: 220, G: 30, B: 30, A: 255}
)

// RenderOverlay returns a copy of the working image with each region's
// bounding box outlined. The region with the selected ID, if any, is drawn
// in the selection color; pass a negative ID for no selection.
func (d *Document) RenderOverlay(selectedID int) image.Image {
	out := cloneRGBA(d.img)
	for _, r := range d.regions {
		col := overlayColor
		if r.ID == selectedID {
			col = selectionColor
		}
		strokeRect(out, r.Bounds, col)
	}
	return out
}

// strokeRect draws a 2-pixel rectangle outline clipped to the image.
func strokeRect(img *image.RGBA, r region.Rect, col color.RGBA) {
	outer := image.Rect(int(r.X), int(r.Y), int(r.Right()), int(r.Bottom()))
	src := image.NewUniform(col)
	edges := []image.Rectangle{
		image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, outer.Min.Y+2),
		image.Rect(outer.Min.X, outer.Max.Y-2, outer.Max.X, outer.Max.Y),
		image.Rect(outer.Min.X, outer.Min.Y, outer.Min.X+2, outer.Max.Y),
		image.Rect(outer.Max.X-2, outer.Min.Y, outer.Max.X, outer.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(img, e.Intersect(img.Bounds()), src, image.Point{}, draw.Src)
	}
}
