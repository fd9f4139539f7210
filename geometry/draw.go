package geometry

import (
	"io"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

const drawPadding = 20

// Draw renders the filled polygon to a PNG at path, with the centroid marked
// when it exists. scale is pixels per coordinate unit. If out is non-nil the
// image is also catted to it, for terminals that support inline images.
func (poly *Polygon) Draw(path string, scale float64, out io.Writer) error {
	min, max := poly.Bounds()

	width := int(scale*(max.X-min.X)) + drawPadding*2
	height := int(scale*(max.Y-min.Y)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-min.X, -min.Y)

	c.SetLineWidth(2)
	c.MoveTo(poly.vertices[0].X, poly.vertices[0].Y)
	for _, p := range poly.vertices[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	if centroid, err := poly.Centroid(); err == nil {
		c.SetRGB(1, 0, 0)
		c.DrawCircle(centroid.X, centroid.Y, 3/scale)
		c.Fill()
	}

	if err := c.SavePNG(path); err != nil {
		return err
	}
	if out != nil {
		imgcat.CatFile(path, out)
	}
	return nil
}
