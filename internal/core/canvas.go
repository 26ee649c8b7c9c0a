package core

import (
	"image"
	"math"
)

// BlockRune is the glyph used for filled shapes.
const BlockRune = '█'

// CellCanvas draws shapes given in logical layout pixels onto a Screen.
// Each terminal cell covers CellW x CellH logical pixels; a cell is painted
// when its center lies inside the shape. Callers never see cells, the same
// way a browser canvas hides device pixel ratio behind CSS pixels.
type CellCanvas struct {
	screen *Screen
	cellW  float64
	cellH  float64
}

// NewCellCanvas wraps a screen. Non-positive cell sizes fall back to 1.
func NewCellCanvas(s *Screen, cellW, cellH float64) *CellCanvas {
	if !(cellW > 0) {
		cellW = 1
	}
	if !(cellH > 0) {
		cellH = 1
	}
	return &CellCanvas{screen: s, cellW: cellW, cellH: cellH}
}

// LogicalSize returns the logical size of a cols x rows cell grid.
func LogicalSize(cols, rows int, cellW, cellH float64) (w, h float64) {
	return float64(Max(cols, 0)) * cellW, float64(Max(rows, 0)) * cellH
}

// Screen returns the underlying cell buffer.
func (c *CellCanvas) Screen() *Screen {
	return c.screen
}

// LogicalSize returns the logical size of the whole screen.
func (c *CellCanvas) LogicalSize() (w, h float64) {
	return LogicalSize(c.screen.Width(), c.screen.Height(), c.cellW, c.cellH)
}

// Clear blanks every cell whose center lies in [0,w) x [0,h).
func (c *CellCanvas) Clear(w, h float64) {
	c.each(NewRect(0, 0, w, h), func(col, row int, _, _ float64) {
		c.screen.SetCell(col, row, blankCell)
	})
}

// FillRect paints a filled rectangle. A non-empty rectangle smaller than a
// cell still paints the cell holding its center so small details stay visible.
func (c *CellCanvas) FillRect(x, y, w, h float64, color Color) {
	r := NewRect(x, y, w, h)
	if !valid(r) {
		return
	}
	painted := false
	c.each(r, func(col, row int, _, _ float64) {
		c.screen.SetCell(col, row, Cell{Rune: BlockRune, Color: color})
		painted = true
	})
	if !painted {
		cx, cy := r.Center()
		c.screen.SetCell(int(math.Floor(cx/c.cellW)), int(math.Floor(cy/c.cellH)), Cell{Rune: BlockRune, Color: color})
	}
}

// FillEllipse paints a filled axis-aligned ellipse centered at (cx, cy).
func (c *CellCanvas) FillEllipse(cx, cy, rx, ry float64, color Color) {
	bounds := NewRect(cx-rx, cy-ry, 2*rx, 2*ry)
	if !valid(bounds) {
		return
	}
	c.each(bounds, func(col, row int, px, py float64) {
		dx := (px - cx) / rx
		dy := (py - cy) / ry
		if dx*dx+dy*dy <= 1 {
			c.screen.SetCell(col, row, Cell{Rune: BlockRune, Color: color})
		}
	})
}

// DrawImage scales img into the rectangle (x, y, w, h). Each covered cell
// samples the pixel under its center; mostly transparent samples are skipped.
func (c *CellCanvas) DrawImage(img image.Image, x, y, w, h float64) {
	dst := NewRect(x, y, w, h)
	if img == nil || !valid(dst) {
		return
	}
	b := img.Bounds()
	if b.Empty() {
		return
	}
	c.each(dst, func(col, row int, px, py float64) {
		sx := b.Min.X + int((px-x)/w*float64(b.Dx()))
		sy := b.Min.Y + int((py-y)/h*float64(b.Dy()))
		sx = Clamp(sx, b.Min.X, b.Max.X-1)
		sy = Clamp(sy, b.Min.Y, b.Max.Y-1)

		r, g, bl, a := img.At(sx, sy).RGBA()
		if a < 0x8000 {
			return
		}
		// RGBA is alpha-premultiplied
		r = r * 0xffff / a
		g = g * 0xffff / a
		bl = bl * 0xffff / a
		c.screen.SetCell(col, row, Cell{
			Rune:  BlockRune,
			Color: RGB(uint8(r>>8), uint8(g>>8), uint8(bl>>8)),
		})
	})
}

// FillText writes text horizontally centered at cx on the row holding y.
func (c *CellCanvas) FillText(cx, y float64, text string, color Color) {
	if !finite(cx) || !finite(y) {
		return
	}
	n := len([]rune(text))
	col := int(math.Round(cx/c.cellW)) - n/2
	row := int(math.Floor(y / c.cellH))
	c.screen.DrawText(col, row, text, color)
}

// Shade dims the region by recoloring every non-blank cell gray.
func (c *CellCanvas) Shade(x, y, w, h float64) {
	c.each(NewRect(x, y, w, h), func(col, row int, _, _ float64) {
		cell := c.screen.GetCell(col, row)
		if cell.Rune == ' ' {
			return
		}
		cell.Color = ColorGray
		c.screen.SetCell(col, row, cell)
	})
}

// each calls fn for every on-screen cell whose center lies inside r,
// passing the cell center in logical pixels.
func (c *CellCanvas) each(r Rect, fn func(col, row int, px, py float64)) {
	if !valid(r) {
		return
	}
	c0, c1 := span(r.X, r.Right(), c.cellW, c.screen.Width())
	r0, r1 := span(r.Y, r.Bottom(), c.cellH, c.screen.Height())

	for row := r0; row < r1; row++ {
		py := (float64(row) + 0.5) * c.cellH
		for col := c0; col < c1; col++ {
			px := (float64(col) + 0.5) * c.cellW
			fn(col, row, px, py)
		}
	}
}

// span returns the half-open index range of cells whose centers fall in
// [lo, hi), clipped to [0, limit).
func span(lo, hi, size float64, limit int) (int, int) {
	first := ClampF(math.Ceil(lo/size-0.5), 0, float64(limit))
	last := ClampF(math.Ceil(hi/size-0.5), 0, float64(limit))
	return int(first), int(last)
}

func valid(r Rect) bool {
	return !r.Empty() && finite(r.X) && finite(r.Y) && finite(r.W) && finite(r.H)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
