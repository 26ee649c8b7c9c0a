package game

import (
	"fmt"
	"image"

	"github.com/vovakirdan/gatefall/internal/core"
)

// Surface is the drawing target of Render. Coordinates are logical layout
// pixels; the surface owns any mapping to physical pixels or cells.
type Surface interface {
	Clear(w, h float64)
	FillRect(x, y, w, h float64, c core.Color)
	FillEllipse(cx, cy, rx, ry float64, c core.Color)
	DrawImage(img image.Image, x, y, w, h float64)
	FillText(cx, y float64, text string, c core.Color)
	Shade(x, y, w, h float64)
}

// Asset is the actor image. It may never become ready.
type Asset interface {
	Ready() bool
	Image() image.Image
}

// Colors used by Render.
const (
	GateColor     = core.ColorBrightGreen
	ActorColor    = core.ColorBrightYellow
	EyeColor      = core.ColorBlack
	CaptionColor  = core.ColorBrightWhite
	GameOverTitle = "You lost! Try again."
)

// Render paints the session. It only reads s.
// The asset is checked on every call so a late load shows up on the next frame.
func Render(dst Surface, s *Session, art Asset) {
	w, h := s.Field.W, s.Field.H
	dst.Clear(w, h)

	for _, g := range s.Gates {
		if top := g.TopRect(); !top.Empty() {
			dst.FillRect(top.X, top.Y, top.W, top.H, GateColor)
		}
		if bottom := g.BottomRect(h); !bottom.Empty() {
			dst.FillRect(bottom.X, bottom.Y, bottom.W, bottom.H, GateColor)
		}
	}

	drawActor(dst, s.Actor, art)

	if s.Over {
		dst.Shade(0, 0, w, h)
		dst.FillText(w/2, h/2-10, GameOverTitle, CaptionColor)
		dst.FillText(w/2, h/2+22, fmt.Sprintf("Score: %d", s.Score), CaptionColor)
	}
}

func drawActor(dst Surface, a Actor, art Asset) {
	if art != nil && art.Ready() {
		dst.DrawImage(art.Image(), a.X, a.Y, a.W, a.H)
		return
	}
	// Fallback shape while the image is missing
	dst.FillEllipse(a.X+a.W/2, a.Y+a.H/2, a.W/2, a.H/2, ActorColor)
	dst.FillRect(a.X+a.W*0.2, a.Y+a.H*0.35, a.W*0.15, a.H*0.15, EyeColor)
}
