// Package asset loads the actor sprite.
//
// Loading is blocking and meant to run off the game loop. Until a load
// settles successfully the sprite reports not ready and callers draw a
// fallback shape instead; a failed load stays failed.
package asset

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"sync/atomic"
)

// Disabled is the sprite source that turns the image off.
const Disabled = "none"

// ErrDisabled is the settle error for the Disabled source.
var ErrDisabled = errors.New("sprite disabled")

//go:embed bird.png
var defaultPNG []byte

type result struct {
	img image.Image
	err error
}

// Sprite is an image that becomes available at some point after creation.
// All methods are safe for concurrent use and on a nil *Sprite.
type Sprite struct {
	state atomic.Pointer[result]
}

// New returns an unsettled sprite.
func New() *Sprite {
	return &Sprite{}
}

// Ready reports whether the image loaded successfully.
func (s *Sprite) Ready() bool {
	if s == nil {
		return false
	}
	r := s.state.Load()
	return r != nil && r.img != nil
}

// Image returns the loaded image, or nil when not ready.
func (s *Sprite) Image() image.Image {
	if s == nil {
		return nil
	}
	if r := s.state.Load(); r != nil {
		return r.img
	}
	return nil
}

// Err returns the load error, or nil while pending or after success.
func (s *Sprite) Err() error {
	if s == nil {
		return nil
	}
	if r := s.state.Load(); r != nil {
		return r.err
	}
	return nil
}

// Settled reports whether a load has finished, successfully or not.
func (s *Sprite) Settled() bool {
	return s != nil && s.state.Load() != nil
}

// Load decodes a PNG from src and settles the sprite with the outcome.
// An empty src uses the embedded default sprite. Only the first load
// settles the sprite; later calls return its recorded error.
func (s *Sprite) Load(ctx context.Context, src string) error {
	img, err := decode(ctx, src)
	if !s.state.CompareAndSwap(nil, &result{img: img, err: err}) {
		return s.Err()
	}
	return err
}

func decode(ctx context.Context, src string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var data []byte
	switch src {
	case Disabled:
		return nil, ErrDisabled
	case "":
		data = defaultPNG
	default:
		b, err := os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("read sprite: %w", err)
		}
		data = b
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode sprite %q: %w", name(src), err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decode sprite %q: empty image", name(src))
	}

	// A load that outlived its context is discarded
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return img, nil
}

func name(src string) string {
	if src == "" {
		return "embedded"
	}
	return src
}
