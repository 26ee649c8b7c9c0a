package asset

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})

	path := filepath.Join(t.TempDir(), "sprite.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestNewSpriteIsPending(t *testing.T) {
	s := New()
	if s.Ready() || s.Settled() || s.Image() != nil || s.Err() != nil {
		t.Error("new sprite should be pending")
	}
}

func TestNilSprite(t *testing.T) {
	var s *Sprite
	if s.Ready() || s.Settled() || s.Image() != nil || s.Err() != nil {
		t.Error("nil sprite should behave as pending")
	}
}

func TestLoadEmbedded(t *testing.T) {
	s := New()
	if err := s.Load(context.Background(), ""); err != nil {
		t.Fatalf("Load embedded: %v", err)
	}
	if !s.Ready() || !s.Settled() {
		t.Fatal("embedded sprite should be ready")
	}
	if b := s.Image().Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("embedded sprite bounds = %v, expected 16x16", b)
	}
}

func TestLoadFile(t *testing.T) {
	path := writePNG(t, 4, 3)

	s := New()
	if err := s.Load(context.Background(), path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := s.Image().Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("bounds = %v, expected 4x3", b)
	}
}

func TestLoadFailures(t *testing.T) {
	garbage := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(garbage, []byte("not a png"), 0o600); err != nil {
		t.Fatal(err)
	}
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name  string
		ctx   context.Context
		src   string
		check func(error) bool
	}{
		{"disabled", context.Background(), Disabled, func(err error) bool { return errors.Is(err, ErrDisabled) }},
		{"missing file", context.Background(), filepath.Join(t.TempDir(), "nope.png"), func(err error) bool { return errors.Is(err, fs.ErrNotExist) }},
		{"not a png", context.Background(), garbage, func(err error) bool { return err != nil }},
		{"canceled", canceled, "", func(err error) bool { return errors.Is(err, context.Canceled) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			err := s.Load(tc.ctx, tc.src)
			if !tc.check(err) {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.Ready() || s.Image() != nil {
				t.Error("failed load should leave the sprite not ready")
			}
			if !s.Settled() || s.Err() == nil {
				t.Error("failed load should settle with an error")
			}
		})
	}
}

func TestFailureIsPermanent(t *testing.T) {
	s := New()
	_ = s.Load(context.Background(), Disabled)

	err := s.Load(context.Background(), "")
	if !errors.Is(err, ErrDisabled) {
		t.Errorf("second load should report the first outcome, got %v", err)
	}
	if s.Ready() {
		t.Error("sprite should stay not ready after a failed load")
	}
}
