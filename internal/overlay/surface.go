package overlay

import (
	"image"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
)

// surface is a raster layer that may be unsized. A zero-sized surface has no
// context and every paint on it is a no-op.
type surface struct {
	dc *gg.Context
}

func newSurface(w, h int) *surface {
	s := &surface{}
	s.resize(w, h)
	return s
}

func (s *surface) width() int {
	if s.dc == nil {
		return 0
	}
	return s.dc.Width()
}

func (s *surface) height() int {
	if s.dc == nil {
		return 0
	}
	return s.dc.Height()
}

func (s *surface) empty() bool { return s.width() == 0 || s.height() == 0 }

// resize reallocates the surface; the previous pixels are discarded.
func (s *surface) resize(w, h int) {
	if s.dc != nil {
		_ = s.dc.Close()
		s.dc = nil
	}
	if w > 0 && h > 0 {
		s.dc = gg.NewContext(w, h)
	}
}

func (s *surface) clear() {
	if s.dc != nil {
		s.dc.Clear()
	}
}

// snapshot copies the current pixels. It returns nil for an empty surface.
func (s *surface) snapshot() *image.RGBA {
	if s.empty() {
		return nil
	}
	img, ok := s.dc.Image().(*image.RGBA)
	if !ok {
		b := s.dc.Image().Bounds()
		img = image.NewRGBA(b)
		xdraw.Draw(img, b, s.dc.Image(), b.Min, xdraw.Src)
	}
	return img
}

// load replaces the surface pixels with img, keeping the surface size.
func (s *surface) load(img *image.RGBA) {
	if s.empty() || img == nil {
		return
	}
	_ = s.dc.Close()
	s.dc = gg.NewContextForImage(img)
}

// stretchFrom scales src over the whole surface. Aspect ratio follows the
// surface, not the source.
func (s *surface) stretchFrom(src image.Image) {
	if s.empty() || src == nil {
		return
	}
	dst := image.NewRGBA(image.Rect(0, 0, s.width(), s.height()))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	s.load(dst)
}

// composite draws src over the surface at the origin without scaling.
func (s *surface) composite(src image.Image) {
	if s.empty() || src == nil {
		return
	}
	dst := s.snapshot()
	xdraw.Draw(dst, dst.Bounds(), src, image.Point{}, xdraw.Over)
	s.load(dst)
}
