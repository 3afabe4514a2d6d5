// Package surface describes decoded pixel buffers in a form a presentation
// layer (a window icon, a texture upload) can consume without copying.
package surface

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/xaionaro-go/avicon/internal"
	"github.com/xaionaro-go/avicon/logger"
)

// Owner is whatever owns the memory a Surface points to.
type Owner interface {
	Free()
}

// Surface is a packed pixel buffer of Height rows, Pitch bytes apart.
//
// Pixels is borrowed from the owner passed to New, so a Surface must be
// released with Destroy, which frees the owner exactly once.
type Surface struct {
	Pixels       []byte
	Width        int
	Height       int
	Pitch        int
	Format       Format
	BitsPerPixel int

	owner Owner
}

var _ image.Image = (*Surface)(nil)

// New wraps pixels into a Surface co-owned by owner.
func New(
	ctx context.Context,
	pixels []byte,
	width, height int,
	bitsPerPixel int,
	pitch int,
	format Format,
	owner Owner,
) (*Surface, error) {
	if owner == nil {
		return nil, fmt.Errorf("a surface requires an owner of its pixels")
	}
	bytesPerPixel := format.BytesPerPixel()
	if bytesPerPixel == 0 {
		return nil, fmt.Errorf("unknown surface format %s", format)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", width, height)
	}
	if bitsPerPixel <= 0 || bitsPerPixel > bytesPerPixel*8 {
		return nil, fmt.Errorf("%d bits per pixel do not fit format %s", bitsPerPixel, format)
	}
	rowSize := width * bytesPerPixel
	if pitch < rowSize {
		return nil, fmt.Errorf("pitch %d is less than the row size %d (%dx%s)", pitch, rowSize, width, format)
	}
	if need := pitch*(height-1) + rowSize; len(pixels) < need {
		return nil, fmt.Errorf("pixel buffer is %d bytes, while %dx%d with pitch %d requires %d", len(pixels), width, height, pitch, need)
	}

	s := &Surface{
		Pixels:       pixels,
		Width:        width,
		Height:       height,
		Pitch:        pitch,
		Format:       format,
		BitsPerPixel: bitsPerPixel,
		owner:        owner,
	}
	internal.SetLeakFinalizer(ctx, s, func(s *Surface) bool {
		return s.owner != nil
	})
	logger.Tracef(ctx, "created surface %s", s)
	return s, nil
}

// Owner returns the co-owner of the pixels, or nil after Destroy.
func (s *Surface) Owner() Owner {
	return s.owner
}

// Destroy frees the owner of the pixels. It must be called exactly once;
// calling it on a destroyed surface is a programming error.
func (s *Surface) Destroy(ctx context.Context) {
	internal.Assert(ctx, s != nil, "destroying a nil surface")
	internal.Assert(ctx, s.owner != nil, "destroying a surface without an attached owner")
	owner := s.owner
	s.owner = nil
	internal.ClearFinalizer(s)
	owner.Free()
	s.Pixels = nil
}

func (s *Surface) String() string {
	return fmt.Sprintf("Surface(%dx%d, %s, pitch:%d, bpp:%d)", s.Width, s.Height, s.Format, s.Pitch, s.BitsPerPixel)
}

func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}

func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.Width, s.Height)
}

// At returns the color of the pixel at (x, y), decoded according to Format.
func (s *Surface) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(s.Bounds())) || s.Pixels == nil {
		return color.NRGBA{}
	}
	bytesPerPixel := s.Format.BytesPerPixel()
	p := s.Pixels[y*s.Pitch+x*bytesPerPixel:]
	switch s.Format {
	case FormatRGB24:
		return color.NRGBA{R: p[0], G: p[1], B: p[2], A: 0xff}
	case FormatBGR24:
		return color.NRGBA{R: p[2], G: p[1], B: p[0], A: 0xff}
	case FormatARGB32:
		return color.NRGBA{R: p[1], G: p[2], B: p[3], A: p[0]}
	case FormatRGBA32:
		return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
	case FormatABGR32:
		return color.NRGBA{R: p[3], G: p[2], B: p[1], A: p[0]}
	case FormatBGRA32:
		return color.NRGBA{R: p[2], G: p[1], B: p[0], A: p[3]}
	}

	word := uint16(p[0])<<8 | uint16(p[1])
	var r, g, b uint8
	switch s.Format {
	case FormatRGB565, FormatBGR565:
		r, g, b = expand(word>>11, 5), expand(word>>5, 6), expand(word, 5)
	case FormatRGB555, FormatBGR555:
		r, g, b = expand(word>>10, 5), expand(word>>5, 5), expand(word, 5)
	case FormatRGB444, FormatBGR444:
		r, g, b = expand(word>>8, 4), expand(word>>4, 4), expand(word, 4)
	default:
		return color.NRGBA{}
	}
	switch s.Format {
	case FormatBGR565, FormatBGR555, FormatBGR444:
		r, b = b, r
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// expand scales the lowest bits of v to 8 bits.
func expand(v uint16, bits uint) uint8 {
	v &= 1<<bits - 1
	v <<= 8 - bits
	return uint8(v | v>>bits)
}

// NRGBA returns an *image.NRGBA sharing the pixels of a FormatRGBA32
// surface. The view is valid only until Destroy.
func (s *Surface) NRGBA() (*image.NRGBA, bool) {
	if s.Format != FormatRGBA32 || s.Pixels == nil {
		return nil, false
	}
	return &image.NRGBA{
		Pix:    s.Pixels[:s.Pitch*(s.Height-1)+s.Width*4],
		Stride: s.Pitch,
		Rect:   s.Bounds(),
	}, true
}
