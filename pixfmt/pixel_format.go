// pixel_format.go defines the decode-framework-neutral pixel format identifiers.

// Package pixfmt classifies decoded pixel formats.
//
// Identifiers follow FFmpeg's pixel format names, so the FFmpeg backend maps
// its formats by name and other backends pick the closest FFmpeg equivalent.
package pixfmt

import (
	"fmt"
	"strings"
)

type PixelFormat int

const (
	None PixelFormat = iota

	// packed RGB
	RGB24
	BGR24
	ARGB
	RGBA
	ABGR
	BGRA
	ZeroRGB
	RGBZero
	ZeroBGR
	BGRZero
	RGB565BE
	RGB565LE
	BGR565BE
	BGR565LE
	RGB555BE
	RGB555LE
	BGR555BE
	BGR555LE
	RGB444BE
	RGB444LE
	BGR444BE
	BGR444LE
	RGB48BE
	RGB48LE
	BGR48BE
	BGR48LE
	RGBA64BE
	RGBA64LE
	BGRA64BE
	BGRA64LE
	RGB8
	BGR8
	RGB4
	BGR4
	RGB4Byte
	BGR4Byte
	X2RGB10LE
	X2RGB10BE
	X2BGR10LE
	X2BGR10BE
	RGBF16BE
	RGBF16LE
	RGBAF16BE
	RGBAF16LE
	RGBF32BE
	RGBF32LE
	RGBAF32BE
	RGBAF32LE
	RGB96BE
	RGB96LE
	RGBA128BE
	RGBA128LE

	// palette
	PAL8

	// planar RGB
	GBRP
	GBRAP
	GBRP16BE
	GBRP16LE

	// planar YUV
	YUV420P
	YUV422P
	YUV444P
	YUV440P
	YUV411P
	YUV410P
	YUVJ420P
	YUVJ422P
	YUVJ444P
	YUVJ440P
	YUVA420P
	YUVA422P
	YUVA444P
	NV12
	NV21

	// packed YUV
	YUYV422
	UYVY422

	// grayscale
	Gray
	Gray16BE
	Gray16LE
	YA8
	MonoWhite
	MonoBlack

	// hardware surfaces
	VAAPI
	CUDA
	MediaCodec
	VideoToolbox

	endOfPixelFormat
)

var byName map[string]PixelFormat

func init() {
	byName = make(map[string]PixelFormat, len(descriptors))
	for pixFmt, desc := range descriptors {
		byName[desc.Name] = pixFmt
	}
}

// FromName returns the pixel format with the given FFmpeg name, or None.
func FromName(name string) PixelFormat {
	pixFmt, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return None
	}
	return pixFmt
}

func (f PixelFormat) String() string {
	if f == None {
		return "none"
	}
	desc := f.Descriptor()
	if desc == nil {
		return fmt.Sprintf("unknown_pixel_format_%d", int(f))
	}
	return desc.Name
}
