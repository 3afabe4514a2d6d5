package surface

import (
	"fmt"
)

// Format is the pixel format tag understood by the presentation layer.
//
// 24 and 32 bit formats name the byte order in memory (FormatRGBA32 is
// R, G, B, A bytes). 16 bit formats are big-endian words, most significant
// component first (FormatRGB565 is rrrrrggg gggbbbbb).
type Format int

const (
	FormatUnknown Format = iota
	FormatRGB24
	FormatBGR24
	FormatARGB32
	FormatRGBA32
	FormatABGR32
	FormatBGRA32
	FormatRGB565
	FormatRGB555
	FormatBGR565
	FormatBGR555
	FormatRGB444
	FormatBGR444
	endOfFormat
)

func (f Format) String() string {
	switch f {
	case FormatUnknown:
		return "unknown"
	case FormatRGB24:
		return "RGB24"
	case FormatBGR24:
		return "BGR24"
	case FormatARGB32:
		return "ARGB32"
	case FormatRGBA32:
		return "RGBA32"
	case FormatABGR32:
		return "ABGR32"
	case FormatBGRA32:
		return "BGRA32"
	case FormatRGB565:
		return "RGB565"
	case FormatRGB555:
		return "RGB555"
	case FormatBGR565:
		return "BGR565"
	case FormatBGR555:
		return "BGR555"
	case FormatRGB444:
		return "RGB444"
	case FormatBGR444:
		return "BGR444"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// BytesPerPixel returns the amount of bytes a pixel occupies in a row,
// or zero for unknown formats.
func (f Format) BytesPerPixel() int {
	switch f {
	case FormatRGB24, FormatBGR24:
		return 3
	case FormatARGB32, FormatRGBA32, FormatABGR32, FormatBGRA32:
		return 4
	case FormatRGB565, FormatRGB555, FormatBGR565, FormatBGR555, FormatRGB444, FormatBGR444:
		return 2
	}
	return 0
}
