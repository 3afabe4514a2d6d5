// format_map.go maps decoded pixel formats to presentation formats.

package surface

import (
	"github.com/xaionaro-go/avicon/pixfmt"
)

// New entries go here; nothing else needs to change to support them.
var formatByPixelFormat = map[pixfmt.PixelFormat]Format{
	pixfmt.RGB24:    FormatRGB24,
	pixfmt.BGR24:    FormatBGR24,
	pixfmt.ARGB:     FormatARGB32,
	pixfmt.RGBA:     FormatRGBA32,
	pixfmt.ABGR:     FormatABGR32,
	pixfmt.BGRA:     FormatBGRA32,
	pixfmt.RGB565BE: FormatRGB565,
	pixfmt.RGB555BE: FormatRGB555,
	pixfmt.BGR565BE: FormatBGR565,
	pixfmt.BGR555BE: FormatBGR555,
	pixfmt.RGB444BE: FormatRGB444,
	pixfmt.BGR444BE: FormatBGR444,
}

// FormatFromPixelFormat returns the presentation format for the decoded
// pixel format; ok is false if the table has no entry for it.
func FormatFromPixelFormat(pixFmt pixfmt.PixelFormat) (_ Format, ok bool) {
	f, ok := formatByPixelFormat[pixFmt]
	if !ok {
		return FormatUnknown, false
	}
	return f, true
}
