package goimage

import (
	"fmt"
	"image"
	"image/color"

	"github.com/xaionaro-go/avicon/framework"
	"github.com/xaionaro-go/avicon/pixfmt"
)

// Frame exposes the pixel memory of a decoded image.Image as planes.
type Frame struct {
	img       image.Image
	pixFmt    pixfmt.PixelFormat
	planes    [][]byte
	linesizes []int
}

var _ framework.Frame = (*Frame)(nil)

func (f *Frame) Width() int {
	if f.img == nil {
		return 0
	}
	return f.img.Bounds().Dx()
}

func (f *Frame) Height() int {
	if f.img == nil {
		return 0
	}
	return f.img.Bounds().Dy()
}

func (f *Frame) PixelFormat() pixfmt.PixelFormat {
	return f.pixFmt
}

func (f *Frame) Linesize(plane int) int {
	if plane < 0 || plane >= len(f.linesizes) {
		return 0
	}
	return f.linesizes[plane]
}

func (f *Frame) PlaneData(plane int) ([]byte, error) {
	if plane < 0 || plane >= len(f.planes) {
		return nil, fmt.Errorf("there is no plane #%d in a %s frame", plane, f.pixFmt)
	}
	return f.planes[plane], nil
}

// Image returns the decoded image, or nil after Free.
func (f *Frame) Image() image.Image {
	return f.img
}

func (f *Frame) Free() {
	f.img = nil
	f.planes = nil
	f.linesizes = nil
	f.pixFmt = pixfmt.None
}

func (f *Frame) setPlanes(pixFmt pixfmt.PixelFormat, planes [][]byte, linesizes []int) {
	f.pixFmt = pixFmt
	f.planes = planes
	f.linesizes = linesizes
}

// setImage classifies the concrete image type the way FFmpeg would name
// the equivalent pixel format. *image.RGBA and *image.RGBA64 are
// premultiplied, which matches the straight alpha of "rgba" and "rgba64be"
// only for opaque pixels. FFmpeg has no premultiplied pixel format, so a
// translucent premultiplied image (e.g. an associated-alpha TIFF) gets
// pixfmt.None.
func (f *Frame) setImage(img image.Image) error {
	if img.Bounds().Empty() {
		return fmt.Errorf("the decoded image is empty")
	}
	f.Free()
	f.img = img
	b := img.Bounds()
	switch img := img.(type) {
	case *image.NRGBA:
		f.setPlanes(pixfmt.RGBA, [][]byte{img.Pix[img.PixOffset(b.Min.X, b.Min.Y):]}, []int{img.Stride})
	case *image.RGBA:
		if !img.Opaque() {
			f.setPlanes(pixfmt.None, nil, nil)
			break
		}
		f.setPlanes(pixfmt.RGBA, [][]byte{img.Pix[img.PixOffset(b.Min.X, b.Min.Y):]}, []int{img.Stride})
	case *image.NRGBA64:
		f.setPlanes(pixfmt.RGBA64BE, [][]byte{img.Pix[img.PixOffset(b.Min.X, b.Min.Y):]}, []int{img.Stride})
	case *image.RGBA64:
		if !img.Opaque() {
			f.setPlanes(pixfmt.None, nil, nil)
			break
		}
		f.setPlanes(pixfmt.RGBA64BE, [][]byte{img.Pix[img.PixOffset(b.Min.X, b.Min.Y):]}, []int{img.Stride})
	case *image.Gray:
		f.setPlanes(pixfmt.Gray, [][]byte{img.Pix[img.PixOffset(b.Min.X, b.Min.Y):]}, []int{img.Stride})
	case *image.Gray16:
		f.setPlanes(pixfmt.Gray16BE, [][]byte{img.Pix[img.PixOffset(b.Min.X, b.Min.Y):]}, []int{img.Stride})
	case *image.Paletted:
		f.setPlanes(pixfmt.PAL8, [][]byte{img.Pix[img.PixOffset(b.Min.X, b.Min.Y):], paletteBytes(img.Palette)}, []int{img.Stride, 4})
	case *image.YCbCr:
		f.setPlanes(
			yuvPixelFormat(img.SubsampleRatio, false),
			[][]byte{img.Y[img.YOffset(b.Min.X, b.Min.Y):], img.Cb[img.COffset(b.Min.X, b.Min.Y):], img.Cr[img.COffset(b.Min.X, b.Min.Y):]},
			[]int{img.YStride, img.CStride, img.CStride},
		)
	case *image.NYCbCrA:
		f.setPlanes(
			yuvPixelFormat(img.SubsampleRatio, true),
			[][]byte{img.Y[img.YOffset(b.Min.X, b.Min.Y):], img.Cb[img.COffset(b.Min.X, b.Min.Y):], img.Cr[img.COffset(b.Min.X, b.Min.Y):], img.A[img.AOffset(b.Min.X, b.Min.Y):]},
			[]int{img.YStride, img.CStride, img.CStride, img.AStride},
		)
	default:
		// e.g. *image.CMYK: no FFmpeg pixel format describes it
		f.setPlanes(pixfmt.None, nil, nil)
	}
	return nil
}

// paletteBytes lays out the palette as FFmpeg does for pal8: a uint32
// 0xAARRGGBB per entry in little-endian byte order.
func paletteBytes(palette color.Palette) []byte {
	result := make([]byte, 256*4)
	for idx, c := range palette {
		if idx >= 256 {
			break
		}
		r, g, b, a := c.RGBA()
		result[idx*4+0] = uint8(b >> 8)
		result[idx*4+1] = uint8(g >> 8)
		result[idx*4+2] = uint8(r >> 8)
		result[idx*4+3] = uint8(a >> 8)
	}
	return result
}

func yuvPixelFormat(ratio image.YCbCrSubsampleRatio, hasAlpha bool) pixfmt.PixelFormat {
	if hasAlpha {
		switch ratio {
		case image.YCbCrSubsampleRatio420:
			return pixfmt.YUVA420P
		case image.YCbCrSubsampleRatio422:
			return pixfmt.YUVA422P
		case image.YCbCrSubsampleRatio444:
			return pixfmt.YUVA444P
		}
		return pixfmt.None
	}
	switch ratio {
	case image.YCbCrSubsampleRatio420:
		return pixfmt.YUV420P
	case image.YCbCrSubsampleRatio422:
		return pixfmt.YUV422P
	case image.YCbCrSubsampleRatio444:
		return pixfmt.YUV444P
	case image.YCbCrSubsampleRatio440:
		return pixfmt.YUV440P
	case image.YCbCrSubsampleRatio411:
		return pixfmt.YUV411P
	case image.YCbCrSubsampleRatio410:
		return pixfmt.YUV410P
	}
	return pixfmt.None
}
