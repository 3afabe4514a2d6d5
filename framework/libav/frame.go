package libav

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avicon/framework"
	"github.com/xaionaro-go/avicon/pixfmt"
	"github.com/xaionaro-go/unsafetools"
)

type Frame struct {
	AVFrame *astiav.Frame
}

var _ framework.Frame = (*Frame)(nil)

func (f *Frame) Width() int {
	return f.AVFrame.Width()
}

func (f *Frame) Height() int {
	return f.AVFrame.Height()
}

func (f *Frame) PixelFormat() pixfmt.PixelFormat {
	return pixfmt.FromName(f.AVFrame.PixelFormat().String())
}

func (f *Frame) Linesize(plane int) int {
	linesizes := f.AVFrame.Linesize()
	if plane < 0 || plane >= len(linesizes) {
		return 0
	}
	return linesizes[plane]
}

// PlaneData returns the plane as a slice over the memory FFmpeg allocated
// for the frame (AVFrame.data[plane]).
func (f *Frame) PlaneData(plane int) ([]byte, error) {
	linesize := f.Linesize(plane)
	if linesize <= 0 {
		return nil, fmt.Errorf("plane #%d has linesize %d, which is not supported", plane, linesize)
	}
	desc := f.PixelFormat().Descriptor()
	if desc == nil {
		return nil, fmt.Errorf("unknown pixel format %s", f.AVFrame.PixelFormat())
	}
	rows := desc.PlaneHeight(plane, f.AVFrame.Height())

	cFrame := unsafetools.FieldByNameInValue(reflect.ValueOf(f.AVFrame), "c").Elem().Elem()
	ptr := cFrame.FieldByName("data").Index(plane).Pointer()
	if ptr == 0 {
		return nil, fmt.Errorf("plane #%d has no data", plane)
	}
	// the memory is owned by FFmpeg (not by the Go heap) and lives until Free
	return unsafe.Slice((*byte)(unsafe.Pointer(ptr)), linesize*rows), nil
}

func (f *Frame) Free() {
	f.AVFrame.Free()
}
