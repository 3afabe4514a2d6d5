package avicon

import (
	"context"

	"github.com/xaionaro-go/avicon/framework"
	"github.com/xaionaro-go/avicon/logger"
	"github.com/xaionaro-go/avicon/surface"
)

// adaptSurface wraps the first plane of the frame into a surface which
// takes over the frame. The frame is freed if it cannot be wrapped.
func adaptSurface(
	ctx context.Context,
	frame framework.Frame,
) (_ret *surface.Surface, _err error) {
	logger.Tracef(ctx, "adaptSurface")
	defer func() { logger.Tracef(ctx, "/adaptSurface: %v", _err) }()
	defer func() {
		if _err != nil {
			frame.Free()
		}
	}()

	pixFmt := frame.PixelFormat()
	desc := pixFmt.Descriptor()
	switch {
	case desc == nil:
		return nil, ErrUnsupportedLayout{PixelFormat: pixFmt, Reason: "no pixel format descriptor"}
	case !desc.IsRGB():
		return nil, ErrUnsupportedLayout{PixelFormat: pixFmt, Reason: "the color model is not RGB"}
	case desc.IsPlanar():
		return nil, ErrUnsupportedLayout{PixelFormat: pixFmt, Reason: "the layout is planar"}
	}

	format, ok := surface.FormatFromPixelFormat(pixFmt)
	if !ok {
		return nil, ErrUnmappedFormat{PixelFormat: pixFmt}
	}

	pixels, err := frame.PlaneData(0)
	if err != nil {
		return nil, ErrCreateSurface{Err: err}
	}

	s, err := surface.New(
		ctx,
		pixels,
		frame.Width(), frame.Height(),
		desc.BitsPerPixel(),
		frame.Linesize(0),
		format,
		frame,
	)
	if err != nil {
		return nil, ErrCreateSurface{Err: err}
	}
	return s, nil
}
