// Package libav implements framework.Framework on top of FFmpeg
// (libavformat + libavcodec) via go-astiav.
package libav

import (
	"context"
	"fmt"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avicon/framework"
	"github.com/xaionaro-go/avicon/logger"
)

type Framework struct{}

var _ framework.Framework = (*Framework)(nil)

func New() *Framework {
	return &Framework{}
}

func (*Framework) String() string {
	return "libav"
}

func (*Framework) AllocContainer(
	ctx context.Context,
) (framework.Container, error) {
	fmtCtx := astiav.AllocFormatContext()
	if fmtCtx == nil {
		return nil, fmt.Errorf("unable to allocate a format context")
	}
	logger.Tracef(ctx, "allocated a format context")
	return &Container{FormatContext: fmtCtx}, nil
}

func (*Framework) FindDecoder(
	ctx context.Context,
	stream framework.Stream,
) (framework.Codec, error) {
	s, ok := stream.(*Stream)
	if !ok {
		return nil, framework.ErrForeignObject{Object: stream}
	}
	codecID := s.CodecParameters().CodecID()
	codec := astiav.FindDecoder(codecID)
	if codec == nil {
		return nil, framework.ErrDecoderNotFound{CodecName: codecID.String()}
	}
	logger.Debugf(ctx, "found decoder '%s' for codec %s", codec.Name(), codecID)
	return &Codec{Codec: codec}, nil
}

func (*Framework) AllocPacket(
	ctx context.Context,
) (framework.Packet, error) {
	pkt := astiav.AllocPacket()
	if pkt == nil {
		return nil, fmt.Errorf("unable to allocate a packet")
	}
	return &Packet{AVPacket: pkt}, nil
}

func (*Framework) AllocFrame(
	ctx context.Context,
) (framework.Frame, error) {
	f := astiav.AllocFrame()
	if f == nil {
		return nil, fmt.Errorf("unable to allocate a frame")
	}
	return &Frame{AVFrame: f}, nil
}
