package libav

import (
	"context"
	"fmt"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avicon/framework"
	"github.com/xaionaro-go/avicon/logger"
)

type Codec struct {
	*astiav.Codec
}

var _ framework.Codec = (*Codec)(nil)

func (c *Codec) AllocContext(
	ctx context.Context,
) (framework.DecoderContext, error) {
	codecCtx := astiav.AllocCodecContext(c.Codec)
	if codecCtx == nil {
		return nil, fmt.Errorf("unable to allocate a codec context for '%s'", c.Codec.Name())
	}
	return &DecoderContext{CodecContext: codecCtx, codec: c.Codec}, nil
}

type DecoderContext struct {
	CodecContext *astiav.CodecContext
	codec        *astiav.Codec
}

var _ framework.DecoderContext = (*DecoderContext)(nil)

func (d *DecoderContext) ApplyStreamParameters(
	ctx context.Context,
	stream framework.Stream,
) error {
	s, ok := stream.(*Stream)
	if !ok {
		return framework.ErrForeignObject{Object: stream}
	}
	if err := s.CodecParameters().ToCodecContext(d.CodecContext); err != nil {
		return fmt.Errorf("unable to copy codec parameters: %w", err)
	}
	return nil
}

func (d *DecoderContext) Open(
	ctx context.Context,
) error {
	if err := d.CodecContext.Open(d.codec, nil); err != nil {
		return fmt.Errorf("unable to open codec '%s': %w", d.codec.Name(), err)
	}
	logger.Tracef(ctx, "opened codec '%s', pixel format: %s", d.codec.Name(), d.CodecContext.PixelFormat())
	return nil
}

func (d *DecoderContext) SendPacket(
	ctx context.Context,
	pkt framework.Packet,
) error {
	p, ok := pkt.(*Packet)
	if !ok {
		return framework.ErrForeignObject{Object: pkt}
	}
	return d.CodecContext.SendPacket(p.AVPacket)
}

func (d *DecoderContext) ReceiveFrame(
	ctx context.Context,
	frame framework.Frame,
) error {
	f, ok := frame.(*Frame)
	if !ok {
		return framework.ErrForeignObject{Object: frame}
	}
	return d.CodecContext.ReceiveFrame(f.AVFrame)
}

func (d *DecoderContext) Free() {
	d.CodecContext.Free()
}
