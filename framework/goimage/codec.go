package goimage

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avicon/framework"
)

type Codec struct {
	name string
}

var _ framework.Codec = (*Codec)(nil)

func (c *Codec) Name() string {
	return c.name
}

func (c *Codec) AllocContext(
	ctx context.Context,
) (framework.DecoderContext, error) {
	return &DecoderContext{codecName: c.name}, nil
}

// DecoderContext decodes a whole image per packet; like FFmpeg it reports
// ErrTryAgain when a frame is requested before a packet was sent.
type DecoderContext struct {
	codecName string
	width     int
	height    int
	isOpened  bool
	pending   []byte
}

var _ framework.DecoderContext = (*DecoderContext)(nil)

var ErrTryAgain = fmt.Errorf("no packet was sent, try again")

func (d *DecoderContext) ApplyStreamParameters(
	ctx context.Context,
	stream framework.Stream,
) error {
	s, ok := stream.(*Stream)
	if !ok {
		return framework.ErrForeignObject{Object: stream}
	}
	if s.codecName != d.codecName {
		return fmt.Errorf("the stream is '%s', while the codec is '%s'", s.codecName, d.codecName)
	}
	d.width, d.height = s.width, s.height
	return nil
}

func (d *DecoderContext) Open(
	ctx context.Context,
) error {
	if d.width <= 0 || d.height <= 0 {
		return fmt.Errorf("stream parameters are not set")
	}
	d.isOpened = true
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
	if !d.isOpened {
		return fmt.Errorf("the decoder is not opened")
	}
	if d.pending != nil {
		return fmt.Errorf("the previous packet is not decoded, yet")
	}
	if len(p.data) == 0 {
		return fmt.Errorf("empty packet")
	}
	d.pending = p.data
	return nil
}

func (d *DecoderContext) ReceiveFrame(
	ctx context.Context,
	frame framework.Frame,
) error {
	f, ok := frame.(*Frame)
	if !ok {
		return framework.ErrForeignObject{Object: frame}
	}
	if d.pending == nil {
		return ErrTryAgain
	}
	data := d.pending
	d.pending = nil
	img, err := decodeImage(data, d.codecName)
	if err != nil {
		return fmt.Errorf("unable to decode the '%s' image: %w", d.codecName, err)
	}
	return f.setImage(img)
}

func (d *DecoderContext) Free() {
	d.pending = nil
	d.isOpened = false
}
