package libav

import (
	"context"
	"fmt"
	"reflect"

	"github.com/asticode/go-astiav"
	"github.com/davecgh/go-spew/spew"
	"github.com/xaionaro-go/avicon/framework"
	"github.com/xaionaro-go/avicon/logger"
	"github.com/xaionaro-go/unsafetools"
)

// Container is an input format context.
type Container struct {
	*astiav.FormatContext
	isOpened bool
}

var _ framework.Container = (*Container)(nil)

func (c *Container) OpenInput(
	ctx context.Context,
	path string,
) error {
	// on failure FFmpeg frees the context itself, Free remains safe to call
	if err := c.FormatContext.OpenInput(path, nil, nil); err != nil {
		return fmt.Errorf("unable to open input '%s': %w", path, err)
	}
	c.isOpened = true
	return nil
}

func (c *Container) FindStreamInfo(
	ctx context.Context,
) error {
	if err := c.FormatContext.FindStreamInfo(nil); err != nil {
		return fmt.Errorf("unable to get stream info: %w", err)
	}
	return nil
}

func (c *Container) FindBestImageStream(
	ctx context.Context,
) (framework.Stream, error) {
	stream, _, err := c.FormatContext.FindBestStream(astiav.MediaTypeVideo, -1, -1)
	if err != nil {
		return nil, fmt.Errorf("unable to find the best video stream: %w", err)
	}
	if stream == nil {
		return nil, fmt.Errorf("no video stream")
	}
	logger.Tracef(ctx, "image stream #%d: %s", stream.Index(), spew.Sdump(unsafetools.FieldByNameInValue(reflect.ValueOf(stream.CodecParameters()), "c").Elem().Elem().Interface()))
	return &Stream{Stream: stream}, nil
}

func (c *Container) ReadPacket(
	ctx context.Context,
	pkt framework.Packet,
) error {
	p, ok := pkt.(*Packet)
	if !ok {
		return framework.ErrForeignObject{Object: pkt}
	}
	if err := c.FormatContext.ReadFrame(p.AVPacket); err != nil {
		return fmt.Errorf("unable to read a packet: %w", err)
	}
	logger.Tracef(ctx, "read a packet (stream:%d, size:%d)", p.AVPacket.StreamIndex(), p.AVPacket.Size())
	return nil
}

func (c *Container) Free() {
	if c.isOpened {
		c.FormatContext.CloseInput()
		c.isOpened = false
	}
	c.FormatContext.Free()
}
