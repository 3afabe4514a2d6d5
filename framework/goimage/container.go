package goimage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/xaionaro-go/avicon/framework"
	"github.com/xaionaro-go/avicon/logger"
)

type Container struct {
	maxFileSize int64

	path      string
	data      []byte
	format    string
	config    image.Config
	configErr error
	isRead    bool
}

var _ framework.Container = (*Container)(nil)

func newReader(data []byte) *bytes.Reader {
	return bytes.NewReader(data)
}

// OpenInput reads the file and recognizes its format by the magic bytes.
func (c *Container) OpenInput(
	ctx context.Context,
	path string,
) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	limit := c.maxFileSize
	if limit <= 0 {
		limit = DefaultMaxFileSize
	}
	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return fmt.Errorf("unable to read '%s': %w", path, err)
	}
	if int64(len(data)) > limit {
		return ErrFileTooLarge{Size: int64(len(data)), Limit: limit}
	}

	config, format, err := image.DecodeConfig(newReader(data))
	if errors.Is(err, image.ErrFormat) {
		return fmt.Errorf("unrecognized image format of '%s': %w", path, err)
	}
	c.path = path
	c.data = data
	c.format = format
	c.config = config
	c.configErr = err
	return nil
}

func (c *Container) FindStreamInfo(
	ctx context.Context,
) error {
	if c.data == nil {
		return fmt.Errorf("the container is not opened")
	}
	if c.configErr != nil {
		return fmt.Errorf("unable to read the '%s' header: %w", c.format, c.configErr)
	}
	return nil
}

func (c *Container) FindBestImageStream(
	ctx context.Context,
) (framework.Stream, error) {
	if c.config.Width <= 0 || c.config.Height <= 0 {
		return nil, fmt.Errorf("the '%s' image has no pixels (%dx%d)", c.format, c.config.Width, c.config.Height)
	}
	s := &Stream{
		codecName: c.format,
		width:     c.config.Width,
		height:    c.config.Height,
		Metadata:  c.metadata(ctx),
	}
	logger.Debugf(ctx, "image stream: %s", s)
	return s, nil
}

// metadata returns the EXIF tags useful for a caller to present the image.
func (c *Container) metadata(ctx context.Context) map[string]string {
	switch c.format {
	case "jpeg", "tiff":
	default:
		return nil
	}
	x, err := exif.Decode(newReader(c.data))
	if err != nil {
		logger.Tracef(ctx, "no EXIF data: %v", err)
		return nil
	}
	result := map[string]string{}
	for _, name := range []exif.FieldName{exif.Orientation, exif.Software, exif.DateTime} {
		tag, err := x.Get(name)
		if err != nil {
			continue
		}
		result[string(name)] = tag.String()
	}
	return result
}

// ReadPacket returns the whole file as the first and only packet.
func (c *Container) ReadPacket(
	ctx context.Context,
	pkt framework.Packet,
) error {
	p, ok := pkt.(*Packet)
	if !ok {
		return framework.ErrForeignObject{Object: pkt}
	}
	if c.isRead || c.data == nil {
		return io.EOF
	}
	c.isRead = true
	p.data = c.data
	return nil
}

func (c *Container) Free() {
	c.data = nil
	c.configErr = nil
}
