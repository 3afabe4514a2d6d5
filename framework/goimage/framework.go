// Package goimage implements framework.Framework with Go's image decoders,
// so the decode pipeline also works in builds without cgo.
//
// A container is the whole image file; it has exactly one stream and one
// compressed unit (the file contents), and the codec is the image format
// as reported by image.DecodeConfig.
package goimage

import (
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/xaionaro-go/avicon/framework"
	"github.com/xaionaro-go/avicon/logger"
)

// DefaultMaxFileSize is the default limit of an image file size.
const DefaultMaxFileSize = 64 << 20

// Framework decodes the formats registered in the image package. Besides the
// imports of this package (png, jpeg, gif, bmp, tiff, webp), only formats
// listed in Codecs are decoded.
type Framework struct {
	MaxFileSize int64
	Codecs      map[string]struct{}
}

var _ framework.Framework = (*Framework)(nil)

func New() *Framework {
	return &Framework{
		MaxFileSize: DefaultMaxFileSize,
		Codecs: map[string]struct{}{
			"png":  {},
			"jpeg": {},
			"gif":  {},
			"bmp":  {},
			"tiff": {},
			"webp": {},
		},
	}
}

func (*Framework) String() string {
	return "goimage"
}

func (fw *Framework) AllocContainer(
	ctx context.Context,
) (framework.Container, error) {
	return &Container{maxFileSize: fw.MaxFileSize}, nil
}

func (fw *Framework) FindDecoder(
	ctx context.Context,
	stream framework.Stream,
) (framework.Codec, error) {
	s, ok := stream.(*Stream)
	if !ok {
		return nil, framework.ErrForeignObject{Object: stream}
	}
	if _, ok := fw.Codecs[s.codecName]; !ok {
		return nil, framework.ErrDecoderNotFound{CodecName: s.codecName}
	}
	logger.Debugf(ctx, "found decoder for '%s'", s.codecName)
	return &Codec{name: s.codecName}, nil
}

func (*Framework) AllocPacket(
	ctx context.Context,
) (framework.Packet, error) {
	return &Packet{}, nil
}

func (*Framework) AllocFrame(
	ctx context.Context,
) (framework.Frame, error) {
	return &Frame{}, nil
}

// decodeImage decodes data and checks that it is of the expected format.
func decodeImage(data []byte, expectedFormat string) (image.Image, error) {
	img, format, err := image.Decode(newReader(data))
	if err != nil {
		return nil, err
	}
	if format != expectedFormat {
		return nil, errUnexpectedFormat{Expected: expectedFormat, Actual: format}
	}
	return img, nil
}
