// framework.go defines the boundary between the decode pipeline and a decode framework.

// Package framework defines what the decode pipeline needs from a media
// decode framework: demuxing a container, finding and running a decoder,
// and exposing the decoded frame.
//
// Every allocated object is released exactly once by whoever allocated it:
// the pipeline never relies on garbage collection to free framework memory.
package framework

import (
	"context"

	"github.com/xaionaro-go/avicon/pixfmt"
)

type Framework interface {
	// AllocContainer allocates a container that is not opened yet.
	AllocContainer(ctx context.Context) (Container, error)

	// FindDecoder returns a decoder implementation for the codec of the
	// stream, or ErrDecoderNotFound.
	FindDecoder(ctx context.Context, stream Stream) (Codec, error)

	AllocPacket(ctx context.Context) (Packet, error)
	AllocFrame(ctx context.Context) (Frame, error)
}

type Container interface {
	OpenInput(ctx context.Context, path string) error
	FindStreamInfo(ctx context.Context) error

	// FindBestImageStream picks the stream most likely to be a still image.
	// The returned stream is valid only until Free.
	FindBestImageStream(ctx context.Context) (Stream, error)

	// ReadPacket reads the next compressed unit into pkt.
	ReadPacket(ctx context.Context, pkt Packet) error

	// Free closes the input, if it was opened, and releases the container.
	Free()
}

type Stream interface {
	Index() int
	CodecName() string
	Width() int
	Height() int
	String() string
}

type Codec interface {
	Name() string
	AllocContext(ctx context.Context) (DecoderContext, error)
}

type DecoderContext interface {
	// ApplyStreamParameters copies the encoded parameters of the stream.
	ApplyStreamParameters(ctx context.Context, stream Stream) error
	Open(ctx context.Context) error
	SendPacket(ctx context.Context, pkt Packet) error
	ReceiveFrame(ctx context.Context, frame Frame) error
	Free()
}

type Packet interface {
	Size() int
	Free()
}

type Frame interface {
	Width() int
	Height() int
	PixelFormat() pixfmt.PixelFormat

	// Linesize returns the row stride of the plane in bytes.
	Linesize(plane int) int

	// PlaneData returns the memory of the plane without copying it.
	// The slice is valid only until Free.
	PlaneData(plane int) ([]byte, error)

	Free()
}
