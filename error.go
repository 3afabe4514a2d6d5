package avicon

import (
	"fmt"

	"github.com/xaionaro-go/avicon/pixfmt"
)

type Stage string

const (
	StagePathResolution    = Stage("path_resolution")
	StageContainerProbe    = Stage("container_probe")
	StageCodecNegotiation  = Stage("codec_negotiation")
	StageFrameDecoding     = Stage("frame_decoding")
	StageSurfaceAdaptation = Stage("surface_adaptation")
)

// StageError is implemented by every error returned by the decode pipeline.
type StageError interface {
	error
	Stage() Stage
}

type ErrPathUnavailable struct {
	Err error
}

func (e ErrPathUnavailable) Error() string {
	return fmt.Sprintf("icon path is unavailable: %v", e.Err)
}

func (e ErrPathUnavailable) Unwrap() error { return e.Err }
func (ErrPathUnavailable) Stage() Stage    { return StagePathResolution }

type ErrCannotOpenContainer struct {
	Path string
	Err  error
}

func (e ErrCannotOpenContainer) Error() string {
	return fmt.Sprintf("unable to open '%s': %v", e.Path, e.Err)
}

func (e ErrCannotOpenContainer) Unwrap() error { return e.Err }
func (ErrCannotOpenContainer) Stage() Stage    { return StageContainerProbe }

type ErrNoStreamInfo struct {
	Err error
}

func (e ErrNoStreamInfo) Error() string {
	return fmt.Sprintf("unable to find the image stream info: %v", e.Err)
}

func (e ErrNoStreamInfo) Unwrap() error { return e.Err }
func (ErrNoStreamInfo) Stage() Stage    { return StageContainerProbe }

type ErrNoSuitableStream struct {
	Err error
}

func (e ErrNoSuitableStream) Error() string {
	return fmt.Sprintf("unable to find an image stream: %v", e.Err)
}

func (e ErrNoSuitableStream) Unwrap() error { return e.Err }
func (ErrNoSuitableStream) Stage() Stage    { return StageContainerProbe }

type ErrUnsupportedCodec struct {
	CodecName string
	Err       error
}

func (e ErrUnsupportedCodec) Error() string {
	return fmt.Sprintf("unable to find an image decoder for '%s': %v", e.CodecName, e.Err)
}

func (e ErrUnsupportedCodec) Unwrap() error { return e.Err }
func (ErrUnsupportedCodec) Stage() Stage    { return StageCodecNegotiation }

type ErrDecoderInit struct {
	CodecName string
	Step      string
	Err       error
}

func (e ErrDecoderInit) Error() string {
	return fmt.Sprintf("unable to %s the '%s' decoder: %v", e.Step, e.CodecName, e.Err)
}

func (e ErrDecoderInit) Unwrap() error { return e.Err }
func (ErrDecoderInit) Stage() Stage    { return StageCodecNegotiation }

type ErrDecode struct {
	Step string
	Err  error
}

func (e ErrDecode) Error() string {
	return fmt.Sprintf("unable to %s: %v", e.Step, e.Err)
}

func (e ErrDecode) Unwrap() error { return e.Err }
func (ErrDecode) Stage() Stage    { return StageFrameDecoding }

type ErrUnsupportedLayout struct {
	PixelFormat pixfmt.PixelFormat
	Reason      string
}

func (e ErrUnsupportedLayout) Error() string {
	return fmt.Sprintf("unsupported icon pixel format %s: %s", e.PixelFormat, e.Reason)
}

func (ErrUnsupportedLayout) Stage() Stage { return StageSurfaceAdaptation }

// ErrUnmappedFormat means the pixel format is packed RGB, but there is no
// presentation format for it.
type ErrUnmappedFormat struct {
	PixelFormat pixfmt.PixelFormat
}

func (e ErrUnmappedFormat) Error() string {
	return fmt.Sprintf("unmapped icon pixel format %s (%d)", e.PixelFormat, int(e.PixelFormat))
}

func (ErrUnmappedFormat) Stage() Stage { return StageSurfaceAdaptation }

// ErrCanceled means the context was canceled before the stage could run.
type ErrCanceled struct {
	NextStage Stage
	Err       error
}

func (e ErrCanceled) Error() string {
	return fmt.Sprintf("canceled before %s: %v", e.NextStage, e.Err)
}

func (e ErrCanceled) Unwrap() error { return e.Err }
func (e ErrCanceled) Stage() Stage  { return e.NextStage }

type ErrCreateSurface struct {
	Err error
}

func (e ErrCreateSurface) Error() string {
	return fmt.Sprintf("unable to create the icon surface: %v", e.Err)
}

func (e ErrCreateSurface) Unwrap() error { return e.Err }
func (ErrCreateSurface) Stage() Stage    { return StageSurfaceAdaptation }
