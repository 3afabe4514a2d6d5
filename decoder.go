package avicon

import (
	"context"

	"github.com/asticode/go-astikit"
	"github.com/xaionaro-go/avicon/framework"
	"github.com/xaionaro-go/avicon/logger"
	"github.com/xaionaro-go/avicon/surface"
)

// Decoder decodes image files into surfaces using a decode framework.
// It keeps no state between calls: every Decode acquires and releases its
// own resources.
type Decoder struct {
	Framework framework.Framework
}

func NewDecoder(fw framework.Framework) *Decoder {
	return &Decoder{Framework: fw}
}

// Decode decodes the first frame of the image file at path.
//
// Resources are released in the reverse order of acquisition when Decode
// returns; on success only the decoded frame survives, owned by the
// returned surface (see surface.Surface.Destroy).
func (d *Decoder) Decode(
	ctx context.Context,
	path string,
) (_ret *surface.Surface, _err error) {
	ctx = logger.WithField(ctx, "path", path)
	logger.Debugf(ctx, "Decode")
	defer func() { logger.Debugf(ctx, "/Decode: %v %v", _ret, _err) }()

	closer := astikit.NewCloser()
	defer func() {
		if err := closer.Close(); err != nil {
			logger.Errorf(ctx, "unable to release decoding resources: %v", err)
		}
	}()

	container, stream, err := probeContainer(logger.WithField(ctx, "stage", StageContainerProbe), d.Framework, path, closer)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, ErrCanceled{NextStage: StageCodecNegotiation, Err: err}
	}

	decoder, err := negotiateCodec(logger.WithField(ctx, "stage", StageCodecNegotiation), d.Framework, stream, closer)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, ErrCanceled{NextStage: StageFrameDecoding, Err: err}
	}

	frame, err := decodeFrame(logger.WithField(ctx, "stage", StageFrameDecoding), d.Framework, container, decoder)
	if err != nil {
		return nil, err
	}

	return adaptSurface(logger.WithField(ctx, "stage", StageSurfaceAdaptation), frame)
}
