package avicon

import (
	"context"

	"github.com/asticode/go-astikit"
	"github.com/xaionaro-go/avicon/framework"
	"github.com/xaionaro-go/avicon/logger"
)

// negotiateCodec opens a decoder for the stream. The decoder context is
// registered in closer right after the allocation, so a context that failed
// to get configured or opened is released as well.
func negotiateCodec(
	ctx context.Context,
	fw framework.Framework,
	stream framework.Stream,
	closer *astikit.Closer,
) (_ framework.DecoderContext, _err error) {
	logger.Tracef(ctx, "negotiateCodec")
	defer func() { logger.Tracef(ctx, "/negotiateCodec: %v", _err) }()

	codec, err := fw.FindDecoder(ctx, stream)
	if err != nil {
		return nil, ErrUnsupportedCodec{CodecName: stream.CodecName(), Err: err}
	}
	codecName := codec.Name()

	decoder, err := codec.AllocContext(ctx)
	if err != nil {
		return nil, ErrDecoderInit{CodecName: codecName, Step: "allocate", Err: err}
	}
	closer.Add(decoder.Free)

	if err := decoder.ApplyStreamParameters(ctx, stream); err != nil {
		return nil, ErrDecoderInit{CodecName: codecName, Step: "configure", Err: err}
	}

	if err := decoder.Open(ctx); err != nil {
		return nil, ErrDecoderInit{CodecName: codecName, Step: "open", Err: err}
	}

	return decoder, nil
}
