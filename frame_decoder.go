package avicon

import (
	"context"

	"github.com/xaionaro-go/avicon/framework"
	"github.com/xaionaro-go/avicon/logger"
)

// decodeFrame decodes the first packet of the container into a frame.
//
// It makes exactly one send/receive attempt: decoders that need more than
// one packet to output a frame, or report "try again", are not supported.
// The packet is always freed here; the frame is freed on failure and
// handed over to the caller on success.
func decodeFrame(
	ctx context.Context,
	fw framework.Framework,
	container framework.Container,
	decoder framework.DecoderContext,
) (_ret framework.Frame, _err error) {
	logger.Tracef(ctx, "decodeFrame")
	defer func() { logger.Tracef(ctx, "/decodeFrame: %v", _err) }()

	frame, err := fw.AllocFrame(ctx)
	if err != nil {
		return nil, ErrDecode{Step: "allocate a frame", Err: err}
	}
	defer func() {
		if _err != nil {
			frame.Free()
		}
	}()

	pkt, err := fw.AllocPacket(ctx)
	if err != nil {
		return nil, ErrDecode{Step: "allocate a packet", Err: err}
	}
	defer pkt.Free()

	if err := container.ReadPacket(ctx, pkt); err != nil {
		return nil, ErrDecode{Step: "read the icon packet", Err: err}
	}
	logger.Tracef(ctx, "packet size: %d", pkt.Size())

	if err := decoder.SendPacket(ctx, pkt); err != nil {
		return nil, ErrDecode{Step: "send the icon packet", Err: err}
	}

	if err := decoder.ReceiveFrame(ctx, frame); err != nil {
		return nil, ErrDecode{Step: "receive the icon frame", Err: err}
	}

	return frame, nil
}
