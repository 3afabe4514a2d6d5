package avicon

import (
	"context"

	"github.com/asticode/go-astikit"
	"github.com/xaionaro-go/avicon/framework"
	"github.com/xaionaro-go/avicon/logger"
)

// probeContainer opens path and selects its image stream. The container is
// registered in closer as soon as it is allocated, so it is released even
// if opening it fails.
func probeContainer(
	ctx context.Context,
	fw framework.Framework,
	path string,
	closer *astikit.Closer,
) (_ framework.Container, _ framework.Stream, _err error) {
	logger.Tracef(ctx, "probeContainer")
	defer func() { logger.Tracef(ctx, "/probeContainer: %v", _err) }()

	container, err := fw.AllocContainer(ctx)
	if err != nil {
		return nil, nil, ErrCannotOpenContainer{Path: path, Err: err}
	}
	closer.Add(container.Free)

	if err := container.OpenInput(ctx, path); err != nil {
		return nil, nil, ErrCannotOpenContainer{Path: path, Err: err}
	}

	if err := container.FindStreamInfo(ctx); err != nil {
		return nil, nil, ErrNoStreamInfo{Err: err}
	}

	stream, err := container.FindBestImageStream(ctx)
	if err != nil {
		return nil, nil, ErrNoSuitableStream{Err: err}
	}
	logger.Debugf(ctx, "image stream: %s", stream)

	return container, stream, nil
}
