package avicon

import (
	"context"
	"errors"

	"github.com/xaionaro-go/avicon/iconpath"
	"github.com/xaionaro-go/avicon/internal"
	"github.com/xaionaro-go/avicon/logger"
	"github.com/xaionaro-go/avicon/surface"
)

// Load decodes the application icon found by iconpath.Default.
//
// It returns nil if there is no usable icon; the reason is logged. A missing
// icon is never fatal. A returned surface must be released with Destroy.
func Load(ctx context.Context) *surface.Surface {
	return load(ctx, iconpath.Default(), NewDecoder(DefaultFramework()))
}

func load(ctx context.Context, resolver iconpath.Resolver, d *Decoder) *surface.Surface {
	path, err := resolver.Resolve(ctx)
	if err != nil {
		logFailure(ctx, ErrPathUnavailable{Err: err})
		return nil
	}
	return loadFromPath(ctx, d, path)
}

// LoadFromPath is Load for an explicit path.
func LoadFromPath(ctx context.Context, path string) *surface.Surface {
	return loadFromPath(ctx, NewDecoder(DefaultFramework()), path)
}

func loadFromPath(ctx context.Context, d *Decoder, path string) *surface.Surface {
	s, err := d.Decode(ctx, path)
	if err != nil {
		logFailure(logger.WithField(ctx, "path", path), err)
		return nil
	}
	return s
}

// Destroy releases a surface returned by Load or LoadFromPath, including
// the decoded frame it owns. It must be called exactly once per surface.
func Destroy(ctx context.Context, s *surface.Surface) {
	internal.Assert(ctx, s != nil, "destroying a nil icon")
	s.Destroy(ctx)
}

func logFailure(ctx context.Context, err error) {
	var stageErr StageError
	if errors.As(err, &stageErr) {
		ctx = logger.WithField(ctx, "stage", stageErr.Stage())
	}
	logger.Errorf(ctx, "unable to load the icon: %v", err)
}
