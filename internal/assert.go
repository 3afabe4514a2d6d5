// Package internal holds helpers shared by avicon packages and not meant
// for external use.
package internal

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avicon/logger"
)

// Assert logs and panics if mustBeTrue is false.
// It guards programming errors, never runtime conditions.
func Assert(
	ctx context.Context,
	mustBeTrue bool,
	extraArgs ...any,
) {
	if mustBeTrue {
		return
	}

	logger.Panic(ctx, "assertion failed", extraArgs)

	// a logger without a Panic level implementation returns here
	panic(fmt.Sprintf("assertion failed: %v", extraArgs))
}
