//go:build nolibav
// +build nolibav

package avicon

import (
	"github.com/xaionaro-go/avicon/framework"
	"github.com/xaionaro-go/avicon/framework/goimage"
)

// DefaultFramework returns the pure-Go decode framework, since this build
// has no FFmpeg.
func DefaultFramework() framework.Framework {
	return goimage.New()
}
