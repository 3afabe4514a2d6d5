//go:build !nolibav
// +build !nolibav

package avicon

import (
	"github.com/xaionaro-go/avicon/framework"
	"github.com/xaionaro-go/avicon/framework/libav"
)

// DefaultFramework returns the FFmpeg-backed decode framework; build with
// the nolibav tag to use the pure-Go one instead.
func DefaultFramework() framework.Framework {
	return libav.New()
}
