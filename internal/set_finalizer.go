package internal

import (
	"context"
	"runtime"

	"github.com/xaionaro-go/avicon/logger"
)

// SetLeakFinalizer reports an object that became unreachable while isLeaked
// still returns true. It never frees anything itself: releasing is the
// owner's explicit job.
func SetLeakFinalizer[T any](
	ctx context.Context,
	obj *T,
	isLeaked func(*T) bool,
) {
	runtime.SetFinalizer(obj, func(obj *T) {
		if !isLeaked(obj) {
			return
		}
		logger.Errorf(ctx, "%T was garbage collected without being destroyed", obj)
	})
}

// ClearFinalizer removes a finalizer installed by SetLeakFinalizer.
func ClearFinalizer[T any](obj *T) {
	runtime.SetFinalizer(obj, nil)
}
