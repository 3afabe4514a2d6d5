package framework

import (
	"fmt"
)

type ErrDecoderNotFound struct {
	CodecName string
}

func (e ErrDecoderNotFound) Error() string {
	return fmt.Sprintf("no decoder for codec '%s'", e.CodecName)
}

// ErrForeignObject is returned when an object allocated by one framework
// is passed to another one.
type ErrForeignObject struct {
	Object any
}

func (e ErrForeignObject) Error() string {
	return fmt.Sprintf("%T was not allocated by this framework", e.Object)
}
