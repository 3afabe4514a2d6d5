package goimage

import (
	"fmt"
)

type errUnexpectedFormat struct {
	Expected string
	Actual   string
}

func (e errUnexpectedFormat) Error() string {
	return fmt.Sprintf("expected a '%s' image, got '%s'", e.Expected, e.Actual)
}

type ErrFileTooLarge struct {
	Size  int64
	Limit int64
}

func (e ErrFileTooLarge) Error() string {
	return fmt.Sprintf("the file is larger than %d bytes", e.Limit)
}
