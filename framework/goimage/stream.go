package goimage

import (
	"fmt"

	"github.com/xaionaro-go/avicon/framework"
)

type Stream struct {
	codecName string
	width     int
	height    int

	// Metadata holds EXIF fields (Orientation, Software, DateTime), if any.
	Metadata map[string]string
}

var _ framework.Stream = (*Stream)(nil)

func (s *Stream) Index() int        { return 0 }
func (s *Stream) CodecName() string { return s.codecName }
func (s *Stream) Width() int        { return s.width }
func (s *Stream) Height() int       { return s.height }

func (s *Stream) String() string {
	return fmt.Sprintf("Stream(#0, %s, %dx%d, %v)", s.codecName, s.width, s.height, s.Metadata)
}
