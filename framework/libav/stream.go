package libav

import (
	"fmt"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avicon/framework"
)

type Stream struct {
	*astiav.Stream
}

var _ framework.Stream = (*Stream)(nil)

func (s *Stream) CodecName() string {
	return s.CodecParameters().CodecID().String()
}

func (s *Stream) Width() int {
	return s.CodecParameters().Width()
}

func (s *Stream) Height() int {
	return s.CodecParameters().Height()
}

func (s *Stream) String() string {
	cp := s.CodecParameters()
	return fmt.Sprintf("Stream(#%d, %s, %dx%d, %s)", s.Index(), cp.CodecID(), cp.Width(), cp.Height(), cp.PixelFormat())
}
