package libav

import (
	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avicon/framework"
)

type Packet struct {
	AVPacket *astiav.Packet
}

var _ framework.Packet = (*Packet)(nil)

func (p *Packet) Size() int {
	return p.AVPacket.Size()
}

func (p *Packet) Free() {
	p.AVPacket.Free()
}
