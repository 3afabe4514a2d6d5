package goimage

import (
	"github.com/xaionaro-go/avicon/framework"
)

type Packet struct {
	data []byte
}

var _ framework.Packet = (*Packet)(nil)

func (p *Packet) Size() int {
	return len(p.data)
}

func (p *Packet) Free() {
	p.data = nil
}
