package avicon

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avicon/framework"
	"github.com/xaionaro-go/avicon/pixfmt"
)

// fakeFramework counts live resources and records allocations and frees,
// and fails at the step named by failAt.
type fakeFramework struct {
	failAt   string
	onStep   func(name string)
	pixFmt   pixfmt.PixelFormat
	width    int
	height   int
	linesize int

	live        map[string]int
	doubleFrees int
	events      []string
}

var _ framework.Framework = (*fakeFramework)(nil)

func newFakeFramework(pixFmt pixfmt.PixelFormat, width, height, linesize int) *fakeFramework {
	return &fakeFramework{
		pixFmt:   pixFmt,
		width:    width,
		height:   height,
		linesize: linesize,
		live:     map[string]int{},
	}
}

func (fw *fakeFramework) step(name string) error {
	if fw.onStep != nil {
		fw.onStep(name)
	}
	if fw.failAt == name {
		return fmt.Errorf("injected failure at '%s'", name)
	}
	return nil
}

func (fw *fakeFramework) alloc(kind string) {
	fw.live[kind]++
	fw.events = append(fw.events, "alloc "+kind)
}

func (fw *fakeFramework) free(kind string, isFreed *bool) {
	if *isFreed {
		fw.doubleFrees++
		return
	}
	*isFreed = true
	fw.live[kind]--
	fw.events = append(fw.events, "free "+kind)
}

func (fw *fakeFramework) liveTotal() int {
	total := 0
	for _, count := range fw.live {
		total += count
	}
	return total
}

func (fw *fakeFramework) AllocContainer(ctx context.Context) (framework.Container, error) {
	if err := fw.step("alloc_container"); err != nil {
		return nil, err
	}
	fw.alloc("container")
	return &fakeContainer{fw: fw}, nil
}

func (fw *fakeFramework) FindDecoder(ctx context.Context, stream framework.Stream) (framework.Codec, error) {
	if err := fw.step("find_decoder"); err != nil {
		return nil, framework.ErrDecoderNotFound{CodecName: stream.CodecName()}
	}
	return &fakeCodec{fw: fw}, nil
}

func (fw *fakeFramework) AllocPacket(ctx context.Context) (framework.Packet, error) {
	if err := fw.step("alloc_packet"); err != nil {
		return nil, err
	}
	fw.alloc("packet")
	return &fakePacket{fw: fw}, nil
}

func (fw *fakeFramework) AllocFrame(ctx context.Context) (framework.Frame, error) {
	if err := fw.step("alloc_frame"); err != nil {
		return nil, err
	}
	fw.alloc("frame")
	return &fakeFrame{fw: fw}, nil
}

type fakeContainer struct {
	fw      *fakeFramework
	isFreed bool
}

func (c *fakeContainer) OpenInput(ctx context.Context, path string) error {
	return c.fw.step("open")
}

func (c *fakeContainer) FindStreamInfo(ctx context.Context) error {
	return c.fw.step("stream_info")
}

func (c *fakeContainer) FindBestImageStream(ctx context.Context) (framework.Stream, error) {
	if err := c.fw.step("best_stream"); err != nil {
		return nil, err
	}
	return fakeStream{width: c.fw.width, height: c.fw.height}, nil
}

func (c *fakeContainer) ReadPacket(ctx context.Context, pkt framework.Packet) error {
	if err := c.fw.step("read"); err != nil {
		return err
	}
	pkt.(*fakePacket).size = 42
	return nil
}

func (c *fakeContainer) Free() {
	c.fw.free("container", &c.isFreed)
}

type fakeStream struct {
	width  int
	height int
}

func (s fakeStream) Index() int        { return 0 }
func (s fakeStream) CodecName() string { return "fake" }
func (s fakeStream) Width() int        { return s.width }
func (s fakeStream) Height() int       { return s.height }
func (s fakeStream) String() string    { return "fakeStream" }

type fakeCodec struct {
	fw *fakeFramework
}

func (c *fakeCodec) Name() string { return "fake" }

func (c *fakeCodec) AllocContext(ctx context.Context) (framework.DecoderContext, error) {
	if err := c.fw.step("alloc_decoder"); err != nil {
		return nil, err
	}
	c.fw.alloc("decoder")
	return &fakeDecoder{fw: c.fw}, nil
}

type fakeDecoder struct {
	fw      *fakeFramework
	isFreed bool
}

func (d *fakeDecoder) ApplyStreamParameters(ctx context.Context, stream framework.Stream) error {
	return d.fw.step("apply")
}

func (d *fakeDecoder) Open(ctx context.Context) error {
	return d.fw.step("open_decoder")
}

func (d *fakeDecoder) SendPacket(ctx context.Context, pkt framework.Packet) error {
	return d.fw.step("send")
}

func (d *fakeDecoder) ReceiveFrame(ctx context.Context, frame framework.Frame) error {
	if err := d.fw.step("receive"); err != nil {
		return err
	}
	f := frame.(*fakeFrame)
	f.width, f.height, f.linesize = d.fw.width, d.fw.height, d.fw.linesize
	f.pixFmt = d.fw.pixFmt
	f.data = make([]byte, d.fw.linesize*d.fw.height)
	return nil
}

func (d *fakeDecoder) Free() {
	d.fw.free("decoder", &d.isFreed)
}

type fakePacket struct {
	fw      *fakeFramework
	size    int
	isFreed bool
}

func (p *fakePacket) Size() int { return p.size }

func (p *fakePacket) Free() {
	p.fw.free("packet", &p.isFreed)
}

type fakeFrame struct {
	fw       *fakeFramework
	width    int
	height   int
	linesize int
	pixFmt   pixfmt.PixelFormat
	data     []byte
	isFreed  bool
}

func (f *fakeFrame) Width() int                      { return f.width }
func (f *fakeFrame) Height() int                     { return f.height }
func (f *fakeFrame) PixelFormat() pixfmt.PixelFormat { return f.pixFmt }

func (f *fakeFrame) Linesize(plane int) int {
	if plane != 0 {
		return 0
	}
	return f.linesize
}

func (f *fakeFrame) PlaneData(plane int) ([]byte, error) {
	if plane != 0 || f.data == nil {
		return nil, fmt.Errorf("no plane #%d", plane)
	}
	return f.data, nil
}

func (f *fakeFrame) Free() {
	f.fw.free("frame", &f.isFreed)
	f.data = nil
}
