// descriptor.go holds the static pixel format descriptor table.

package pixfmt

type Flags uint

const (
	FlagBigEndian Flags = 1 << iota
	FlagPalette
	FlagBitstream
	FlagHWAccel
	FlagPlanar
	FlagRGB
	FlagAlpha
	FlagFloat
)

func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// Descriptor is a read-only classification of a pixel format.
type Descriptor struct {
	Name string

	// Depths are the bit depths of each component; its length is the
	// number of components.
	Depths []uint8

	// Log2ChromaW is the amount to shift the luma width right to find
	// the chroma width, Log2ChromaH likewise for the height.
	Log2ChromaW uint8
	Log2ChromaH uint8

	Flags Flags
}

// Descriptor returns the descriptor of the pixel format, or nil if the
// format is unknown.
func (f PixelFormat) Descriptor() *Descriptor {
	desc, ok := descriptors[f]
	if !ok {
		return nil
	}
	return &desc
}

// IsRGB reports whether the color model is RGB.
func (d *Descriptor) IsRGB() bool {
	return d.Flags.Has(FlagRGB)
}

// IsPlanar reports whether the components are stored in separate planes.
func (d *Descriptor) IsPlanar() bool {
	return d.Flags.Has(FlagPlanar)
}

// IsPackedRGB reports whether all RGB components are interleaved in a single plane.
func (d *Descriptor) IsPackedRGB() bool {
	return d.IsRGB() && !d.IsPlanar()
}

// BitsPerPixel returns the number of bits a pixel occupies on average,
// taking chroma subsampling into account; padding bits are not counted.
func (d *Descriptor) BitsPerPixel() int {
	log2PixelsPerChroma := uint(d.Log2ChromaW + d.Log2ChromaH)
	bits := 0
	for idx, depth := range d.Depths {
		shift := log2PixelsPerChroma
		if idx == 1 || idx == 2 {
			shift = 0
		}
		bits += int(depth) << shift
	}
	return bits >> log2PixelsPerChroma
}

// PlaneHeight returns the amount of rows in the given plane of a picture
// of the given height.
func (d *Descriptor) PlaneHeight(plane, height int) int {
	if plane == 0 || !d.IsPlanar() || d.IsRGB() {
		return height
	}
	if plane == 3 {
		return height
	}
	// rounded up
	return -((-height) >> d.Log2ChromaH)
}

func depths(values ...uint8) []uint8 {
	return values
}

// descriptors covers every packed RGB format FFmpeg can decode to, so that
// each of them is classified as packed RGB rather than unknown. Non-RGB
// formats are listed only as far as the decoders of still images use them.
var descriptors = map[PixelFormat]Descriptor{
	RGB24:     {Name: "rgb24", Depths: depths(8, 8, 8), Flags: FlagRGB},
	BGR24:     {Name: "bgr24", Depths: depths(8, 8, 8), Flags: FlagRGB},
	ARGB:      {Name: "argb", Depths: depths(8, 8, 8, 8), Flags: FlagRGB | FlagAlpha},
	RGBA:      {Name: "rgba", Depths: depths(8, 8, 8, 8), Flags: FlagRGB | FlagAlpha},
	ABGR:      {Name: "abgr", Depths: depths(8, 8, 8, 8), Flags: FlagRGB | FlagAlpha},
	BGRA:      {Name: "bgra", Depths: depths(8, 8, 8, 8), Flags: FlagRGB | FlagAlpha},
	ZeroRGB:   {Name: "0rgb", Depths: depths(8, 8, 8), Flags: FlagRGB},
	RGBZero:   {Name: "rgb0", Depths: depths(8, 8, 8), Flags: FlagRGB},
	ZeroBGR:   {Name: "0bgr", Depths: depths(8, 8, 8), Flags: FlagRGB},
	BGRZero:   {Name: "bgr0", Depths: depths(8, 8, 8), Flags: FlagRGB},
	RGB565BE:  {Name: "rgb565be", Depths: depths(5, 6, 5), Flags: FlagRGB | FlagBigEndian},
	RGB565LE:  {Name: "rgb565le", Depths: depths(5, 6, 5), Flags: FlagRGB},
	BGR565BE:  {Name: "bgr565be", Depths: depths(5, 6, 5), Flags: FlagRGB | FlagBigEndian},
	BGR565LE:  {Name: "bgr565le", Depths: depths(5, 6, 5), Flags: FlagRGB},
	RGB555BE:  {Name: "rgb555be", Depths: depths(5, 5, 5), Flags: FlagRGB | FlagBigEndian},
	RGB555LE:  {Name: "rgb555le", Depths: depths(5, 5, 5), Flags: FlagRGB},
	BGR555BE:  {Name: "bgr555be", Depths: depths(5, 5, 5), Flags: FlagRGB | FlagBigEndian},
	BGR555LE:  {Name: "bgr555le", Depths: depths(5, 5, 5), Flags: FlagRGB},
	RGB444BE:  {Name: "rgb444be", Depths: depths(4, 4, 4), Flags: FlagRGB | FlagBigEndian},
	RGB444LE:  {Name: "rgb444le", Depths: depths(4, 4, 4), Flags: FlagRGB},
	BGR444BE:  {Name: "bgr444be", Depths: depths(4, 4, 4), Flags: FlagRGB | FlagBigEndian},
	BGR444LE:  {Name: "bgr444le", Depths: depths(4, 4, 4), Flags: FlagRGB},
	RGB48BE:   {Name: "rgb48be", Depths: depths(16, 16, 16), Flags: FlagRGB | FlagBigEndian},
	RGB48LE:   {Name: "rgb48le", Depths: depths(16, 16, 16), Flags: FlagRGB},
	BGR48BE:   {Name: "bgr48be", Depths: depths(16, 16, 16), Flags: FlagRGB | FlagBigEndian},
	BGR48LE:   {Name: "bgr48le", Depths: depths(16, 16, 16), Flags: FlagRGB},
	RGBA64BE:  {Name: "rgba64be", Depths: depths(16, 16, 16, 16), Flags: FlagRGB | FlagAlpha | FlagBigEndian},
	RGBA64LE:  {Name: "rgba64le", Depths: depths(16, 16, 16, 16), Flags: FlagRGB | FlagAlpha},
	BGRA64BE:  {Name: "bgra64be", Depths: depths(16, 16, 16, 16), Flags: FlagRGB | FlagAlpha | FlagBigEndian},
	BGRA64LE:  {Name: "bgra64le", Depths: depths(16, 16, 16, 16), Flags: FlagRGB | FlagAlpha},
	RGB8:      {Name: "rgb8", Depths: depths(3, 3, 2), Flags: FlagRGB},
	BGR8:      {Name: "bgr8", Depths: depths(3, 3, 2), Flags: FlagRGB},
	RGB4:      {Name: "rgb4", Depths: depths(1, 2, 1), Flags: FlagRGB | FlagBitstream},
	BGR4:      {Name: "bgr4", Depths: depths(1, 2, 1), Flags: FlagRGB | FlagBitstream},
	RGB4Byte:  {Name: "rgb4_byte", Depths: depths(1, 2, 1), Flags: FlagRGB},
	BGR4Byte:  {Name: "bgr4_byte", Depths: depths(1, 2, 1), Flags: FlagRGB},
	X2RGB10LE: {Name: "x2rgb10le", Depths: depths(10, 10, 10), Flags: FlagRGB},
	X2RGB10BE: {Name: "x2rgb10be", Depths: depths(10, 10, 10), Flags: FlagRGB | FlagBigEndian},
	X2BGR10LE: {Name: "x2bgr10le", Depths: depths(10, 10, 10), Flags: FlagRGB},
	X2BGR10BE: {Name: "x2bgr10be", Depths: depths(10, 10, 10), Flags: FlagRGB | FlagBigEndian},
	RGBF16BE:  {Name: "rgbf16be", Depths: depths(16, 16, 16), Flags: FlagRGB | FlagFloat | FlagBigEndian},
	RGBF16LE:  {Name: "rgbf16le", Depths: depths(16, 16, 16), Flags: FlagRGB | FlagFloat},
	RGBAF16BE: {Name: "rgbaf16be", Depths: depths(16, 16, 16, 16), Flags: FlagRGB | FlagAlpha | FlagFloat | FlagBigEndian},
	RGBAF16LE: {Name: "rgbaf16le", Depths: depths(16, 16, 16, 16), Flags: FlagRGB | FlagAlpha | FlagFloat},
	RGBF32BE:  {Name: "rgbf32be", Depths: depths(32, 32, 32), Flags: FlagRGB | FlagFloat | FlagBigEndian},
	RGBF32LE:  {Name: "rgbf32le", Depths: depths(32, 32, 32), Flags: FlagRGB | FlagFloat},
	RGBAF32BE: {Name: "rgbaf32be", Depths: depths(32, 32, 32, 32), Flags: FlagRGB | FlagAlpha | FlagFloat | FlagBigEndian},
	RGBAF32LE: {Name: "rgbaf32le", Depths: depths(32, 32, 32, 32), Flags: FlagRGB | FlagAlpha | FlagFloat},
	RGB96BE:   {Name: "rgb96be", Depths: depths(32, 32, 32), Flags: FlagRGB | FlagBigEndian},
	RGB96LE:   {Name: "rgb96le", Depths: depths(32, 32, 32), Flags: FlagRGB},
	RGBA128BE: {Name: "rgba128be", Depths: depths(32, 32, 32, 32), Flags: FlagRGB | FlagAlpha | FlagBigEndian},
	RGBA128LE: {Name: "rgba128le", Depths: depths(32, 32, 32, 32), Flags: FlagRGB | FlagAlpha},

	PAL8: {Name: "pal8", Depths: depths(8), Flags: FlagPalette | FlagAlpha},

	GBRP:     {Name: "gbrp", Depths: depths(8, 8, 8), Flags: FlagRGB | FlagPlanar},
	GBRAP:    {Name: "gbrap", Depths: depths(8, 8, 8, 8), Flags: FlagRGB | FlagPlanar | FlagAlpha},
	GBRP16BE: {Name: "gbrp16be", Depths: depths(16, 16, 16), Flags: FlagRGB | FlagPlanar | FlagBigEndian},
	GBRP16LE: {Name: "gbrp16le", Depths: depths(16, 16, 16), Flags: FlagRGB | FlagPlanar},

	YUV420P:  {Name: "yuv420p", Depths: depths(8, 8, 8), Log2ChromaW: 1, Log2ChromaH: 1, Flags: FlagPlanar},
	YUV422P:  {Name: "yuv422p", Depths: depths(8, 8, 8), Log2ChromaW: 1, Flags: FlagPlanar},
	YUV444P:  {Name: "yuv444p", Depths: depths(8, 8, 8), Flags: FlagPlanar},
	YUV440P:  {Name: "yuv440p", Depths: depths(8, 8, 8), Log2ChromaH: 1, Flags: FlagPlanar},
	YUV411P:  {Name: "yuv411p", Depths: depths(8, 8, 8), Log2ChromaW: 2, Flags: FlagPlanar},
	YUV410P:  {Name: "yuv410p", Depths: depths(8, 8, 8), Log2ChromaW: 2, Log2ChromaH: 2, Flags: FlagPlanar},
	YUVJ420P: {Name: "yuvj420p", Depths: depths(8, 8, 8), Log2ChromaW: 1, Log2ChromaH: 1, Flags: FlagPlanar},
	YUVJ422P: {Name: "yuvj422p", Depths: depths(8, 8, 8), Log2ChromaW: 1, Flags: FlagPlanar},
	YUVJ444P: {Name: "yuvj444p", Depths: depths(8, 8, 8), Flags: FlagPlanar},
	YUVJ440P: {Name: "yuvj440p", Depths: depths(8, 8, 8), Log2ChromaH: 1, Flags: FlagPlanar},
	YUVA420P: {Name: "yuva420p", Depths: depths(8, 8, 8, 8), Log2ChromaW: 1, Log2ChromaH: 1, Flags: FlagPlanar | FlagAlpha},
	YUVA422P: {Name: "yuva422p", Depths: depths(8, 8, 8, 8), Log2ChromaW: 1, Flags: FlagPlanar | FlagAlpha},
	YUVA444P: {Name: "yuva444p", Depths: depths(8, 8, 8, 8), Flags: FlagPlanar | FlagAlpha},
	NV12:     {Name: "nv12", Depths: depths(8, 8, 8), Log2ChromaW: 1, Log2ChromaH: 1, Flags: FlagPlanar},
	NV21:     {Name: "nv21", Depths: depths(8, 8, 8), Log2ChromaW: 1, Log2ChromaH: 1, Flags: FlagPlanar},

	YUYV422: {Name: "yuyv422", Depths: depths(8, 8, 8), Log2ChromaW: 1},
	UYVY422: {Name: "uyvy422", Depths: depths(8, 8, 8), Log2ChromaW: 1},

	Gray:      {Name: "gray", Depths: depths(8)},
	Gray16BE:  {Name: "gray16be", Depths: depths(16), Flags: FlagBigEndian},
	Gray16LE:  {Name: "gray16le", Depths: depths(16)},
	YA8:       {Name: "ya8", Depths: depths(8, 8), Flags: FlagAlpha},
	MonoWhite: {Name: "monow", Depths: depths(1), Flags: FlagBitstream},
	MonoBlack: {Name: "monob", Depths: depths(1), Flags: FlagBitstream},

	VAAPI:        {Name: "vaapi", Flags: FlagHWAccel},
	CUDA:         {Name: "cuda", Flags: FlagHWAccel},
	MediaCodec:   {Name: "mediacodec", Flags: FlagHWAccel},
	VideoToolbox: {Name: "videotoolbox", Flags: FlagHWAccel},
}
