package pixfmt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEveryPixelFormatHasDescriptor(t *testing.T) {
	for pixFmt := None + 1; pixFmt < endOfPixelFormat; pixFmt++ {
		desc := pixFmt.Descriptor()
		require.NotNil(t, desc, "pixel format %d", int(pixFmt))
		require.Equal(t, pixFmt, FromName(desc.Name))
	}
	require.Nil(t, None.Descriptor())
	require.Nil(t, endOfPixelFormat.Descriptor())
}

func TestFromName(t *testing.T) {
	t.Parallel()

	require.Equal(t, RGBA, FromName("rgba"))
	require.Equal(t, RGB565BE, FromName(" RGB565BE "))
	require.Equal(t, ZeroRGB, FromName("0rgb"))
	require.Equal(t, None, FromName("p010le"))
	require.Equal(t, None, FromName(""))
}

func TestDescriptorBitsPerPixel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pixFmt PixelFormat
		want   int
	}{
		{RGB24, 24},
		{RGBA, 32},
		{RGBZero, 24},
		{RGB565BE, 16},
		{BGR555BE, 15},
		{RGB444BE, 12},
		{RGBA64BE, 64},
		{X2RGB10LE, 30},
		{X2BGR10LE, 30},
		{RGBAF16LE, 64},
		{RGBF32LE, 96},
		{RGBAF32BE, 128},
		{RGB8, 8},
		{RGB4, 4},
		{PAL8, 8},
		{YUV420P, 12},
		{YUV422P, 16},
		{YUV444P, 24},
		{YUV410P, 9},
		{YUVA420P, 20},
		{NV12, 12},
		{YUYV422, 16},
		{Gray, 8},
		{YA8, 16},
		{MonoBlack, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.pixFmt.String(), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.pixFmt.Descriptor().BitsPerPixel())
		})
	}
}

func TestFloatAndWideRGBArePackedRGB(t *testing.T) {
	t.Parallel()

	for _, name := range []string{
		"x2bgr10le", "x2bgr10be",
		"rgbf16le", "rgbf16be", "rgbaf16le", "rgbaf16be",
		"rgbf32le", "rgbf32be", "rgbaf32le", "rgbaf32be",
		"rgb96le", "rgb96be", "rgba128le", "rgba128be",
	} {
		pixFmt := FromName(name)
		require.NotEqual(t, None, pixFmt, name)
		require.True(t, pixFmt.Descriptor().IsPackedRGB(), name)
	}
	require.True(t, RGBAF32LE.Descriptor().Flags.Has(FlagFloat))
	require.False(t, RGB96LE.Descriptor().Flags.Has(FlagFloat))
}

func TestDescriptorClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pixFmt      PixelFormat
		isRGB       bool
		isPlanar    bool
		isPackedRGB bool
	}{
		{RGBA, true, false, true},
		{BGR24, true, false, true},
		{RGBA64BE, true, false, true},
		{GBRP, true, true, false},
		{YUV420P, false, true, false},
		{NV12, false, true, false},
		{YUYV422, false, false, false},
		{PAL8, false, false, false},
		{Gray, false, false, false},
		{CUDA, false, false, false},
	}

	for _, tt := range tests {
		desc := tt.pixFmt.Descriptor()
		require.Equal(t, tt.isRGB, desc.IsRGB(), tt.pixFmt.String())
		require.Equal(t, tt.isPlanar, desc.IsPlanar(), tt.pixFmt.String())
		require.Equal(t, tt.isPackedRGB, desc.IsPackedRGB(), tt.pixFmt.String())
	}
}

func TestDescriptorPlaneHeight(t *testing.T) {
	t.Parallel()

	require.Equal(t, 255, YUV420P.Descriptor().PlaneHeight(0, 255))
	require.Equal(t, 128, YUV420P.Descriptor().PlaneHeight(1, 255))
	require.Equal(t, 255, YUV422P.Descriptor().PlaneHeight(2, 255))
	require.Equal(t, 64, YUV410P.Descriptor().PlaneHeight(1, 255))
	require.Equal(t, 255, YUVA420P.Descriptor().PlaneHeight(3, 255))
	require.Equal(t, 255, GBRP.Descriptor().PlaneHeight(2, 255))
	require.Equal(t, 255, RGBA.Descriptor().PlaneHeight(0, 255))
}

func TestPixelFormatString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "none", None.String())
	require.Equal(t, "rgb565be", RGB565BE.String())
	require.Equal(t, "unknown_pixel_format_9999", PixelFormat(9999).String())
}
