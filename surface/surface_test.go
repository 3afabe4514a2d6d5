package surface

import (
	"context"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

type countingOwner struct {
	freed int
}

func (o *countingOwner) Free() {
	o.freed++
}

func TestNewValidates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	pixels := make([]byte, 4*4*4)
	tests := []struct {
		name   string
		pixels []byte
		width  int
		height int
		bpp    int
		pitch  int
		format Format
		owner  Owner
	}{
		{"no owner", pixels, 4, 4, 32, 16, FormatRGBA32, nil},
		{"unknown format", pixels, 4, 4, 32, 16, FormatUnknown, &countingOwner{}},
		{"zero width", pixels, 0, 4, 32, 16, FormatRGBA32, &countingOwner{}},
		{"too many bits", pixels, 4, 4, 33, 16, FormatRGBA32, &countingOwner{}},
		{"short pitch", pixels, 4, 4, 32, 15, FormatRGBA32, &countingOwner{}},
		{"short buffer", pixels[:63], 4, 4, 32, 16, FormatRGBA32, &countingOwner{}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := New(ctx, tt.pixels, tt.width, tt.height, tt.bpp, tt.pitch, tt.format, tt.owner)
			require.Error(t, err)
			require.Nil(t, s)
		})
	}
}

func TestNewAllowsPaddedRows(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// the last row does not need its padding
	pixels := make([]byte, 32*2+3*2)
	s, err := New(ctx, pixels, 2, 3, 15, 32, FormatRGB555, &countingOwner{})
	require.NoError(t, err)
	require.Equal(t, 32, s.Pitch)
	require.GreaterOrEqual(t, s.Pitch, s.Width*s.Format.BytesPerPixel())
	s.Destroy(ctx)
}

func TestDestroyFreesOwnerOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	owner := &countingOwner{}
	s, err := New(ctx, make([]byte, 3*2*2), 2, 2, 24, 6, FormatRGB24, owner)
	require.NoError(t, err)
	require.Equal(t, Owner(owner), s.Owner())

	s.Destroy(ctx)
	require.Equal(t, 1, owner.freed)
	require.Nil(t, s.Owner())
	require.Nil(t, s.Pixels)

	require.Panics(t, func() { s.Destroy(ctx) })
	require.Equal(t, 1, owner.freed)
}

func TestDestroyIndependentSurfaces(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ownerA, ownerB := &countingOwner{}, &countingOwner{}
	pixelsA := []byte{1, 2, 3, 4}
	pixelsB := []byte{5, 6, 7, 8}
	a, err := New(ctx, pixelsA, 1, 1, 32, 4, FormatRGBA32, ownerA)
	require.NoError(t, err)
	b, err := New(ctx, pixelsB, 1, 1, 32, 4, FormatRGBA32, ownerB)
	require.NoError(t, err)

	a.Destroy(ctx)
	require.Equal(t, 1, ownerA.freed)
	require.Equal(t, 0, ownerB.freed)
	require.Equal(t, color.NRGBA{R: 5, G: 6, B: 7, A: 8}, b.At(0, 0))

	b.Destroy(ctx)
	require.Equal(t, 1, ownerB.freed)
}

func TestDestroyWithoutOwnerPanics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() {
		(&Surface{}).Destroy(context.Background())
	})
}

func TestAt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		format Format
		pixel  []byte
		want   color.NRGBA
	}{
		{FormatRGB24, []byte{1, 2, 3}, color.NRGBA{1, 2, 3, 0xff}},
		{FormatBGR24, []byte{1, 2, 3}, color.NRGBA{3, 2, 1, 0xff}},
		{FormatARGB32, []byte{4, 1, 2, 3}, color.NRGBA{1, 2, 3, 4}},
		{FormatRGBA32, []byte{1, 2, 3, 4}, color.NRGBA{1, 2, 3, 4}},
		{FormatABGR32, []byte{4, 3, 2, 1}, color.NRGBA{1, 2, 3, 4}},
		{FormatBGRA32, []byte{3, 2, 1, 4}, color.NRGBA{1, 2, 3, 4}},
		{FormatRGB565, []byte{0xf8, 0x00}, color.NRGBA{0xff, 0, 0, 0xff}},
		{FormatRGB565, []byte{0x07, 0xe0}, color.NRGBA{0, 0xff, 0, 0xff}},
		{FormatBGR565, []byte{0xf8, 0x00}, color.NRGBA{0, 0, 0xff, 0xff}},
		{FormatRGB555, []byte{0x7c, 0x00}, color.NRGBA{0xff, 0, 0, 0xff}},
		{FormatBGR555, []byte{0x00, 0x1f}, color.NRGBA{0xff, 0, 0, 0xff}},
		{FormatRGB444, []byte{0x0f, 0x00}, color.NRGBA{0xff, 0, 0, 0xff}},
		{FormatBGR444, []byte{0x00, 0x80}, color.NRGBA{0, 0x88, 0, 0xff}},
	}
	for _, tt := range tests {
		s, err := New(ctx, tt.pixel, 1, 1, tt.format.BytesPerPixel()*8-4, len(tt.pixel), tt.format, &countingOwner{})
		require.NoError(t, err, tt.format.String())
		require.Equal(t, tt.want, s.At(0, 0), tt.format.String())
		require.Equal(t, color.NRGBA{}, s.At(1, 0), tt.format.String())
		s.Destroy(ctx)
	}
}

func TestNRGBASharesPixels(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	pixels := make([]byte, 8*2)
	s, err := New(ctx, pixels, 2, 2, 32, 8, FormatRGBA32, &countingOwner{})
	require.NoError(t, err)
	defer s.Destroy(ctx)

	img, ok := s.NRGBA()
	require.True(t, ok)
	require.Equal(t, s.Bounds(), img.Bounds())

	pixels[8+4] = 0x42
	require.Equal(t, uint8(0x42), img.NRGBAAt(1, 1).R)

	bgr, err := New(ctx, make([]byte, 3), 1, 1, 24, 3, FormatBGR24, &countingOwner{})
	require.NoError(t, err)
	defer bgr.Destroy(ctx)
	_, ok = bgr.NRGBA()
	require.False(t, ok)
}
