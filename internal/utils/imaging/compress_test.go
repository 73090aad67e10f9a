package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestCompressTranscodesToJPEG(t *testing.T) {
	out, err := Compress(encodePNG(t, 80, 60))
	require.NoError(t, err)

	config, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 80, config.Width)
	assert.Equal(t, 60, config.Height)
}

func TestCompressBoundsOversizedImages(t *testing.T) {
	out, err := Compress(encodePNG(t, 3200, 400))
	require.NoError(t, err)

	config, _, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)

	// resized to fit while keeping the aspect ratio
	assert.Equal(t, MaxImageWidth, config.Width)
	assert.Equal(t, 200, config.Height)
}

func TestCompressRejectsGarbage(t *testing.T) {
	_, err := Compress(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}
