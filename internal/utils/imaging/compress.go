package imaging

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/gift"
)

const (
	// JPEGQuality is the fixed quality factor every stored recipe image
	// is transcoded to. Images are encoded once on save and never
	// re-encoded unless the file reference changes.
	JPEGQuality = 50

	MaxImageWidth  = 1600
	MaxImageHeight = 1600
)

// Compress decodes an uploaded image, bounds its dimensions and
// re-encodes it as JPEG at the fixed quality factor.
func Compress(src io.Reader) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if bounds.Dx() > MaxImageWidth || bounds.Dy() > MaxImageHeight {
		g := gift.New(gift.ResizeToFit(MaxImageWidth, MaxImageHeight, gift.LanczosResampling))
		resized := image.NewRGBA(g.Bounds(bounds))
		g.Draw(resized, img)
		img = resized
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
