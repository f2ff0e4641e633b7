package ioadapter

import (
	"image"
	"image/png"
	"os"

	"github.com/inkroute/inkroute/output"
)

// WritePNG PNG-encodes a rasterized Mask to path. The engine itself only
// ever produces a (width, height, []byte) plane; PNG encoding stays out
// here with the rest of the I/O.
func WritePNG(path string, m output.Mask) error {
	img := &image.Gray{
		Pix:    m.Pix,
		Stride: m.Width,
		Rect:   image.Rect(0, 0, m.Width, m.Height),
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
