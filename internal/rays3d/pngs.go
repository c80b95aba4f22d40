package rays3d

import (
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
)

// SavePNG writes the canvas as an 8-bit RGBA PNG.
func (c *Canvas) SavePNG(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, c.toNRGBA()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SavePNG16 writes a 16-bit-per-channel PNG. Lossless; the only
// quantization is the mapping from float color to 16 bits.
func (c *Canvas) SavePNG16(path string) error {
	toU16 := func(v Real) uint16 {
		if v <= 0 {
			return 0
		}
		if v > 1 {
			v = 1
		}
		return uint16(math.Round(v * 65535.0))
	}

	img := image.NewNRGBA64(image.Rect(0, 0, c.W, c.H))
	const pxBytes = 8 // 4 channels * 2 bytes/channel
	for y := 0; y < c.H; y++ {
		rowOff := y * img.Stride
		for x := 0; x < c.W; x++ {
			base := c.idx(x, y, ChR)
			r := toU16(c.Pix[base+0])
			g := toU16(c.Pix[base+1])
			b := toU16(c.Pix[base+2])
			a := uint16(0xFFFF)

			p := rowOff + x*pxBytes
			// NRGBA64 stores big-endian uint16 per channel: R, G, B, A.
			img.Pix[p+0] = uint8(r >> 8)
			img.Pix[p+1] = uint8(r)
			img.Pix[p+2] = uint8(g >> 8)
			img.Pix[p+3] = uint8(g)
			img.Pix[p+4] = uint8(b >> 8)
			img.Pix[p+5] = uint8(b)
			img.Pix[p+6] = uint8(a >> 8)
			img.Pix[p+7] = uint8(a)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression} // still lossless
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
