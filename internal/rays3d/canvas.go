package rays3d

import (
	"image"
	"math"
)

// Canvas is the render target: a flat row-major RGB grid, origin
// top-left.
type Canvas struct {
	W, H int
	Pix  []Real // flat: (y*W + x)*3 + c
}

// NewCanvas allocates a zero (black) pixel grid.
func NewCanvas(w, h int) *Canvas {
	if w <= 0 || h <= 0 {
		panic("canvas size must be positive")
	}
	return &Canvas{W: w, H: h, Pix: make([]Real, w*h*3)}
}

// Flat buffer index helper (c ∈ {ChR,ChG,ChB}).
func (c *Canvas) idx(x, y, ch int) int {
	return (y*c.W+x)*3 + ch
}

// SetPixel stores a color clamped to [0,1]. This is the single clamping
// point of the pipeline; intermediate light sums stay unclamped.
func (c *Canvas) SetPixel(x, y int, col RGB) {
	col = col.clamp01()
	base := c.idx(x, y, ChR)
	c.Pix[base+0] = col.R
	c.Pix[base+1] = col.G
	c.Pix[base+2] = col.B
}

// At reads a pixel back.
func (c *Canvas) At(x, y int) RGB {
	base := c.idx(x, y, ChR)
	return RGB{c.Pix[base+0], c.Pix[base+1], c.Pix[base+2]}
}

// byteChan maps one channel to 0..255 with rounding.
func byteChan(v Real) uint8 {
	if v <= 0 {
		return 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(math.Round(v * 255))
}

// ToRGBA flattens the canvas to 8-bit RGBA bytes (alpha 255) for
// in-memory consumers.
func (c *Canvas) ToRGBA() []uint8 {
	out := make([]uint8, 0, c.W*c.H*4)
	for i := 0; i < len(c.Pix); i += 3 {
		out = append(out,
			byteChan(c.Pix[i+ChR]),
			byteChan(c.Pix[i+ChG]),
			byteChan(c.Pix[i+ChB]),
			255,
		)
	}
	return out
}

// toNRGBA wraps the RGBA bytes in an image for the encoders; the layouts
// match exactly.
func (c *Canvas) toNRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    c.ToRGBA(),
		Stride: c.W * 4,
		Rect:   image.Rect(0, 0, c.W, c.H),
	}
}
