package rays3d

import (
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// SaveBMP writes the canvas as an 8-bit BMP.
func (c *Canvas) SaveBMP(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := bmp.Encode(f, c.toNRGBA()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SaveTIFF writes the canvas as a deflate-compressed TIFF.
func (c *Canvas) SaveTIFF(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	opts := &tiff.Options{Compression: tiff.Deflate}
	if err := tiff.Encode(f, c.toNRGBA(), opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
