package rays3d

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// writePPM emits plain PPM (P3): header, then one image row per text
// block with lines wrapped before they exceed PPMMaxLine columns.
func (c *Canvas) writePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.W, c.H); err != nil {
		return err
	}
	for y := 0; y < c.H; y++ {
		col := 0
		for x := 0; x < c.W; x++ {
			base := c.idx(x, y, ChR)
			for ch := 0; ch < 3; ch++ {
				s := strconv.Itoa(int(byteChan(c.Pix[base+ch])))
				need := len(s)
				if col != 0 {
					need++ // separating space
				}
				if col+need > PPMMaxLine {
					bw.WriteByte('\n')
					col = 0
					need = len(s)
				}
				if col != 0 {
					bw.WriteByte(' ')
				}
				bw.WriteString(s)
				col += need
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// SavePPM writes the canvas as a plain PPM file.
func (c *Canvas) SavePPM(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.writePPM(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
