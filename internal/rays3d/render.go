package rays3d

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// Render drives camera × world over every pixel of the canvas. Rows are
// dealt round-robin to NumCPU workers; the world and camera are shared
// read-only and each worker writes only its own rows, so no locks are
// needed.
func Render(cam *Camera, w *World) *Canvas {
	canvas := NewCanvas(cam.HSize, cam.VSize)

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if workers > cam.VSize {
		workers = cam.VSize
	}

	totalPixels := int64(cam.HSize) * int64(cam.VSize)
	var counter int64
	nextPrint := int64(1)
	if totalPixels >= 100 {
		nextPrint = totalPixels / 100 // ~1%
	}

	DebugLog("Render %q: %dx%d with %d workers", cam.Name, cam.HSize, cam.VSize, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w0 := 0; w0 < workers; w0++ {
		wid := w0
		go func() {
			defer wg.Done()
			for y := wid; y < cam.VSize; y += workers {
				for x := 0; x < cam.HSize; x++ {
					canvas.SetPixel(x, y, w.ColorAt(cam.RayForPixel(x, y)))
					done := atomic.AddInt64(&counter, 1)
					if Progress && done%nextPrint == 0 {
						fmt.Printf("[PROGRESS] %.2f%%\n", Real(done)*100/Real(totalPixels))
					}
				}
			}
		}()
	}
	wg.Wait()

	return canvas
}
