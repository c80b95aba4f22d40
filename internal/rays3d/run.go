package rays3d

import (
	"path/filepath"
	"time"
)

// Run loads the scene at scenePath and renders every camera it
// defines, writing one image per camera into outDir.
func Run(scenePath, outDir string) error {
	scene, err := LoadScene(scenePath)
	if err != nil {
		return err
	}
	DebugLog("Scene: %d shape(s), %d light(s), %d camera(s)", len(scene.World.Shapes), len(scene.World.Lights), len(scene.Cameras))

	for _, cam := range scene.Cameras {
		start := time.Now()
		canvas := Render(cam, scene.World)
		elapsed := time.Since(start)
		DebugLog("Camera %q: %dx%d, time: %s", cam.Name, cam.HSize, cam.VSize, elapsed)

		base := filepath.Join(outDir, cam.Name)
		if PNG16 {
			err = canvas.SavePNG16(base + ".png")
		} else {
			err = canvas.SavePNG(base + ".png")
		}
		if err != nil {
			return err
		}
		DebugLog("Saved: %s.png", base)

		if PPM {
			if err := canvas.SavePPM(base + ".ppm"); err != nil {
				return err
			}
			DebugLog("Saved: %s.ppm", base)
		}
		if BMP {
			if err := canvas.SaveBMP(base + ".bmp"); err != nil {
				return err
			}
			DebugLog("Saved: %s.bmp", base)
		}
		if TIFF {
			if err := canvas.SaveTIFF(base + ".tiff"); err != nil {
				return err
			}
			DebugLog("Saved: %s.tiff", base)
		}
	}

	if Debug {
		raysStats()
	}
	return nil
}
