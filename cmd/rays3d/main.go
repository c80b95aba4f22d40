package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/lukaszgryglicki/rays3d/internal/rays3d"
)

func main() {
	rays3d.Debug = os.Getenv("DEBUG") != ""
	rays3d.Progress = os.Getenv("QUIET") == ""
	rays3d.PPM = os.Getenv("PPM") != ""
	rays3d.PNG16 = os.Getenv("PNG16") != ""
	rays3d.BMP = os.Getenv("BMP") != ""
	rays3d.TIFF = os.Getenv("TIFF") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	scenePath := "scenes/scene.yaml"
	if len(os.Args) > 1 {
		scenePath = os.Args[1]
	}
	outDir := "."
	if len(os.Args) > 2 {
		outDir = os.Args[2]
	}
	if err := rays3d.Run(scenePath, outDir); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
