package rays3d

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Scene is a world plus the cameras that shoot it, in file order.
type Scene struct {
	World   *World
	Cameras []*Camera
}

// LoadScene reads a YAML scene description from path.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	scene, err := parseScene(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scene, nil
}

// parseScene decodes a scene description and builds every entry.
// Decoding is strict: unknown keys and malformed values abort the
// load so a typo cannot silently drop an object from the image.
func parseScene(data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var entries []rawEntry
	if err := dec.Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty scene description", ErrInvalidSceneEntry)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidSceneEntry, err)
	}

	var shapes []*Shape
	var lights []Light
	var cameras []*Camera
	names := map[string]bool{}
	for i, e := range entries {
		switch {
		case e.Light != nil && e.Body == nil && e.Camera == nil:
			light, err := e.Light.build()
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			lights = append(lights, light)
		case e.Body != nil && e.Light == nil && e.Camera == nil:
			shape, err := e.Body.build()
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			shapes = append(shapes, shape)
		case e.Camera != nil && e.Light == nil && e.Body == nil:
			cam, err := e.Camera.build()
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			if names[cam.Name] {
				return nil, fmt.Errorf("entry %d: %w: duplicate camera name %q", i, ErrInvalidSceneEntry, cam.Name)
			}
			names[cam.Name] = true
			cameras = append(cameras, cam)
		default:
			return nil, fmt.Errorf("entry %d: %w: expected exactly one of light, body or camera", i, ErrInvalidSceneEntry)
		}
	}

	if len(lights) == 0 {
		return nil, fmt.Errorf("%w: scene has no lights", ErrInvalidSceneEntry)
	}
	if len(cameras) == 0 {
		return nil, fmt.Errorf("%w: scene has no cameras", ErrInvalidSceneEntry)
	}
	return &Scene{World: NewWorld(shapes, lights), Cameras: cameras}, nil
}
