package rays3d

import (
	"fmt"
	"sync"
)

type Category uint8

const (
	RayHit        Category = iota // ray hit a shape
	RayMiss                       // ray left the scene
	RayShadowed                   // shadow ray blocked before the light
	RayLit                        // shadow ray reached the light
	RayReflected                  // reflection ray spawned
	RayDepthLimit                 // reflection cut off at the recursion limit
)

type RayLog struct {
	Name      string
	Category  Category
	Origin    Tuple
	Direction Tuple
	Point     Tuple // hit point, if any
	Depth     int   // remaining reflection budget when logged
	T         Real  // parametric distance of the hit, if any
}

type RayLogCache struct {
	mu   sync.Mutex
	rays map[string][]RayLog // map of ray name to logs
}

var cache = &RayLogCache{
	rays: make(map[string][]RayLog),
}

func logRay(name string, category Category, r Ray, point Tuple, depth int, t Real) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.rays[name] = append(cache.rays[name], RayLog{
		Name:      name,
		Category:  category,
		Origin:    r.Origin,
		Direction: r.Direction,
		Point:     point,
		Depth:     depth,
		T:         t,
	})
}

func raysStats() {
	for k, v := range cache.rays {
		fmt.Printf("Ray type %s: %d logs\n", k, len(v))
	}
}
