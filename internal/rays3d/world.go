package rays3d

import "sort"

// World owns the shapes and lights for one render. It is immutable once
// built; the renderer shares it read-only across workers.
type World struct {
	Shapes []*Shape
	Lights []Light

	reflectionLimit int
}

func NewWorld(shapes []*Shape, lights []Light) *World {
	return &World{
		Shapes:          shapes,
		Lights:          lights,
		reflectionLimit: ReflectionLimit,
	}
}

// Intersect gathers the intersections of every owned shape, sorted
// ascending by t; the stable sort keeps insertion order on ties.
func (w *World) Intersect(r Ray) []Intersection {
	xs := make([]Intersection, 0, 2*len(w.Shapes))
	for _, s := range w.Shapes {
		t0, t1, n := s.localIntersect(r.Transform(s.inv))
		if n >= 1 {
			xs = append(xs, Intersection{T: t0, Shape: s})
		}
		if n == 2 {
			xs = append(xs, Intersection{T: t1, Shape: s})
		}
	}
	sort.SliceStable(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
	return xs
}

// IsShadowed casts a secondary ray from the (already biased) point toward
// the light; an occluder with eps < t < distance-to-light blocks it.
func (w *World) IsShadowed(point Tuple, light Light) bool {
	v := light.Position.Sub(point)
	distance := v.Len()
	r := Ray{Origin: point, Direction: v.Norm()}

	for _, x := range w.Intersect(r) {
		if x.T <= eps {
			continue
		}
		if x.T < distance {
			if Debug {
				logRay("shadow_blocked", RayShadowed, r, r.Position(x.T), 0, x.T)
			}
			return true
		}
		break
	}
	if Debug {
		logRay("shadow_clear", RayLit, r, Tuple{}, 0, 0)
	}
	return false
}

// shadeHit accumulates the Phong contribution of every light (shadow test
// per light) plus the reflected color. Nothing is clamped here.
func (w *World) shadeHit(c hitComps, remaining int) RGB {
	var surface RGB
	for _, light := range w.Lights {
		inShadow := w.IsShadowed(c.overPoint, light)
		surface = surface.Add(c.shape.Material.Lighting(c.shape, light, c.overPoint, c.eyev, c.normalv, inShadow))
	}
	return surface.Add(w.reflectedColor(c, remaining))
}

// reflectedColor spawns the recursive reflection ray from the over-point.
// Depth is bounded by the world's reflection limit.
func (w *World) reflectedColor(c hitComps, remaining int) RGB {
	refl := c.shape.Material.Reflective
	if refl == 0 {
		return black
	}
	r := Ray{Origin: c.overPoint, Direction: c.reflectv}
	if remaining <= 0 {
		if Debug {
			logRay("reflection_limit", RayDepthLimit, r, Tuple{}, remaining, 0)
		}
		return black
	}
	if Debug {
		logRay("reflected", RayReflected, r, Tuple{}, remaining, 0)
	}
	return w.colorAt(r, remaining-1).Scale(refl)
}

// ColorAt traces one ray to a color: no hit means background black.
func (w *World) ColorAt(r Ray) RGB {
	return w.colorAt(r, w.reflectionLimit)
}

func (w *World) colorAt(r Ray, remaining int) RGB {
	hit, ok := Hit(w.Intersect(r))
	if !ok {
		if Debug {
			logRay("miss_scene", RayMiss, r, Tuple{}, remaining, 0)
		}
		return black
	}
	if Debug {
		logRay("hit_scene", RayHit, r, r.Position(hit.T), remaining, hit.T)
	}
	return w.shadeHit(prepareComputations(hit, r), remaining)
}
