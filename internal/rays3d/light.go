package rays3d

// Light is a point light source.
type Light struct {
	Position  Tuple // point
	Intensity RGB
}
