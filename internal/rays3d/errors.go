package rays3d

import "errors"

// Error kinds surfaced by the engine. Wrap with fmt.Errorf("%w: ...") and
// match with errors.Is.
var (
	// ErrDegenerateTransform: inverse requested of a non-invertible matrix.
	ErrDegenerateTransform = errors.New("degenerate transform")
	// ErrInvalidSceneEntry: unrecognized shape/pattern/transform kind or a
	// malformed scene field; aborts loading the scene.
	ErrInvalidSceneEntry = errors.New("invalid scene entry")
	// ErrNumericDegeneracy: normalization of a zero-length vector.
	ErrNumericDegeneracy = errors.New("numeric degeneracy")
)
