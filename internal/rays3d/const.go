package rays3d

type Real = float64

// Channel indices for readability.
const (
	ChR = 0
	ChG = 1
	ChB = 2
)

const (
	// eps governs float comparisons, discriminant/denominator zero-tests
	// and the shadow-ray bias offset.
	eps = 1e-5
	// epsDet is the invertibility threshold for 4x4 determinants.
	epsDet = 1e-12
	// ReflectionLimit bounds recursive reflection rays per pixel sample.
	ReflectionLimit = 5
	// DefaultShininess and friends are the Phong defaults applied when a
	// scene omits material fields.
	DefaultAmbient   = 0.1
	DefaultDiffuse   = 0.9
	DefaultSpecular  = 0.9
	DefaultShininess = 200.0
	// PPMMaxLine is the column limit for plain PPM output.
	PPMMaxLine = 70
)
