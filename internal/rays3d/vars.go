package rays3d

import "gopkg.in/yaml.v3"

var (
	Debug    = false // set to true for verbose debug output
	Progress = true  // set to false to silence [PROGRESS] prints during renders
	PPM      = false // set to true to also save plain PPM output
	PNG16    = false // set to true to save 16-bit PNGs instead of 8-bit
	BMP      = false // set to true to also save BMP output
	TIFF     = false // set to true to also save TIFF output
	// Compile time checks to ensure that the yaml unmarshaler interface is implemented by the raw triple types
	_ yaml.Unmarshaler = (*rawVec3)(nil)
	_ yaml.Unmarshaler = (*rawColor)(nil)
)
