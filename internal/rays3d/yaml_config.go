package rays3d

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Raw YAML scene nodes. Optional fields are pointers so omitted keys fall
// back to defaults; unknown keys are rejected by the strict decoder.

// rawVec3 decodes a YAML [x, y, z] triple.
type rawVec3 [3]Real

func (v *rawVec3) UnmarshalYAML(node *yaml.Node) error {
	var vals []Real
	if err := node.Decode(&vals); err != nil {
		return err
	}
	if len(vals) != 3 {
		return fmt.Errorf("%w: expected 3 components, got %d", ErrInvalidSceneEntry, len(vals))
	}
	copy(v[:], vals)
	return nil
}

// rawColor decodes a YAML [r, g, b] triple.
type rawColor [3]Real

func (c *rawColor) UnmarshalYAML(node *yaml.Node) error {
	var vals []Real
	if err := node.Decode(&vals); err != nil {
		return err
	}
	if len(vals) != 3 {
		return fmt.Errorf("%w: expected [r, g, b], got %d components", ErrInvalidSceneEntry, len(vals))
	}
	copy(c[:], vals)
	return nil
}

func (c rawColor) rgb() RGB { return RGB{c[0], c[1], c[2]} }

type rawEntry struct {
	Light  *rawLight  `yaml:"light,omitempty"`
	Body   *rawBody   `yaml:"body,omitempty"`
	Camera *rawCamera `yaml:"camera,omitempty"`
}

type rawLight struct {
	Type      string   `yaml:"type"`
	At        rawVec3  `yaml:"at"`
	Intensity rawColor `yaml:"intensity"`
}

func (rl rawLight) build() (Light, error) {
	if rl.Type != "point_light" {
		return Light{}, fmt.Errorf("%w: unknown light type %q", ErrInvalidSceneEntry, rl.Type)
	}
	return Light{
		Position:  Point(rl.At[0], rl.At[1], rl.At[2]),
		Intensity: rl.Intensity.rgb(),
	}, nil
}

type rawTransform struct {
	Type    string `yaml:"type"`
	To      []Real `yaml:"to,omitempty"`
	Degrees *Real  `yaml:"degrees,omitempty"`
	Radians *Real  `yaml:"radians,omitempty"`
}

// angle resolves degrees/radians; exactly one must be given.
func (rt rawTransform) angle() (Real, error) {
	switch {
	case rt.Degrees != nil && rt.Radians != nil:
		return 0, fmt.Errorf("%w: %s takes degrees or radians, not both", ErrInvalidSceneEntry, rt.Type)
	case rt.Degrees != nil:
		return *rt.Degrees * math.Pi / 180.0, nil
	case rt.Radians != nil:
		return *rt.Radians, nil
	default:
		return 0, fmt.Errorf("%w: %s needs degrees or radians", ErrInvalidSceneEntry, rt.Type)
	}
}

func (rt rawTransform) build() (Mat4, error) {
	switch rt.Type {
	case "translate", "scale":
		if rt.Degrees != nil || rt.Radians != nil {
			return Mat4{}, fmt.Errorf("%w: %s takes to, not an angle", ErrInvalidSceneEntry, rt.Type)
		}
		if len(rt.To) != 3 {
			return Mat4{}, fmt.Errorf("%w: %s needs to: [x, y, z], got %d components", ErrInvalidSceneEntry, rt.Type, len(rt.To))
		}
		if rt.Type == "translate" {
			return Translation(rt.To[0], rt.To[1], rt.To[2]), nil
		}
		return Scaling(rt.To[0], rt.To[1], rt.To[2]), nil
	case "rotate_x", "rotate_y", "rotate_z":
		if len(rt.To) != 0 {
			return Mat4{}, fmt.Errorf("%w: %s takes an angle, not to", ErrInvalidSceneEntry, rt.Type)
		}
		a, err := rt.angle()
		if err != nil {
			return Mat4{}, err
		}
		switch rt.Type {
		case "rotate_x":
			return RotationX(a), nil
		case "rotate_y":
			return RotationY(a), nil
		default:
			return RotationZ(a), nil
		}
	case "shear":
		if rt.Degrees != nil || rt.Radians != nil {
			return Mat4{}, fmt.Errorf("%w: shear takes to, not an angle", ErrInvalidSceneEntry)
		}
		if len(rt.To) != 6 {
			return Mat4{}, fmt.Errorf("%w: shear needs to: [xy, xz, yx, yz, zx, zy], got %d components", ErrInvalidSceneEntry, len(rt.To))
		}
		return Shearing(rt.To[0], rt.To[1], rt.To[2], rt.To[3], rt.To[4], rt.To[5]), nil
	default:
		return Mat4{}, fmt.Errorf("%w: unknown transform type %q", ErrInvalidSceneEntry, rt.Type)
	}
}

// composeTransforms multiplies the entries in file order, innermost
// first: the first listed op is the one applied directly to local
// coordinates, and same-kind runs accumulate, never collapse.
func composeTransforms(transforms []rawTransform) (Mat4, error) {
	M := I4()
	for _, rt := range transforms {
		T, err := rt.build()
		if err != nil {
			return Mat4{}, err
		}
		M = T.Mul(M)
	}
	return M, nil
}

type rawPattern struct {
	Type       string         `yaml:"type"`
	ThreeD     *bool          `yaml:"3d,omitempty"`
	ColorA     *rawColor      `yaml:"colorA,omitempty"`
	ColorB     *rawColor      `yaml:"colorB,omitempty"`
	Transforms []rawTransform `yaml:"transforms,omitempty"`
}

func (rp rawPattern) build() (Pattern, error) {
	var kind PatternKind
	switch rp.Type {
	case "solid":
		kind = PatternSolid
	case "stripe":
		kind = PatternStripe
	case "gradient":
		kind = PatternGradient
	case "ring":
		kind = PatternRing
	case "checkerboard":
		kind = PatternChecker
	default:
		return Pattern{}, fmt.Errorf("%w: unknown pattern type %q", ErrInvalidSceneEntry, rp.Type)
	}
	if rp.ThreeD != nil && kind != PatternChecker {
		return Pattern{}, fmt.Errorf("%w: 3d applies to checkerboard patterns only", ErrInvalidSceneEntry)
	}

	a, b := white, black
	if rp.ColorA != nil {
		a = rp.ColorA.rgb()
	}
	if rp.ColorB != nil {
		b = rp.ColorB.rgb()
	}
	threeD := true
	if rp.ThreeD != nil {
		threeD = *rp.ThreeD
	}

	M, err := composeTransforms(rp.Transforms)
	if err != nil {
		return Pattern{}, err
	}
	p, err := NewPattern(kind, a, b, threeD, M)
	if err != nil {
		return Pattern{}, fmt.Errorf("%w: pattern: %w", ErrInvalidSceneEntry, err)
	}
	return p, nil
}

type rawMaterial struct {
	Type       string      `yaml:"type"`
	Color      *rawColor   `yaml:"color,omitempty"`
	Pattern    *rawPattern `yaml:"pattern,omitempty"`
	Ambient    *Real       `yaml:"ambient,omitempty"`
	Diffuse    *Real       `yaml:"diffuse,omitempty"`
	Specular   *Real       `yaml:"specular,omitempty"`
	Shininess  *Real       `yaml:"shininess,omitempty"`
	Reflective *Real       `yaml:"reflective,omitempty"`
}

func (rm *rawMaterial) build() (Material, error) {
	if rm == nil {
		return DefaultMaterial(), nil
	}
	if rm.Type != "phong" {
		return Material{}, fmt.Errorf("%w: unknown material type %q", ErrInvalidSceneEntry, rm.Type)
	}
	if rm.Color != nil && rm.Pattern != nil {
		return Material{}, fmt.Errorf("%w: material takes color or pattern, not both", ErrInvalidSceneEntry)
	}

	pattern := SolidPattern(white)
	if rm.Color != nil {
		pattern = SolidPattern(rm.Color.rgb())
	}
	if rm.Pattern != nil {
		p, err := rm.Pattern.build()
		if err != nil {
			return Material{}, err
		}
		pattern = p
	}

	val := func(p *Real, def Real) Real {
		if p != nil {
			return *p
		}
		return def
	}
	mat, err := NewMaterial(
		pattern,
		val(rm.Ambient, DefaultAmbient),
		val(rm.Diffuse, DefaultDiffuse),
		val(rm.Specular, DefaultSpecular),
		val(rm.Shininess, DefaultShininess),
		val(rm.Reflective, 0),
	)
	if err != nil {
		return Material{}, fmt.Errorf("%w: material: %w", ErrInvalidSceneEntry, err)
	}
	return mat, nil
}

type rawBody struct {
	Type       string         `yaml:"type"`
	Material   *rawMaterial   `yaml:"material,omitempty"`
	Transforms []rawTransform `yaml:"transforms,omitempty"`
}

func (rb rawBody) build() (*Shape, error) {
	M, err := composeTransforms(rb.Transforms)
	if err != nil {
		return nil, err
	}
	mat, err := rb.Material.build()
	if err != nil {
		return nil, err
	}
	var shape *Shape
	switch rb.Type {
	case "sphere":
		shape, err = NewSphere(M, mat)
	case "plane":
		shape, err = NewPlane(M, mat)
	default:
		return nil, fmt.Errorf("%w: unknown body type %q", ErrInvalidSceneEntry, rb.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSceneEntry, rb.Type, err)
	}
	return shape, nil
}

type rawCamera struct {
	Name        string  `yaml:"name"`
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	FieldOfView Real    `yaml:"field_of_view"`
	From        rawVec3 `yaml:"from"`
	To          rawVec3 `yaml:"to"`
	Up          rawVec3 `yaml:"up"`
}

func (rc rawCamera) build() (*Camera, error) {
	if rc.Name == "" {
		return nil, fmt.Errorf("%w: camera needs a name", ErrInvalidSceneEntry)
	}
	cam, err := NewCameraLookAt(
		rc.Name,
		rc.Width, rc.Height,
		rc.FieldOfView,
		Point(rc.From[0], rc.From[1], rc.From[2]),
		Point(rc.To[0], rc.To[1], rc.To[2]),
		Vector(rc.Up[0], rc.Up[1], rc.Up[2]),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: camera %q: %w", ErrInvalidSceneEntry, rc.Name, err)
	}
	return cam, nil
}
