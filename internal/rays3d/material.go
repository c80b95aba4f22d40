package rays3d

import (
	"fmt"
	"math"
)

// Material carries the Phong coefficients plus the surface pattern.
// Reflective > 0 makes the world spawn recursive reflection rays.
type Material struct {
	Pattern    Pattern
	Ambient    Real
	Diffuse    Real
	Specular   Real
	Shininess  Real
	Reflective Real
}

// DefaultMaterial: solid white with the classic Phong coefficients.
func DefaultMaterial() Material {
	return Material{
		Pattern:   SolidPattern(white),
		Ambient:   DefaultAmbient,
		Diffuse:   DefaultDiffuse,
		Specular:  DefaultSpecular,
		Shininess: DefaultShininess,
	}
}

// NewMaterial validates coefficient ranges up front so the render loop
// never has to.
func NewMaterial(pattern Pattern, ambient, diffuse, specular, shininess, reflective Real) (Material, error) {
	in01 := func(x Real) bool { return x >= 0 && x <= 1 }
	if !in01(ambient) || !in01(diffuse) || !in01(specular) || !in01(reflective) {
		return Material{}, fmt.Errorf("ambient/diffuse/specular/reflective must be in [0,1]; got %.6g/%.6g/%.6g/%.6g",
			ambient, diffuse, specular, reflective)
	}
	if shininess < 0 {
		return Material{}, fmt.Errorf("shininess must be >= 0, got %.6g", shininess)
	}
	return Material{
		Pattern:    pattern,
		Ambient:    ambient,
		Diffuse:    diffuse,
		Specular:   specular,
		Shininess:  shininess,
		Reflective: reflective,
	}, nil
}

// Lighting evaluates the Phong model for one light. The ambient term is
// always present; in shadow it is the whole contribution. Channels stay
// unclamped so multiple lights accumulate correctly.
func (m Material) Lighting(obj *Shape, light Light, point, eyev, normalv Tuple, inShadow bool) RGB {
	effective := m.Pattern.AtShape(obj, point).MulC(light.Intensity)
	ambient := effective.Scale(m.Ambient)
	if inShadow {
		return ambient
	}

	lightv := light.Position.Sub(point).Norm()
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal <= 0 {
		// light on the other side of the surface
		return ambient
	}
	diffuse := effective.Scale(m.Diffuse * lightDotNormal)

	reflectv := lightv.Neg().Reflect(normalv)
	reflectDotEye := reflectv.Dot(eyev)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse)
	}
	specular := light.Intensity.Scale(m.Specular * math.Pow(reflectDotEye, m.Shininess))
	return ambient.Add(diffuse).Add(specular)
}
