package rays3d

import (
	"fmt"
	"math"
)

// Camera maps pixel coordinates to world-space rays through a view
// transform. Derived quantities are cached at construction.
type Camera struct {
	Name         string
	HSize, VSize int
	FOV          Real // radians
	Transform    Mat4 // world-to-camera

	inv        Mat4
	pixelSize  Real
	halfWidth  Real
	halfHeight Real
}

// NewCamera derives half extents and pixel size from the field of view
// and aspect ratio, and caches the inverse view transform.
func NewCamera(name string, hsize, vsize int, fov Real, transform Mat4) (*Camera, error) {
	if hsize <= 0 || vsize <= 0 {
		return nil, fmt.Errorf("camera size must be positive, got %dx%d", hsize, vsize)
	}
	if fov <= 0 || fov >= math.Pi {
		return nil, fmt.Errorf("field of view must be in (0, π), got %.6g", fov)
	}
	inv, err := transform.Inverse()
	if err != nil {
		return nil, err
	}

	halfView := math.Tan(fov / 2)
	aspect := Real(hsize) / Real(vsize)
	var halfWidth, halfHeight Real
	if aspect >= 1 {
		halfWidth = halfView
		halfHeight = halfView / aspect
	} else {
		halfWidth = halfView * aspect
		halfHeight = halfView
	}

	c := &Camera{
		Name:       name,
		HSize:      hsize,
		VSize:      vsize,
		FOV:        fov,
		Transform:  transform,
		inv:        inv,
		pixelSize:  (halfWidth * 2) / Real(hsize),
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
	}
	DebugLog("Created camera %q: %dx%d fov=%.4f pixelSize=%.6f", name, hsize, vsize, fov, c.pixelSize)
	return c, nil
}

// NewCameraLookAt builds the view transform from eye/target/up first.
func NewCameraLookAt(name string, hsize, vsize int, fov Real, from, to, up Tuple) (*Camera, error) {
	vt, err := ViewTransform(from, to, up)
	if err != nil {
		return nil, err
	}
	return NewCamera(name, hsize, vsize, fov, vt)
}

// PixelSize is the world-space width of one pixel on the canvas plane.
func (c *Camera) PixelSize() Real { return c.pixelSize }

// RayForPixel unprojects the center of pixel (px,py) through the inverse
// view transform. The canvas plane sits at z=-1 in camera space.
func (c *Camera) RayForPixel(px, py int) Ray {
	xoffset := (Real(px) + 0.5) * c.pixelSize
	yoffset := (Real(py) + 0.5) * c.pixelSize

	worldX := c.halfWidth - xoffset
	worldY := c.halfHeight - yoffset

	pixel := c.inv.MulTuple(Point(worldX, worldY, -1))
	origin := c.inv.MulTuple(Point(0, 0, 0))
	direction := pixel.Sub(origin).Norm()

	return Ray{Origin: origin, Direction: direction}
}
