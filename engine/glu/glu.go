// Package glu provides the GLU-style projection helpers used for picking:
// perspective setup, forward projection and inverse projection on
// column-major 4x4 matrices.
//
// All arithmetic is single precision and evaluated in the order written.
// Products are converted to float32 explicitly wherever they feed an
// addition so the compiler cannot fuse them into multiply-adds.
package glu

import (
	"errors"
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrSingularMatrix is returned when a matrix has a determinant of exactly zero.
	ErrSingularMatrix = errors.New("glu: singular matrix")
	// ErrDegenerateW is returned when a transformed point ends up with w == 0.
	ErrDegenerateW = errors.New("glu: degenerate homogeneous coordinate")
)

// Epsilon is the tolerance used by EpsilonEquals.
const Epsilon = 1e-4

// EpsilonEquals reports whether a and b differ by less than Epsilon.
func EpsilonEquals(a, b float32) bool {
	return math32.Abs(a-b) < Epsilon
}

// Frustum holds the clip planes handed to a fixed-function frustum call.
type Frustum struct {
	Left, Right, Bottom, Top, Near, Far float32
}

// FrustumLoader multiplies the current matrix by a perspective frustum,
// like glFrustum.
type FrustumLoader interface {
	Frustum(left, right, bottom, top, zNear, zFar float64)
}

// Perspective computes the frustum gluPerspective would install.
func Perspective(fovy, aspect, zNear, zFar float32) Frustum {
	fH := float32(math.Tan(float64(fovy/360)*math.Pi)) * zNear
	fW := fH * aspect
	return Frustum{Left: -fW, Right: fW, Bottom: -fH, Top: fH, Near: zNear, Far: zFar}
}

// SetupPerspective installs the gluPerspective frustum on dst and returns it.
func SetupPerspective(dst FrustumLoader, fovy, aspect, zNear, zFar float32) Frustum {
	f := Perspective(fovy, aspect, zNear, zFar)
	dst.Frustum(float64(f.Left), float64(f.Right), float64(f.Bottom), float64(f.Top), float64(f.Near), float64(f.Far))
	return f
}

// Matrix returns the column-major matrix glFrustum builds for f.
func (f Frustum) Matrix() mgl32.Mat4 {
	l, r, b, t, n, fa := f.Left, f.Right, f.Bottom, f.Top, f.Near, f.Far
	var m mgl32.Mat4
	m[0] = 2 * n / (r - l)
	m[5] = 2 * n / (t - b)
	m[8] = (r + l) / (r - l)
	m[9] = (t + b) / (t - b)
	m[10] = -(fa + n) / (fa - n)
	m[11] = -1
	m[14] = -2 * fa * n / (fa - n)
	return m
}

// Project maps object coordinates to window coordinates.
func Project(objX, objY, objZ float32, modelView, projection mgl32.Mat4, viewport [4]int32) (mgl32.Vec3, error) {
	in := [4]float32{objX, objY, objZ, 1}
	eye := multMatrixVec(&modelView, in)
	c := multMatrixVec(&projection, eye)
	if c[3] == 0 {
		return mgl32.Vec3{}, ErrDegenerateW
	}
	c[0] /= c[3]
	c[1] /= c[3]
	c[2] /= c[3]

	return mgl32.Vec3{
		float32(viewport[0]) + (1+c[0])*float32(viewport[2])/2,
		float32(viewport[1]) + (1+c[1])*float32(viewport[3])/2,
		(1 + c[2]) / 2,
	}, nil
}

// Unproject maps window coordinates back to object coordinates.
func Unproject(winX, winY, winZ float32, modelView, projection mgl32.Mat4, viewport [4]int32) (mgl32.Vec3, error) {
	final, err := Invert4x4(MulMatrices(modelView, projection))
	if err != nil {
		return mgl32.Vec3{}, err
	}

	in := [4]float32{
		(winX-float32(viewport[0]))*2/float32(viewport[2]) - 1,
		(winY-float32(viewport[1]))*2/float32(viewport[3]) - 1,
		float32(2*winZ) - 1,
		1,
	}
	out := multMatrixVec(&final, in)
	if out[3] == 0 {
		return mgl32.Vec3{}, ErrDegenerateW
	}
	w := 1 / out[3]
	return mgl32.Vec3{out[0] * w, out[1] * w, out[2] * w}, nil
}

// MulMatrices multiplies a and b in storage order:
// result[i*4+j] = sum_k a[i*4+k] * b[k*4+j].
// With column-major storage MulMatrices(modelView, projection) yields
// projection * modelView.
func MulMatrices(a, b mgl32.Mat4) mgl32.Mat4 {
	var out mgl32.Mat4
	for i := 0; i < 4; i++ {
		row := i * 4
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += float32(a[row+k] * b[k*4+j])
			}
			out[row+j] = sum
		}
	}
	return out
}

func multMatrixVec(m *mgl32.Mat4, in [4]float32) [4]float32 {
	var out [4]float32
	for i := 0; i < 4; i++ {
		out[i] = float32(in[0]*m[i]) +
			float32(in[1]*m[4+i]) +
			float32(in[2]*m[8+i]) +
			float32(in[3]*m[12+i])
	}
	return out
}
