package glu

import "github.com/go-gl/mathgl/mgl32"

// Invert4x4 inverts m by cofactor expansion. The determinant is expanded
// along the first column and must be non-zero; there is no tolerance.
func Invert4x4(m mgl32.Mat4) (mgl32.Mat4, error) {
	var inv mgl32.Mat4

	inv[0] = float32(m[5]*m[10]*m[15]) - float32(m[5]*m[11]*m[14]) - float32(m[9]*m[6]*m[15]) +
		float32(m[9]*m[7]*m[14]) + float32(m[13]*m[6]*m[11]) - float32(m[13]*m[7]*m[10])
	inv[4] = -float32(m[4]*m[10]*m[15]) + float32(m[4]*m[11]*m[14]) + float32(m[8]*m[6]*m[15]) -
		float32(m[8]*m[7]*m[14]) - float32(m[12]*m[6]*m[11]) + float32(m[12]*m[7]*m[10])
	inv[8] = float32(m[4]*m[9]*m[15]) - float32(m[4]*m[11]*m[13]) - float32(m[8]*m[5]*m[15]) +
		float32(m[8]*m[7]*m[13]) + float32(m[12]*m[5]*m[11]) - float32(m[12]*m[7]*m[9])
	inv[12] = -float32(m[4]*m[9]*m[14]) + float32(m[4]*m[10]*m[13]) + float32(m[8]*m[5]*m[14]) -
		float32(m[8]*m[6]*m[13]) - float32(m[12]*m[5]*m[10]) + float32(m[12]*m[6]*m[9])

	inv[1] = -float32(m[1]*m[10]*m[15]) + float32(m[1]*m[11]*m[14]) + float32(m[9]*m[2]*m[15]) -
		float32(m[9]*m[3]*m[14]) - float32(m[13]*m[2]*m[11]) + float32(m[13]*m[3]*m[10])
	inv[5] = float32(m[0]*m[10]*m[15]) - float32(m[0]*m[11]*m[14]) - float32(m[8]*m[2]*m[15]) +
		float32(m[8]*m[3]*m[14]) + float32(m[12]*m[2]*m[11]) - float32(m[12]*m[3]*m[10])
	inv[9] = -float32(m[0]*m[9]*m[15]) + float32(m[0]*m[11]*m[13]) + float32(m[8]*m[1]*m[15]) -
		float32(m[8]*m[3]*m[13]) - float32(m[12]*m[1]*m[11]) + float32(m[12]*m[3]*m[9])
	inv[13] = float32(m[0]*m[9]*m[14]) - float32(m[0]*m[10]*m[13]) - float32(m[8]*m[1]*m[14]) +
		float32(m[8]*m[2]*m[13]) + float32(m[12]*m[1]*m[10]) - float32(m[12]*m[2]*m[9])

	inv[2] = float32(m[1]*m[6]*m[15]) - float32(m[1]*m[7]*m[14]) - float32(m[5]*m[2]*m[15]) +
		float32(m[5]*m[3]*m[14]) + float32(m[13]*m[2]*m[7]) - float32(m[13]*m[3]*m[6])
	inv[6] = -float32(m[0]*m[6]*m[15]) + float32(m[0]*m[7]*m[14]) + float32(m[4]*m[2]*m[15]) -
		float32(m[4]*m[3]*m[14]) - float32(m[12]*m[2]*m[7]) + float32(m[12]*m[3]*m[6])
	inv[10] = float32(m[0]*m[5]*m[15]) - float32(m[0]*m[7]*m[13]) - float32(m[4]*m[1]*m[15]) +
		float32(m[4]*m[3]*m[13]) + float32(m[12]*m[1]*m[7]) - float32(m[12]*m[3]*m[5])
	inv[14] = -float32(m[0]*m[5]*m[14]) + float32(m[0]*m[6]*m[13]) + float32(m[4]*m[1]*m[14]) -
		float32(m[4]*m[2]*m[13]) - float32(m[12]*m[1]*m[6]) + float32(m[12]*m[2]*m[5])

	inv[3] = -float32(m[1]*m[6]*m[11]) + float32(m[1]*m[7]*m[10]) + float32(m[5]*m[2]*m[11]) -
		float32(m[5]*m[3]*m[10]) - float32(m[9]*m[2]*m[7]) + float32(m[9]*m[3]*m[6])
	inv[7] = float32(m[0]*m[6]*m[11]) - float32(m[0]*m[7]*m[10]) - float32(m[4]*m[2]*m[11]) +
		float32(m[4]*m[3]*m[10]) + float32(m[8]*m[2]*m[7]) - float32(m[8]*m[3]*m[6])
	inv[11] = -float32(m[0]*m[5]*m[11]) + float32(m[0]*m[7]*m[9]) + float32(m[4]*m[1]*m[11]) -
		float32(m[4]*m[3]*m[9]) - float32(m[8]*m[1]*m[7]) + float32(m[8]*m[3]*m[5])
	inv[15] = float32(m[0]*m[5]*m[10]) - float32(m[0]*m[6]*m[9]) - float32(m[4]*m[1]*m[10]) +
		float32(m[4]*m[2]*m[9]) + float32(m[8]*m[1]*m[6]) - float32(m[8]*m[2]*m[5])

	det := float32(m[0]*inv[0]) + float32(m[1]*inv[4]) + float32(m[2]*inv[8]) + float32(m[3]*inv[12])
	if det == 0 {
		return mgl32.Mat4{}, ErrSingularMatrix
	}

	det = 1 / det
	for i := range inv {
		inv[i] *= det
	}
	return inv, nil
}
