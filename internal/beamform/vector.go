package beamform

import "math"

// Vector3 represents a displacement in probe space.
type Vector3 struct {
	X, Y, Z Real
}

// Dot returns the dot product. Each product is rounded to float32 before the
// sum so the compiler cannot fuse it into an FMA.
func (a Vector3) Dot(b Vector3) Real {
	return Real(a.X*b.X) + Real(a.Y*b.Y) + Real(a.Z*b.Z)
}

// Len returns the Euclidean length of the vector, correctly rounded to float32.
func (v Vector3) Len() Real {
	return Real(math.Sqrt(float64(v.Dot(v))))
}
