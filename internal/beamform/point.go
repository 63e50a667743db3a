package beamform

// Real is the sample and coordinate precision of the whole pipeline.
// Reference images were produced in single precision, so it must stay float32.
type Real = float32

// Point3 is a position in probe space (metres).
type Point3 struct {
	X, Y, Z Real
}

// Sub returns the vector from q to p.
func (p Point3) Sub(q Point3) Vector3 {
	return Vector3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Point3) Real {
	return a.Sub(b).Len()
}
