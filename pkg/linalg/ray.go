package linalg

// Ray is a half line starting at Origin
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// At returns the point at parametric distance t along the ray
func (r Ray) At(t float32) Vector3 {
	return r.Origin.Add(r.Direction.Scale(t))
}
