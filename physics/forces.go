package physics

import "gonum.org/v1/gonum/spatial/r3"

// RepelForce pushes a away from b with magnitude k/d². Coincident points
// exert no force.
func RepelForce(a, b r3.Vec, k float64) r3.Vec {
	d := r3.Sub(a, b)
	dist2 := r3.Norm2(d)
	if dist2 == 0 {
		return r3.Vec{}
	}
	return r3.Scale(k/dist2, r3.Unit(d))
}

// SpringForce pulls a toward b (or pushes it away when compressed) with
// magnitude stiffness·(len - rest).
func SpringForce(a, b r3.Vec, rest, stiffness float64) r3.Vec {
	d := r3.Sub(b, a)
	length := r3.Norm(d)
	if length == 0 {
		return r3.Vec{}
	}
	return r3.Scale(stiffness*(length-rest), r3.Unit(d))
}
