package worldgen

// SplinePoint is a single (x, y) control point of a Spline.
type SplinePoint struct {
	X, Y float64
}

// Spline interpolates between a small ordered list of control points with
// smoothstep easing. Queries left of the first point or right of the last
// clamp to the nearest endpoint; the spline never extrapolates.
type Spline []SplinePoint

// At returns the spline value at t. A spline with fewer than two points
// returns the sole point's y, or 0 when empty.
func (s Spline) At(t float64) float64 {
	switch len(s) {
	case 0:
		return 0
	case 1:
		return s[0].Y
	}
	if t <= s[0].X {
		return s[0].Y
	}
	if t >= s[len(s)-1].X {
		return s[len(s)-1].Y
	}
	// The point lists are a handful of entries; a linear scan beats
	// anything cleverer.
	for i := 1; i < len(s); i++ {
		if t <= s[i].X {
			a, b := s[i-1], s[i]
			u := (t - a.X) / (b.X - a.X)
			u = u * u * (3 - 2*u)
			return a.Y + (b.Y-a.Y)*u
		}
	}
	return s[len(s)-1].Y
}
