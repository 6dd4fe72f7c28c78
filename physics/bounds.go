package physics

// Bounds is the rectangular world, origin at (0, 0)
type Bounds struct {
	Width, Height float64
}

// ClampAxis limits v to [half, limit-half]; if the body is wider than the world it is centred
func ClampAxis(v, half, limit float64) float64 {
	lo, hi := half, limit-half
	if lo > hi {
		return limit / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
