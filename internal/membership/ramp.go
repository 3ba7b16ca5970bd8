package membership

// rampUp rises linearly from 0 at lo to 1 at hi.
// Callers guarantee lo < x < hi; the expression is kept in the (x-lo)/(hi-lo) form so
// degrees at the transition midpoints come out exact.
func rampUp(x, lo, hi float64) float64 {
	return (x - lo) / (hi - lo)
}

// rampDown falls linearly from 1 at lo to 0 at hi.
func rampDown(x, lo, hi float64) float64 {
	return (hi - x) / (hi - lo)
}

// Clamp constrains a value to [min, max] range
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
