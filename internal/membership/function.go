package membership

// Function maps a crisp value to a membership degree in [0,1].
// Implementations are total: every finite x has a degree, values outside the
// variable's operating range saturate.
type Function interface {
	Degree(x float64) float64
}

// LeftShoulder is 1 up to Full and falls linearly to 0 at Zero.
type LeftShoulder struct {
	Full float64
	Zero float64
}

func (f LeftShoulder) Degree(x float64) float64 {
	if x <= f.Full {
		return 1
	}
	if x >= f.Zero {
		return 0
	}
	return rampDown(x, f.Full, f.Zero)
}

// Triangle rises from Left to 1 at Peak and falls back to 0 at Right.
type Triangle struct {
	Left  float64
	Peak  float64
	Right float64
}

func (f Triangle) Degree(x float64) float64 {
	if x <= f.Left || x >= f.Right {
		return 0
	}
	if x < f.Peak {
		return rampUp(x, f.Left, f.Peak)
	}
	return rampDown(x, f.Peak, f.Right)
}

// RightShoulder is 0 up to Zero and rises linearly to 1 at Full.
type RightShoulder struct {
	Zero float64
	Full float64
}

func (f RightShoulder) Degree(x float64) float64 {
	if x <= f.Zero {
		return 0
	}
	if x >= f.Full {
		return 1
	}
	return rampUp(x, f.Zero, f.Full)
}

// Breakpoints returns the x values where f changes slope.
func Breakpoints(f Function) []float64 {
	switch fn := f.(type) {
	case LeftShoulder:
		return []float64{fn.Full, fn.Zero}
	case Triangle:
		return []float64{fn.Left, fn.Peak, fn.Right}
	case RightShoulder:
		return []float64{fn.Zero, fn.Full}
	default:
		return nil
	}
}
