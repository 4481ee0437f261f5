package fractal

import "math"

// Complex is a real/imaginary pair. It is a value type: every operation
// returns a new Complex and leaves its operands untouched.
type Complex struct {
	R, I float64
}

func (z Complex) Add(w Complex) Complex {
	return Complex{R: z.R + w.R, I: z.I + w.I}
}

func (z Complex) Sub(w Complex) Complex {
	return Complex{R: z.R - w.R, I: z.I - w.I}
}

func (z Complex) Mul(w Complex) Complex {
	return Complex{
		R: z.R*w.R - z.I*w.I,
		I: z.R*w.I + z.I*w.R,
	}
}

// Div returns z / w. Dividing by zero yields the point at infinity (+Inf, 0)
// rather than NaN components, so escape tests see it as escaped.
func (z Complex) Div(w Complex) Complex {
	d := w.R*w.R + w.I*w.I
	if d == 0 {
		return Complex{R: math.Inf(1)}
	}
	inv := 1 / d
	return Complex{
		R: (z.R*w.R + z.I*w.I) * inv,
		I: (z.I*w.R - z.R*w.I) * inv,
	}
}

func (z Complex) Modulus() float64 {
	return math.Hypot(z.R, z.I)
}

func (z Complex) ModulusSqrd() float64 {
	return z.R*z.R + z.I*z.I
}

// Pow returns z raised to the complex power w on the principal branch.
// Zero raised to anything is zero.
func (z Complex) Pow(w Complex) Complex {
	if z.R == 0 && z.I == 0 {
		return Complex{}
	}
	e := w.Mul(Complex{R: math.Log(z.Modulus()), I: math.Atan2(z.I, z.R)})
	m := math.Exp(e.R)
	s, c := math.Sincos(e.I)
	return Complex{R: m * c, I: m * s}
}
