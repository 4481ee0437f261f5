package fractal

import (
	"math"
	"testing"
)

const eps = 1e-12

func near(a, b Complex, tol float64) bool {
	return math.Abs(a.R-b.R) <= tol && math.Abs(a.I-b.I) <= tol
}

func TestComplex_Arithmetic(t *testing.T) {
	a := Complex{R: 1, I: 2}
	b := Complex{R: 3, I: -1}

	tests := []struct {
		name string
		got  Complex
		want Complex
	}{
		{"add", a.Add(b), Complex{R: 4, I: 1}},
		{"sub", a.Sub(b), Complex{R: -2, I: 3}},
		{"mul", a.Mul(b), Complex{R: 5, I: 5}},
		{"div", a.Div(b), Complex{R: 0.1, I: 0.7}},
		{"div inverse of mul", a.Mul(b).Div(b), a},
	}
	for _, tt := range tests {
		if !near(tt.got, tt.want, eps) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestComplex_OperandsUnchanged(t *testing.T) {
	a := Complex{R: 1, I: 2}
	b := Complex{R: 3, I: 4}
	_ = a.Add(b).Mul(b).Pow(b)
	if a != (Complex{R: 1, I: 2}) || b != (Complex{R: 3, I: 4}) {
		t.Errorf("operands modified: a=%v b=%v", a, b)
	}
}

func TestComplex_Modulus(t *testing.T) {
	z := Complex{R: 3, I: 4}
	if got := z.Modulus(); got != 5 {
		t.Errorf("Modulus() = %v, want 5", got)
	}
	if got := z.ModulusSqrd(); got != 25 {
		t.Errorf("ModulusSqrd() = %v, want 25", got)
	}
}

func TestComplex_Pow(t *testing.T) {
	z := Complex{R: 1, I: 1}

	if got, want := z.Pow(Complex{R: 2}), z.Mul(z); !near(got, want, 1e-9) {
		t.Errorf("Pow(2) = %v, want %v", got, want)
	}
	if got, want := z.Pow(Complex{R: 3}), z.Mul(z).Mul(z); !near(got, want, 1e-9) {
		t.Errorf("Pow(3) = %v, want %v", got, want)
	}
	// i^i = e^(-pi/2)
	i := Complex{I: 1}
	if got, want := i.Pow(i), (Complex{R: math.Exp(-math.Pi / 2)}); !near(got, want, 1e-12) {
		t.Errorf("i^i = %v, want %v", got, want)
	}
}

func TestComplex_PowZeroBase(t *testing.T) {
	for _, w := range []Complex{{R: 3}, {R: 0}, {R: -2, I: 1}, {I: 5}} {
		if got := (Complex{}).Pow(w); got != (Complex{}) {
			t.Errorf("0^%v = %v, want (0,0)", w, got)
		}
	}
}

func TestComplex_DivByZero(t *testing.T) {
	got := Complex{R: 1}.Div(Complex{})
	if math.IsNaN(got.R) || math.IsNaN(got.I) {
		t.Fatalf("Div by zero produced NaN: %v", got)
	}
	if !math.IsInf(got.ModulusSqrd(), 1) {
		t.Errorf("Div by zero = %v, want point at infinity", got)
	}
}
