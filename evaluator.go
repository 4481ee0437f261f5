package fractal

import (
	"fmt"
	"math"
)

// EscapeRadiusSqrd is the squared modulus at which an orbit counts as escaped.
const EscapeRadiusSqrd = 4.0

// Evaluator is one escape-time formula.
//
// Escape iterates from z0 = (zr0, zi0) with constant c = (cr, ci) at most
// maxIter times. It returns how many steps the orbit stayed inside the
// escape radius: maxIter means the point never escaped, 0 means z0 or the
// first step already lay outside. Which of c and z0 follows the pixel is up
// to the caller.
type Evaluator interface {
	Escape(cr, ci float64, maxIter int, zr0, zi0 float64) int
	Name() string
}

// EvaluatorID selects an Evaluator from the fixed registry.
type EvaluatorID int

const (
	EvaluatorStandard EvaluatorID = iota
	EvaluatorBurningShip
	EvaluatorCubicReciprocal
)

var evaluators = [...]Evaluator{
	EvaluatorStandard:        standard{},
	EvaluatorBurningShip:     burningShip{},
	EvaluatorCubicReciprocal: cubicReciprocal{},
}

// Evaluators lists every registered id in registry order.
func Evaluators() []EvaluatorID {
	ids := make([]EvaluatorID, len(evaluators))
	for i := range ids {
		ids[i] = EvaluatorID(i)
	}
	return ids
}

// Evaluator returns the registered evaluator for id.
func (id EvaluatorID) Evaluator() (Evaluator, error) {
	if id < 0 || int(id) >= len(evaluators) {
		return nil, fmt.Errorf("evaluator %d: %w", int(id), ErrUnknownEvaluator)
	}
	return evaluators[id], nil
}

// Next returns the id after id, wrapping around the registry.
func (id EvaluatorID) Next() EvaluatorID {
	return EvaluatorID((int(id) + 1) % len(evaluators))
}

func (id EvaluatorID) String() string {
	e, err := id.Evaluator()
	if err != nil {
		return fmt.Sprintf("EvaluatorID(%d)", int(id))
	}
	return e.Name()
}

// standard iterates z = z² + c.
type standard struct{}

func (standard) Name() string { return "mandelbrot" }

func (standard) Escape(cr, ci float64, maxIter int, zr, zi float64) int {
	if zr*zr+zi*zi >= EscapeRadiusSqrd {
		return 0
	}
	for i := range maxIter {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		if zr*zr+zi*zi >= EscapeRadiusSqrd {
			return i
		}
	}
	return maxIter
}

// burningShip folds the cross term to its absolute value.
type burningShip struct{}

func (burningShip) Name() string { return "burning ship" }

func (burningShip) Escape(cr, ci float64, maxIter int, zr, zi float64) int {
	if zr*zr+zi*zi >= EscapeRadiusSqrd {
		return 0
	}
	for i := range maxIter {
		zr, zi = zr*zr-zi*zi+cr, math.Abs(2*zr*zi)+ci
		if zr*zr+zi*zi >= EscapeRadiusSqrd {
			return i
		}
	}
	return maxIter
}

// cubicReciprocal iterates z = 1 / (z + c)³.
type cubicReciprocal struct{}

var (
	one   = Complex{R: 1}
	cubed = Complex{R: 3}
)

func (cubicReciprocal) Name() string { return "cubic reciprocal" }

func (cubicReciprocal) Escape(cr, ci float64, maxIter int, zr, zi float64) int {
	c := Complex{R: cr, I: ci}
	z := Complex{R: zr, I: zi}
	if z.ModulusSqrd() >= EscapeRadiusSqrd {
		return 0
	}
	for i := range maxIter {
		z = one.Div(z.Add(c).Pow(cubed))
		if z.ModulusSqrd() >= EscapeRadiusSqrd {
			return i
		}
	}
	return maxIter
}
