// Package arith provides the two arithmetic operations exposed by
// arith: integer addition and floating-point division.
//
// Both operations are pure. They hold no state, perform no I/O, and
// are safe for concurrent use.
package arith

import "errors"

// ErrDivisionByZero is returned by Divide when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// Calculator is the method-set form of the package operations, for
// callers that want a value to hold or substitute.
type Calculator struct{}

// New returns a ready-to-use Calculator.
func New() *Calculator {
	return &Calculator{}
}

// Add returns a + b. Overflow wraps using two's complement, so
// Add(math.MaxInt, 1) == math.MinInt.
func (c *Calculator) Add(a, b int) int {
	return Add(a, b)
}

// Divide returns a / b, or ErrDivisionByZero when b is zero.
func (c *Calculator) Divide(a, b float64) (float64, error) {
	return Divide(a, b)
}

// Add returns a + b with Go's wrapping int semantics.
func Add(a, b int) int {
	return a + b
}

// Divide returns a / b under IEEE-754 double precision. A zero divisor
// (either sign) yields ErrDivisionByZero and no division is performed.
// Infinite and NaN operands are not guarded.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}
