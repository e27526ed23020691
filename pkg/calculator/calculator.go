// Package calculator provides basic arithmetic operations.
//
// Every function is pure: it reads only its operands and never mutates
// shared state, so all of them are safe for concurrent use.
package calculator

import "errors"

// ErrDivisionByZero is returned by Divide when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// Number is any integer or floating-point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Add returns the sum of a and b.
func Add[T Number](a, b T) T {
	return a + b
}

// Subtract returns the difference between a and b.
func Subtract[T Number](a, b T) T {
	return a - b
}

// Multiply returns the product of a and b.
func Multiply[T Number](a, b T) T {
	return a * b
}

// Divide returns the quotient of a and b as a float64, even when both
// operands are integers and the division is exact.
// If b is 0, it returns ErrDivisionByZero.
func Divide[T Number](a, b T) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return float64(a) / float64(b), nil
}
