// Package calc implements a four-function calculator and its terminal loop.
package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Operator is one of the four supported arithmetic symbols.
type Operator string

const (
	Add      Operator = "+"
	Subtract Operator = "-"
	Multiply Operator = "*"
	Divide   Operator = "/"
)

// Operators lists the supported operators in prompt order.
var Operators = []Operator{Add, Subtract, Multiply, Divide}

// ErrDivisionByZero is returned when dividing by zero.
var ErrDivisionByZero = errors.New("division by zero is not allowed")

// ErrInvalidOperator is returned for symbols outside Operators.
var ErrInvalidOperator = errors.New("invalid operator")

type binaryFunc func(a, b float64) (float64, error)

var dispatch = map[Operator]binaryFunc{
	Add: func(a, b float64) (float64, error) {
		return a + b, nil
	},
	Subtract: func(a, b float64) (float64, error) {
		return a - b, nil
	},
	Multiply: func(a, b float64) (float64, error) {
		return a * b, nil
	},
	Divide: func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	},
}

// ParseOperator returns the operator for s, ignoring surrounding whitespace.
func ParseOperator(s string) (Operator, error) {
	op := Operator(strings.TrimSpace(s))
	if _, ok := dispatch[op]; !ok {
		return "", fmt.Errorf("%w %q", ErrInvalidOperator, s)
	}
	return op, nil
}

// ParseNumber parses a decimal or scientific-notation number.
// NaN, infinities and hexadecimal literals are rejected.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	digits := strings.ToLower(strings.TrimLeft(s, "+-"))
	if strings.HasPrefix(digits, "0x") {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

// Apply computes a op b.
func Apply(op Operator, a, b float64) (float64, error) {
	fn, ok := dispatch[op]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrInvalidOperator, string(op))
	}
	return fn(a, b)
}

// FormatNumber renders v in its shortest round-trip form.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// operatorList returns "+, -, *, /".
func operatorList() string {
	names := make([]string, len(Operators))
	for i, op := range Operators {
		names[i] = string(op)
	}
	return strings.Join(names, ", ")
}
