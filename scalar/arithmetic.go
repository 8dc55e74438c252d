// File arithmetic.go implements the weight table of the edge-pushing
// specification's §4.2 for addition, subtraction, and multiplication,
// each in Scalar-Scalar and Scalar-constant form, plus the negation and
// division identities built on top of them. Every method here computes
// the primal, appends exactly one vertex (two for Div, which is defined
// as Mul(Inv(y)), and for RDivC, which is Inv(x).MulC(c)), and returns a
// fresh Scalar sharing the operand's tape.
package scalar

// Add returns x + y. Binary op: e1.w = 1, e2.w = 1, soW = 0.
func (x Scalar) Add(y Scalar) Scalar {
	checkSameTape(x, y)
	id := x.tp.NewBinary(x.id, y.id, 1, 1, 0)

	return wrap(x.tp, id, x.Val+y.Val)
}

// AddC returns x + c. Unary op: e1.w = 1, soW = 0.
func (x Scalar) AddC(c float64) Scalar {
	id := x.tp.NewUnary(x.id, 1, 0)

	return wrap(x.tp, id, x.Val+c)
}

// Sub returns x - y. Binary op: e1.w = 1, e2.w = -1, soW = 0.
func (x Scalar) Sub(y Scalar) Scalar {
	checkSameTape(x, y)
	id := x.tp.NewBinary(x.id, y.id, 1, -1, 0)

	return wrap(x.tp, id, x.Val-y.Val)
}

// SubC returns x - c. Unary op: e1.w = 1, soW = 0.
func (x Scalar) SubC(c float64) Scalar {
	id := x.tp.NewUnary(x.id, 1, 0)

	return wrap(x.tp, id, x.Val-c)
}

// RSubC returns c - x. Unary op: e1.w = -1, soW = 0.
func (x Scalar) RSubC(c float64) Scalar {
	id := x.tp.NewUnary(x.id, -1, 0)

	return wrap(x.tp, id, c-x.Val)
}

// Neg returns -x, defined as 0 - x per the specification (§4.2).
func (x Scalar) Neg() Scalar {
	return x.RSubC(0)
}

// Mul returns x * y. Binary op: e1.w = y.Val, e2.w = x.Val, soW = 1.
// If x and y occupy the same vertex (x.id == y.id), the reverse sweep's
// e1.to == e2.to doubling rule produces the correct second derivative of
// 2 (the spec's worked example, §8 scenario 3); Sqr (transcendental.go)
// offers a dedicated unary path for the same result without relying on
// that coincidence.
func (x Scalar) Mul(y Scalar) Scalar {
	checkSameTape(x, y)
	id := x.tp.NewBinary(x.id, y.id, y.Val, x.Val, 1)

	return wrap(x.tp, id, x.Val*y.Val)
}

// MulC returns x * c. Unary op: e1.w = c, soW = 0.
func (x Scalar) MulC(c float64) Scalar {
	id := x.tp.NewUnary(x.id, c, 0)

	return wrap(x.tp, id, x.Val*c)
}

// Div returns x / y, defined as x * Inv(y) per the specification (§4.2):
// two tape entries, one for Inv(y) and one for the multiplication.
func (x Scalar) Div(y Scalar) Scalar {
	checkSameTape(x, y)

	return x.Mul(y.Inv())
}

// DivC returns x / c. Equivalent to MulC(1/c): a single unary vertex,
// since c is a plain constant and 1/c is computed once at call time.
func (x Scalar) DivC(c float64) Scalar {
	return x.MulC(1 / c)
}

// RDivC returns c / x, defined as c * Inv(x): one tape entry for Inv(x),
// one for the constant multiplication.
func (x Scalar) RDivC(c float64) Scalar {
	return x.Inv().MulC(c)
}
