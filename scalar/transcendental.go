// File transcendental.go implements the transcendental row of the §4.2
// weight table: each method calls the corresponding math primitive —
// deliberately out of scope per the specification's exclusions — to
// compute the primal, then appends a unary vertex carrying the local
// first- and second-order partials from the table.
package scalar

import "math"

// Inv returns 1/x. Unary op: e1.w = -1/x², soW = 2/x³.
func (x Scalar) Inv() Scalar {
	v := 1 / x.Val
	id := x.tp.NewUnary(x.id, -v*v, 2*v*v*v)

	return wrap(x.tp, id, v)
}

// Sqrt returns √x. Unary op: e1.w = ½x^(-½), soW = -¼x^(-3/2).
func (x Scalar) Sqrt() Scalar {
	v := math.Sqrt(x.Val)
	w := 0.5 / v
	soW := -0.25 / (v * x.Val)
	id := x.tp.NewUnary(x.id, w, soW)

	return wrap(x.tp, id, v)
}

// Pow returns x^a for a constant exponent a. Unary op:
// e1.w = a*x^(a-1), soW = a(a-1)*x^(a-2).
func (x Scalar) Pow(a float64) Scalar {
	v := math.Pow(x.Val, a)
	w := a * math.Pow(x.Val, a-1)
	soW := a * (a - 1) * math.Pow(x.Val, a-2)
	id := x.tp.NewUnary(x.id, w, soW)

	return wrap(x.tp, id, v)
}

// Sqr returns x*x via a dedicated unary vertex: e1.w = 2x, soW = 2.
// Resolves the specification's Open Question about the binary-op
// assumption ∂²f/∂p₁²=∂²f/∂p₂²=0 being broken by same-operand products
// (§9): Sqr never builds a binary vertex with two edges to the same
// parent, so there is no doubling rule to rely on for correctness.
// Produces the same gradient and Hessian contribution as x.Mul(x).
func (x Scalar) Sqr() Scalar {
	id := x.tp.NewUnary(x.id, 2*x.Val, 2)

	return wrap(x.tp, id, x.Val*x.Val)
}

// Exp returns e^x. Unary op: e1.w = e^x, soW = e^x.
func (x Scalar) Exp() Scalar {
	v := math.Exp(x.Val)
	id := x.tp.NewUnary(x.id, v, v)

	return wrap(x.tp, id, v)
}

// Log returns ln(x). Unary op: e1.w = 1/x, soW = -1/x².
func (x Scalar) Log() Scalar {
	v := math.Log(x.Val)
	w := 1 / x.Val
	id := x.tp.NewUnary(x.id, w, -w*w)

	return wrap(x.tp, id, v)
}

// Sin returns sin(x). Unary op: e1.w = cos(x), soW = -sin(x).
func (x Scalar) Sin() Scalar {
	v := math.Sin(x.Val)
	c := math.Cos(x.Val)
	id := x.tp.NewUnary(x.id, c, -v)

	return wrap(x.tp, id, v)
}

// Cos returns cos(x). Unary op: e1.w = -sin(x), soW = -cos(x).
func (x Scalar) Cos() Scalar {
	v := math.Cos(x.Val)
	s := math.Sin(x.Val)
	id := x.tp.NewUnary(x.id, -s, -v)

	return wrap(x.tp, id, v)
}

// Tan returns tan(x). Unary op: e1.w = sec²(x), soW = 2*tan(x)*sec²(x).
func (x Scalar) Tan() Scalar {
	v := math.Tan(x.Val)
	sec2 := 1 / (math.Cos(x.Val) * math.Cos(x.Val))
	id := x.tp.NewUnary(x.id, sec2, 2*v*sec2)

	return wrap(x.tp, id, v)
}

// Asin returns arcsin(x). Unary op: e1.w = (1-x²)^(-½),
// soW = x*(1-x²)^(-3/2).
func (x Scalar) Asin() Scalar {
	v := math.Asin(x.Val)
	d := 1 - x.Val*x.Val
	w := 1 / math.Sqrt(d)
	id := x.tp.NewUnary(x.id, w, x.Val*w*w*w)

	return wrap(x.tp, id, v)
}

// Acos returns arccos(x). Unary op: e1.w = -(1-x²)^(-½),
// soW = -x*(1-x²)^(-3/2).
func (x Scalar) Acos() Scalar {
	v := math.Acos(x.Val)
	d := 1 - x.Val*x.Val
	w := 1 / math.Sqrt(d)
	id := x.tp.NewUnary(x.id, -w, -x.Val*w*w*w)

	return wrap(x.tp, id, v)
}
