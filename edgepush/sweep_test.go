package edgepush

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowermello/edgepush/scalar"
	"github.com/gowermello/edgepush/tape"
)

func TestRun_EmptyTapeError(t *testing.T) {
	tp := tape.NewTape()
	err := Run(tp)
	require.True(t, errors.Is(err, ErrEmptyTape))
}

// f(x, y) = x + y. Gradient is (1, 1), Hessian is all zero.
func TestRun_Addition(t *testing.T) {
	tp := tape.NewTape()
	x := scalar.NewOn(tp, 3)
	y := scalar.NewOn(tp, 4)
	z := x.Add(y)

	tp.SetAdjoint(z.ID(), 1)
	require.NoError(t, Run(tp))

	require.Equal(t, 1.0, tp.Adjoint(x.ID()))
	require.Equal(t, 1.0, tp.Adjoint(y.ID()))
	require.Equal(t, 0.0, tp.Hessian(x.ID(), x.ID()))
	require.Equal(t, 0.0, tp.Hessian(x.ID(), y.ID()))
	require.Equal(t, 0.0, tp.Hessian(y.ID(), y.ID()))
}

// f(x, y) = x * y. Gradient is (y, x), Hessian is [[0,1],[1,0]].
func TestRun_Multiplication(t *testing.T) {
	tp := tape.NewTape()
	x := scalar.NewOn(tp, 3)
	y := scalar.NewOn(tp, 5)
	z := x.Mul(y)

	tp.SetAdjoint(z.ID(), 1)
	require.NoError(t, Run(tp))

	require.Equal(t, 5.0, tp.Adjoint(x.ID()))
	require.Equal(t, 3.0, tp.Adjoint(y.ID()))
	require.Equal(t, 0.0, tp.Hessian(x.ID(), x.ID()))
	require.Equal(t, 0.0, tp.Hessian(y.ID(), y.ID()))
	require.Equal(t, 1.0, tp.Hessian(x.ID(), y.ID()))
}

// f(x) = x * x via Mul, relying on the e1.to==e2.to doubling rule.
// Gradient is 2x, Hessian is 2.
func TestRun_SquareViaMul(t *testing.T) {
	tp := tape.NewTape()
	x := scalar.NewOn(tp, 7)
	z := x.Mul(x)

	tp.SetAdjoint(z.ID(), 1)
	require.NoError(t, Run(tp))

	require.Equal(t, 14.0, tp.Adjoint(x.ID()))
	require.Equal(t, 2.0, tp.Hessian(x.ID(), x.ID()))
}

// f(x) = x * x via the dedicated Sqr primitive. Must match Mul(x, x).
func TestRun_SquareViaSqr(t *testing.T) {
	tp := tape.NewTape()
	x := scalar.NewOn(tp, 7)
	z := x.Sqr()

	tp.SetAdjoint(z.ID(), 1)
	require.NoError(t, Run(tp))

	require.Equal(t, 14.0, tp.Adjoint(x.ID()))
	require.Equal(t, 2.0, tp.Hessian(x.ID(), x.ID()))
}

// f(x) = exp(x). Gradient and every Hessian entry equal exp(x).
func TestRun_Exp(t *testing.T) {
	tp := tape.NewTape()
	x := scalar.NewOn(tp, 1.5)
	z := x.Exp()

	tp.SetAdjoint(z.ID(), 1)
	require.NoError(t, Run(tp))

	require.InDelta(t, z.Val, tp.Adjoint(x.ID()), 1e-12)
	require.InDelta(t, z.Val, tp.Hessian(x.ID(), x.ID()), 1e-12)
}

// f(x, y) = sin(x) * y. Gradient is (cos(x)*y, sin(x)).
// Hessian: d²/dx² = -sin(x)*y, d²/dxdy = cos(x), d²/dy² = 0.
func TestRun_SinTimesY(t *testing.T) {
	tp := tape.NewTape()
	x := scalar.NewOn(tp, 0.7)
	y := scalar.NewOn(tp, 2.0)
	z := x.Sin().Mul(y)

	tp.SetAdjoint(z.ID(), 1)
	require.NoError(t, Run(tp))

	cosx, sinx := math.Cos(x.Val), math.Sin(x.Val)
	require.InDelta(t, cosx*y.Val, tp.Adjoint(x.ID()), 1e-9)
	require.InDelta(t, sinx, tp.Adjoint(y.ID()), 1e-9)
	require.InDelta(t, -sinx*y.Val, tp.Hessian(x.ID(), x.ID()), 1e-9)
	require.InDelta(t, cosx, tp.Hessian(x.ID(), y.ID()), 1e-9)
	require.InDelta(t, 0.0, tp.Hessian(y.ID(), y.ID()), 1e-9)
}

// f(x, y) = log(x*x + y*y). Checks Hessian symmetry holds for a deeper
// DAG with shared second-order structure across two paths.
func TestRun_LogSumOfSquares_HessianSymmetric(t *testing.T) {
	tp := tape.NewTape()
	x := scalar.NewOn(tp, 1.2)
	y := scalar.NewOn(tp, -0.4)
	z := x.Sqr().Add(y.Sqr()).Log()

	tp.SetAdjoint(z.ID(), 1)
	require.NoError(t, Run(tp))

	require.Equal(t, tp.Hessian(x.ID(), y.ID()), tp.Hessian(y.ID(), x.ID()))
}

// f(x, y) = x*y + x (a DAG where x feeds two distinct non-leaf vertices),
// checked against a central finite-difference gradient.
func TestRun_SharedOperand_MatchesFiniteDifference(t *testing.T) {
	eval := func(xv, yv float64) float64 {
		tp := tape.NewTape()
		x := scalar.NewOn(tp, xv)
		y := scalar.NewOn(tp, yv)
		z := x.Mul(y).Add(x)

		return z.Val
	}

	tp := tape.NewTape()
	x := scalar.NewOn(tp, 2.0)
	y := scalar.NewOn(tp, 3.0)
	z := x.Mul(y).Add(x)

	tp.SetAdjoint(z.ID(), 1)
	require.NoError(t, Run(tp))

	const h = 1e-6
	dfdx := (eval(2.0+h, 3.0) - eval(2.0-h, 3.0)) / (2 * h)
	dfdy := (eval(2.0, 3.0+h) - eval(2.0, 3.0-h)) / (2 * h)

	require.InDelta(t, dfdx, tp.Adjoint(x.ID()), 1e-6)
	require.InDelta(t, dfdy, tp.Adjoint(y.ID()), 1e-6)
}
