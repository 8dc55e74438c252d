package exprgen

import "github.com/gowermello/edgepush/scalar"

// op is one vocabulary entry: a name (for test failure messages) and an
// Apply closure taking exactly arity operands. Generate picks uniformly
// among the vocabulary entries whose arity it has operands for.
type op struct {
	name  string
	arity int
	apply func(args []scalar.Scalar) scalar.Scalar
}

func unary(name string, fn func(scalar.Scalar) scalar.Scalar) op {
	return op{name: name, arity: 1, apply: func(args []scalar.Scalar) scalar.Scalar {
		return fn(args[0])
	}}
}

func binary(name string, fn func(scalar.Scalar, scalar.Scalar) scalar.Scalar) op {
	return op{name: name, arity: 2, apply: func(args []scalar.Scalar) scalar.Scalar {
		return fn(args[0], args[1])
	}}
}

// defaultVocabulary sticks to operations that are total over the default
// leaf range (leafLo, leafHi) — no Log, Sqrt, Inv, Div, Asin, or Acos,
// whose domains can be violated by an arbitrary random DAG and would
// turn a property test flaky rather than exercising the algorithm.
// WithVocabulary overrides this for callers that want domain-restricted
// leaves and the full operator set.
func defaultVocabulary() []op {
	return []op{
		binary("add", scalar.Scalar.Add),
		binary("sub", scalar.Scalar.Sub),
		binary("mul", scalar.Scalar.Mul),
		unary("neg", scalar.Scalar.Neg),
		unary("sqr", scalar.Scalar.Sqr),
		unary("sin", scalar.Scalar.Sin),
		unary("cos", scalar.Scalar.Cos),
		unary("exp", dampedExp),
	}
}

// dampedExp scales down before exponentiating so a chain of exps over a
// depth-8 DAG cannot overflow to +Inf, which would poison every
// downstream finite-difference comparison in a property test.
func dampedExp(x scalar.Scalar) scalar.Scalar {
	return x.MulC(0.1).Exp()
}

// FullVocabulary additionally includes Div (and through it Inv), Log and
// Sqrt, each applied to a shifted or squared operand, for callers that
// control the leaf range themselves. Tan, Pow, Asin and Acos are not
// included.
func FullVocabulary() []op {
	v := defaultVocabulary()
	v = append(v,
		binary("div", func(a, b scalar.Scalar) scalar.Scalar { return a.Div(b.AddC(10)) }),
		unary("log", func(x scalar.Scalar) scalar.Scalar { return x.MulC(x.Val).AddC(1).Log() }),
		unary("sqrt", func(x scalar.Scalar) scalar.Scalar { return x.Sqr().AddC(1).Sqrt() }),
	)

	return v
}
