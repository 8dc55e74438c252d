package scalar

// Lt, Le, Gt, Ge, Eq, and Ne compare Scalars by Val alone and have no
// effect on the tape, per the specification (§4.2): a comparison never
// produces a new vertex.
func (x Scalar) Lt(y Scalar) bool { return x.Val < y.Val }
func (x Scalar) Le(y Scalar) bool { return x.Val <= y.Val }
func (x Scalar) Gt(y Scalar) bool { return x.Val > y.Val }
func (x Scalar) Ge(y Scalar) bool { return x.Val >= y.Val }
func (x Scalar) Eq(y Scalar) bool { return x.Val == y.Val }
func (x Scalar) Ne(y Scalar) bool { return x.Val != y.Val }
