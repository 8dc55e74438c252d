package sparse

import "errors"

// ErrBadShape is the sole sentinel error in package sparse: Resize rejects
// a negative dimension. All other operations are unconditionally safe —
// Add and At accept any non-negative index regardless of the matrix's
// current logical dimension, because a tape accumulates second-order
// edges while it does not yet know its final vertex count, and only calls
// Resize once, right before propagation, per the accumulator's external
// contract (§4.1).
var ErrBadShape = errors.New("sparse: dimension must be >= 0")
