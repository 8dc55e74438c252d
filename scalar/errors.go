package scalar

import "errors"

// ErrTapeMismatch is the panic value raised when a binary operation is
// given two Scalars built on different *tape.Tape instances. The
// specification (§7) leaves cross-tape contamination entirely undefined
// ("the user must not"); this is a best-effort refinement that turns the
// common case — mixing scalars from two live tapes — into a clear
// diagnostic via a cheap pointer-equality check, rather than silently
// producing a vertex with a parent id that means something else on its
// own tape. It cannot catch the case of a cleared-then-reused tape
// pointer, which remains undefined per the specification.
var ErrTapeMismatch = errors.New("scalar: operands belong to different tapes")
