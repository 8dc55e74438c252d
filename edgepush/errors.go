package edgepush

import "errors"

// ErrEmptyTape is returned by Run when the tape has no vertices. Calling
// Run on an empty tape is always a caller mistake — there is nothing to
// have seeded an adjoint on — so it is reported rather than silently
// doing nothing.
var ErrEmptyTape = errors.New("edgepush: tape has no vertices")
