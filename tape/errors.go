package tape

import "errors"

// Sentinel errors for package tape, all prefixed "tape: " for
// grep-friendly logs and errors.Is comparability.
var (
	// ErrNoCurrentTape is the diagnostic panic value raised by callers
	// (package scalar's New) that need a package-level "current" tape but
	// none has been installed via Use. It is a sentinel, not a bare
	// string, so tests can assert on it with errors.Is after recover.
	ErrNoCurrentTape = errors.New("tape: no current tape installed; call Use(t) first")

	// ErrIDOverflow is the panic value raised by the recording primitives
	// if the backing vertex slice would need to exceed maxVertices entries. On
	// any realistic build this is unreachable; the check exists to
	// document the overflow policy rather than because it is expected to
	// fire (§7 of the specification).
	ErrIDOverflow = errors.New("tape: vertex id overflow")

	// ErrUnknownVertex is the panic value raised by accessors given a
	// VertexID that was never produced by this Tape (negative, or >= Len()).
	ErrUnknownVertex = errors.New("tape: unknown vertex id")
)
