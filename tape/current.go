package tape

import "sync"

// currentMu guards currentTape, the package-level "current tape" pointer.
// This mirrors math/rand's global lock around its default Source: a
// convenience for the common case of one tape per goroutine, not a
// substitute for true thread-local storage, which Go does not provide
// natively and which this lineage's design notes (§9) explicitly warn
// against approximating with goroutine-id tricks.
var (
	currentMu   sync.Mutex
	currentTape *Tape
)

// Use installs t as the current tape, read back by Current. Passing nil
// clears it. Callers that need isolation stronger than "one tape per
// goroutine, installed before that goroutine starts recording" should
// thread a *Tape explicitly instead (NewOn in package scalar) and never
// call Use at all.
func Use(t *Tape) {
	currentMu.Lock()
	defer currentMu.Unlock()
	currentTape = t
}

// Current returns the tape last installed by Use, or nil if none has
// been installed (or it was cleared).
func Current() *Tape {
	currentMu.Lock()
	defer currentMu.Unlock()

	return currentTape
}
