package mdscan

// Lexer is the driver interface the host supplies to a Scanner on every
// call. It is exactly the five lexer primitives in the specification:
// single-byte lookahead, advance (with a skip flag for whether the
// consumed byte belongs to the emitted token), end-of-token marking,
// end-of-file, and a result-symbol slot -- matching a real single-byte
// tree-sitter-style external scanner driver, which has no arbitrary-offset
// peek.
//
// Lexer implementations are not required to be safe for concurrent use;
// Scanner never calls a Lexer from more than one goroutine.
//
// Block-opener recognizers that need to look more than one byte ahead
// (fence runs, ordered-list digits, ATX hash counts) do so by calling
// Advance speculatively and deciding afterward whether to keep going: if a
// recognizer ultimately declines (returns false to its caller all the way
// up through Scan), the host is expected to roll back every Advance made
// during that call, per the no-poisoned-state contract in the
// specification. The lazy-continuation probe (wouldOpenBlock, in
// opener.go) uses the same technique over a throwaway copy of the relevant
// Scanner state plus a Lexer wrapper that only lets MarkEnd/SetResultSymbol
// become no-ops, rather than a re-entrant Scan call with a flag.
type Lexer interface {
	// Lookahead returns the byte at the current position without
	// consuming it. Its value is unspecified once EOF reports true.
	Lookahead() byte

	// Advance consumes the lookahead byte and moves the lexer forward.
	// skip tells the host whether the consumed byte is part of the
	// extent of the token eventually emitted (false) or merely skipped
	// past (true) -- matching the generated lexer driver's convention.
	Advance(skip bool)

	// MarkEnd records the current position as the end of the token
	// about to be emitted. Scanner calls it at least once before
	// returning true from Scan, and may call it more than once; the last
	// call sets the token end. Advances made after that last call are
	// lookahead only: the next Scan call resumes at the marked end.
	MarkEnd()

	// EOF reports whether the lexer has reached the end of input.
	EOF() bool

	// SetResultSymbol records which Symbol the scanner is emitting.
	SetResultSymbol(Symbol)
}
