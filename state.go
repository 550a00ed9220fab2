package mdscan

// linePhase is the decomposition of the specification's overloaded
// "matched" counter (design note: "a clean re-implementation should split
// it into {prefixIdx, phase}"). Internally the Scanner still keeps a single
// matched counter -- so the exact arithmetic in the specification's §4.3
// carries over unchanged -- and the phase logic reaches it through the
// accessors below; only Serialize, Deserialize and scanEOF's post-pop clamp
// touch the counter directly.
type linePhase uint8

const (
	// phasePrefixMatching: matched < stack length. Reconsuming the
	// opening syntax of each already-open container, in order.
	phasePrefixMatching linePhase = iota
	// phaseOpening: matched == stack length. Looking for new block
	// openers at the current position.
	phaseOpening
	// phaseInline: matched > stack length. Mid-line / inline content.
	phaseInline
)

// Scanner is the entire persistent state of the block/inline scanner, as
// described in the specification's data model. A Scanner is not safe for
// concurrent use; the host is expected to serialize all calls, and to
// re-enter a Scanner only from a state produced by Deserialize.
type Scanner struct {
	stack blockStack

	// matched is the overloaded cursor from the specification: an index
	// into stack while phase() == phasePrefixMatching, or stack.len()
	// (phaseOpening) or stack.len()+1 (phaseInline) once the line prefix
	// has been fully reconsumed.
	matched int

	indentation int
	column      int

	codeSpanDelimiterLen int

	numEmphasisDelimiters     int
	numEmphasisDelimitersLeft int
	emphasisDelimitersIsOpen  bool
}

// New constructs a Scanner with an empty stack and zeroed counters,
// corresponding to the specification's create().
func New() *Scanner {
	return &Scanner{}
}

// Reset restores the Scanner to its freshly created state. Deserialize(nil)
// and Deserialize of a zero-length buffer both delegate to this.
func (s *Scanner) Reset() {
	*s = Scanner{}
}

// phase reports which of the three per-line phases the scanner is in. EOF
// handling (phase A) is not modeled here since it does not depend on
// matched at all; see Scan.
func (s *Scanner) phase() linePhase {
	switch {
	case s.matched < s.stack.len():
		return phasePrefixMatching
	case s.matched == s.stack.len():
		return phaseOpening
	default:
		return phaseInline
	}
}

// prefixIndex returns the index into the stack currently being
// reconsidered. Valid only when phase() == phasePrefixMatching.
func (s *Scanner) prefixIndex() int {
	return s.matched
}

// advanceMatchedOne moves to the next prefix index (ordinary continuation
// match, or the "MatchingDone" transition out of phaseOpening).
func (s *Scanner) advanceMatchedOne() {
	s.matched++
}

// advanceMatchedTwo applies the IndentedCodeBlock/FencedCode/new-block-open
// sentinel: it skips the phase that would otherwise reconsider this same
// stack position, since leaf containers such as code blocks never have
// block-opener syntax nested beneath them on the same line.
func (s *Scanner) advanceMatchedTwo() {
	s.matched += 2
}

// skipToInlinePhase jumps straight past phaseOpening, used by
// LazyContinuation (spec §4.3 Phase B) to skip directly to end-of-prefix
// without a MatchingDone token.
func (s *Scanner) skipToInlinePhase() {
	s.matched = s.stack.len() + 1
}

// resetLineState clears per-line counters, called whenever a LineEnding is
// emitted (spec invariant 2).
func (s *Scanner) resetLineState() {
	s.matched = 0
	s.indentation = 0
	s.column = 0
}

// checkInvariants is used only by tests: it reports whether the receiver
// currently satisfies the specification's structural invariant
// matched <= stack.len()+1.
func (s *Scanner) checkInvariants() bool {
	return s.matched <= s.stack.len()+1
}
