package mdscan

// Scan is the single entry point the host calls once per token, mirroring
// the specification's scan(handle, lexer, valid_symbols) -> bool. It
// dispatches to exactly one of the four phases in §4.3 and returns false
// when nothing in the current phase can produce a token the mask allows.
func (s *Scanner) Scan(lx Lexer, valid SymbolSet) bool {
	if lx.EOF() {
		return s.scanEOF(lx, valid)
	}

	switch s.phase() {
	case phasePrefixMatching:
		return s.scanPrefixMatching(lx, valid)
	case phaseOpening:
		return s.scanOpening(lx, valid)
	default:
		return s.scanInline(lx, valid)
	}
}

// scanEOF is Phase A: closing whatever remains open, one block per call.
func (s *Scanner) scanEOF(lx Lexer, valid SymbolSet) bool {
	top, ok := s.stack.top()
	if !ok {
		return false
	}
	sym := top.closeSymbol()
	if !valid.Has(sym) {
		return false
	}
	s.stack.pop()
	if s.matched > s.stack.len()+1 {
		s.matched = s.stack.len() + 1
	}
	emitZeroWidth(lx, sym)
	return true
}

// scanOpening is Phase C: past the reconsumed container prefix, looking for
// a new block opener at the current position.
func (s *Scanner) scanOpening(lx Lexer, valid SymbolSet) bool {
	if s.tryEmitIndentation(lx, valid) {
		return true
	}
	// Pin the zero-width MatchingDone position before any recognizer looks
	// ahead; a recognizer that matches marks its own end further along.
	lx.MarkEnd()
	if s.tryOpeners(lx, valid) {
		return true
	}
	if !valid.Has(MatchingDone) {
		return false
	}
	lx.SetResultSymbol(MatchingDone)
	s.advanceMatchedOne()
	return true
}

// tryEmitIndentation is the preamble token shared by Phases B and C: when
// the mask permits it and the lookahead is space/tab, the whole leading
// whitespace run is consumed into indentation and emitted as one token.
func (s *Scanner) tryEmitIndentation(lx Lexer, valid SymbolSet) bool {
	if !valid.Has(Indentation) || !isSpaceOrTab(lx.Lookahead()) {
		return false
	}
	s.indentation = consumeIndentRun(lx, &s.column)
	emitZeroWidth(lx, Indentation)
	return true
}
