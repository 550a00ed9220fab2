package mdscan

// Phase B: reconsuming the opening syntax of each already-open container in
// turn, grounded on the BlockStack.matchPrior walk in
// _examples/jcorbin-soc/scandown/block.go.

func (s *Scanner) scanPrefixMatching(lx Lexer, valid SymbolSet) bool {
	if s.tryEmitIndentation(lx, valid) {
		return true
	}

	i := s.prefixIndex()
	b := s.stack.at(i)

	switch b.kind {
	case blockQuote:
		if s.matchBlockQuoteContinuation(lx, valid) {
			return true
		}
	case indentedCodeBlock:
		if s.matchIndentedCodeBlockContinuation(lx, valid) {
			return true
		}
	case listItem:
		if s.matchListItemContinuation(lx, valid, b) {
			return true
		}
	case fencedCode:
		if s.checkFenceClose(lx, valid, b) {
			s.skipToInlinePhase()
			return true
		}
		if s.matchFencedCodeContinuation(lx, valid) {
			return true
		}
	}

	return s.failPrefixMatch(lx, valid)
}

func (s *Scanner) matchBlockQuoteContinuation(lx Lexer, valid SymbolSet) bool {
	if s.indentation > 3 || lx.Lookahead() != '>' || !valid.Has(BlockContinuation) {
		return false
	}
	advanceColumn(lx, &s.column, true)
	if isSpaceOrTab(lx.Lookahead()) {
		advanceColumn(lx, &s.column, true)
	}
	s.indentation = 0
	emitZeroWidth(lx, BlockContinuation)
	s.advanceMatchedOne()
	return true
}

func (s *Scanner) matchIndentedCodeBlockContinuation(lx Lexer, valid SymbolSet) bool {
	c := lx.Lookahead()
	if s.indentation < 4 || isLineEnd(c) || c == 0 || !valid.Has(BlockContinuation) {
		return false
	}
	s.indentation -= 4
	emitZeroWidth(lx, BlockContinuation)
	s.advanceMatchedTwo()
	return true
}

func (s *Scanner) matchListItemContinuation(lx Lexer, valid SymbolSet, b openBlock) bool {
	if !valid.Has(BlockContinuation) {
		return false
	}
	c := lx.Lookahead()
	if isLineEnd(c) || c == 0 {
		s.indentation = 0
		emitZeroWidth(lx, BlockContinuation)
		s.advanceMatchedOne()
		return true
	}
	if s.indentation >= int(b.listContentIndent) {
		s.indentation -= int(b.listContentIndent)
		emitZeroWidth(lx, BlockContinuation)
		s.advanceMatchedOne()
		return true
	}
	return false
}

func (s *Scanner) matchFencedCodeContinuation(lx Lexer, valid SymbolSet) bool {
	if !valid.Has(BlockContinuation) {
		return false
	}
	emitZeroWidth(lx, BlockContinuation)
	s.advanceMatchedTwo()
	return true
}

// failPrefixMatch handles the two outcomes of a failed continuation match: a
// lazy-continuation line, or popping the deepest open block and closing it.
//
// The lazy-continuation check needs wouldOpenBlock's verdict on whether a
// new block opener is present, but the zero-width token this function may
// emit (LazyContinuation or a close symbol) must end exactly here, at the
// position where the failed continuation match left off -- not wherever
// wouldOpenBlock's own speculative lookahead ends up probing to. MarkEnd is
// therefore pinned once, unconditionally, before the probe runs; the probe
// can only ever move the position of a wrapped Lexer that does not honor
// further MarkEnd calls, so the pin made here stands regardless.
func (s *Scanner) failPrefixMatch(lx Lexer, valid SymbolSet) bool {
	lx.MarkEnd()

	if valid.Has(LazyContinuation) && !s.wouldOpenBlock(lx, valid) {
		lx.SetResultSymbol(LazyContinuation)
		s.skipToInlinePhase()
		return true
	}

	top, ok := s.stack.top()
	if !ok {
		return false
	}
	sym := top.closeSymbol()
	if !valid.Has(sym) {
		return false
	}
	s.stack.pop()
	lx.SetResultSymbol(sym)
	return true
}
