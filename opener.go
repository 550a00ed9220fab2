package mdscan

// Phase C: block-opener recognition, grounded on the marker-probing helpers
// in _examples/jcorbin-soc/scandown/block.go (quoteMarker, listMarker,
// delimiter, ordinal, fence, ruler), adapted to the valid_symbols-gated
// model described in the specification and driven by a strictly five
// primitive Lexer (no arbitrary-offset peek).
//
// Every recognizer below is a pure function of an openerState snapshot, a
// Lexer, and the valid-symbols mask: it decides whether the current
// position opens a block, and if so mutates the snapshot (indentation,
// column, the cloned-or-live stack) and calls the Lexer's MarkEnd/
// SetResultSymbol to record the match. tryOpeners runs these over a copy of
// the live Scanner's fields and writes the copy back on a match;
// wouldOpenBlock (the lazy-continuation
// probe spec.md §9 calls for) runs the exact same functions against a
// throwaway copy and a Lexer wrapper that turns MarkEnd/SetResultSymbol
// into no-ops, so the probe can never mutate real state or commit a token
// no matter what it matches -- a pure predicate over a copy, not a
// re-entrant call with a flag.
//
// Multi-byte lookahead (fence runs, ATX hash counts, ordered-list digits,
// thematic-break runs) is obtained by calling Advance speculatively and
// deciding afterward whether to keep what was consumed. A recognizer that
// ultimately declines relies on the host rolling back every Advance made
// during the enclosing Scan call, per the specification's no-poisoned-state
// contract; when Phase C instead falls back to MatchingDone, scanOpening has
// already pinned that token's end before the recognizers ran. The
// first-byte dispatch below guarantees that once a family is
// entered for the current lookahead byte, no sibling family is tried
// against whatever position that decline leaves behind.

// openerState is the subset of Scanner fields block-opener recognizers
// read and write. tryOpeners copies the live Scanner's fields into one and
// copies them back only on a match; wouldOpenBlock takes a snapshot copy
// with a cloned stack and discards it, so the exact same
// recognizer functions serve as both the real opening path and the pure
// lazy-continuation predicate.
type openerState struct {
	indentation int
	column      int
	stack       blockStack
}

// probeLexer wraps a real Lexer for wouldOpenBlock: Lookahead/Advance/EOF
// pass straight through, since genuine multi-byte lookahead is still
// needed to decide a match, but MarkEnd and SetResultSymbol become no-ops.
// The caller has already pinned the real zero-width token end via the
// underlying Lexer's own MarkEnd before constructing one of these, so any
// further advances a recognizer makes through it are free lookahead that
// can never move that boundary or commit a result.
type probeLexer struct {
	Lexer
}

func (probeLexer) MarkEnd()               {}
func (probeLexer) SetResultSymbol(Symbol) {}

func emitZeroWidth(lx Lexer, sym Symbol) {
	lx.MarkEnd()
	lx.SetResultSymbol(sym)
}

// atEndOfLine reports whether the lexer's current position is a line
// ending or EOF.
func atEndOfLine(lx Lexer) bool {
	b := lx.Lookahead()
	return isLineEnd(b) || b == 0
}

// trailingWhitespaceToEOL advances the lexer to the next line ending (or
// EOF), reporting whether every byte passed over was a space or tab.
func trailingWhitespaceToEOL(lx Lexer, column *int) bool {
	for !atEndOfLine(lx) {
		if !isSpaceOrTab(lx.Lookahead()) {
			return false
		}
		advanceColumn(lx, column, true)
	}
	return true
}

// tryOpeners runs every Phase C recognizer over the Scanner's own state and
// performs the corresponding commit (state copy-back, matched-cursor
// advance, loose-marking) on the first one that matches.
func (s *Scanner) tryOpeners(lx Lexer, valid SymbolSet) bool {
	st := openerState{indentation: s.indentation, column: s.column, stack: s.stack}
	sym, step, ok := dispatchOpeners(&st, lx, valid)
	if !ok {
		return false
	}
	s.indentation = st.indentation
	s.column = st.column
	s.stack = st.stack
	if sym == BlankLine {
		s.stack.markAllListItemsLoose()
	}
	if step == 2 {
		s.advanceMatchedTwo()
	} else {
		s.advanceMatchedOne()
	}
	return true
}

// wouldOpenBlock is the pure predicate spec.md §9 requires for the lazy
// continuation check: the same recognizers tryOpeners uses, run over a
// scratch copy of indentation/column/stack and a probeLexer that can't set
// a result or move the token end. It can never mutate the real Scanner or
// claim any bytes, regardless of what it matches.
func (s *Scanner) wouldOpenBlock(lx Lexer, valid SymbolSet) bool {
	scratch := openerState{indentation: s.indentation, column: s.column, stack: s.stack.clone()}
	_, _, ok := dispatchOpeners(&scratch, probeLexer{lx}, valid)
	return ok
}

// dispatchOpeners is the shared recognizer dispatch: first-byte routing
// ensures that once a family is entered for the current lookahead, its
// result is final for this call -- no sibling recognizer is tried against
// a position a declining recognizer may have already advanced past.
func dispatchOpeners(st *openerState, lx Lexer, valid SymbolSet) (Symbol, int, bool) {
	if sym, step, ok := matchBlankLine(st, lx, valid); ok {
		return sym, step, ok
	}
	if st.indentation <= 3 {
		switch lx.Lookahead() {
		case '>':
			return matchBlockQuote(st, lx, valid)
		case '#':
			return matchAtxHeading(st, lx, valid)
		case '`', '~':
			return matchFencedCode(st, lx, valid)
		case '=':
			return matchSetextH1(st, lx, valid)
		case '-':
			return matchDashDispatch(st, lx, valid)
		case '*':
			return matchStarDispatch(st, lx, valid)
		case '_':
			return matchUnderscoreThematicBreak(st, lx, valid)
		case '+':
			return matchPlusListMarker(st, lx, valid)
		default:
			if isASCIIDigit(lx.Lookahead()) {
				return matchOrderedListMarker(st, lx, valid)
			}
		}
	}
	return matchIndentedCodeBlock(st, lx, valid)
}

func matchBlankLine(st *openerState, lx Lexer, valid SymbolSet) (Symbol, int, bool) {
	if !isLineEnd(lx.Lookahead()) && lx.Lookahead() != 0 {
		return 0, 0, false
	}
	if !valid.Has(BlankLine) {
		return 0, 0, false
	}
	emitZeroWidth(lx, BlankLine)
	return BlankLine, 1, true
}

func matchBlockQuote(st *openerState, lx Lexer, valid SymbolSet) (Symbol, int, bool) {
	if lx.Lookahead() != '>' {
		return 0, 0, false
	}
	if !valid.Has(BlockQuoteStart) {
		return 0, 0, false
	}
	advanceColumn(lx, &st.column, true)
	if isSpaceOrTab(lx.Lookahead()) {
		advanceColumn(lx, &st.column, true)
	}
	st.indentation = 0
	st.stack.push(newBlockQuote())
	emitZeroWidth(lx, BlockQuoteStart)
	return BlockQuoteStart, 2, true
}

func matchIndentedCodeBlock(st *openerState, lx Lexer, valid SymbolSet) (Symbol, int, bool) {
	if st.indentation < 4 || isLineEnd(lx.Lookahead()) || lx.Lookahead() == 0 {
		return 0, 0, false
	}
	if valid.Has(LazyContinuation) {
		// An indented code block can never interrupt a paragraph.
		return 0, 0, false
	}
	if !valid.Has(IndentedChunkStart) {
		return 0, 0, false
	}
	st.indentation -= 4
	st.stack.push(newIndentedCodeBlock())
	emitZeroWidth(lx, IndentedChunkStart)
	return IndentedChunkStart, 2, true
}

// matchFencedCode recognizes an opening code fence on backtick or tilde run
// length alone. Unlike a closing fence (checkFenceClose), an opening fence
// places no restriction on what follows the run on the same line -- that
// info string is left for a host grammar to assemble as ordinary text.
func matchFencedCode(st *openerState, lx Lexer, valid SymbolSet) (Symbol, int, bool) {
	c := lx.Lookahead()
	if c != '`' && c != '~' {
		return 0, 0, false
	}
	n := 0
	for lx.Lookahead() == c {
		advanceColumn(lx, &st.column, true)
		n++
	}
	if n < 3 {
		return 0, 0, false
	}
	if !valid.Has(FencedCodeBlockStart) {
		return 0, 0, false
	}
	fk := fenceBacktick
	if c == '~' {
		fk = fenceTilde
	}
	st.indentation = 0
	st.stack.push(newFencedCode(fk, n))
	emitZeroWidth(lx, FencedCodeBlockStart)
	return FencedCodeBlockStart, 2, true
}

// checkFenceClose is called from Phase B (scan_prefix.go) when the block
// being reconsidered is FencedCode and it sits at the top of the stack; the
// specification requires the close check to run before the default
// BlockContinuation fallthrough. Unlike the opener, a closing fence does
// restrict what may trail the run: nothing but whitespace to end of line.
func (s *Scanner) checkFenceClose(lx Lexer, valid SymbolSet, top openBlock) bool {
	if s.indentation > 3 || !valid.Has(BlockClose) {
		return false
	}
	c := lx.Lookahead()
	want := byte('`')
	if top.fence == fenceTilde {
		want = '~'
	}
	if c != want {
		return false
	}
	n := 0
	for lx.Lookahead() == c {
		advanceColumn(lx, &s.column, true)
		n++
	}
	if n < int(top.fenceLen) {
		return false
	}
	if !trailingWhitespaceToEOL(lx, &s.column) {
		return false
	}
	s.indentation = 0
	s.stack.pop()
	emitZeroWidth(lx, BlockClose)
	return true
}

func matchAtxHeading(st *openerState, lx Lexer, valid SymbolSet) (Symbol, int, bool) {
	if lx.Lookahead() != '#' {
		return 0, 0, false
	}
	n := 0
	for n < 7 && lx.Lookahead() == '#' {
		advanceColumn(lx, &st.column, true)
		n++
	}
	if n < 1 || n > 6 {
		return 0, 0, false
	}
	next := lx.Lookahead()
	if !(isSpaceOrTab(next) || isLineEnd(next) || next == 0) {
		return 0, 0, false
	}
	sym := AtxH(n)
	// Must check the level-specific symbol, not any AtxH* bit.
	if !valid.Has(sym) {
		return 0, 0, false
	}
	st.indentation = 0
	emitZeroWidth(lx, sym)
	return sym, 1, true
}

func matchSetextH1(st *openerState, lx Lexer, valid SymbolSet) (Symbol, int, bool) {
	if lx.Lookahead() != '=' {
		return 0, 0, false
	}
	n := 0
	for lx.Lookahead() == '=' {
		advanceColumn(lx, &st.column, true)
		n++
	}
	if n < 1 || !trailingWhitespaceToEOL(lx, &st.column) {
		return 0, 0, false
	}
	if !valid.Has(SetextH1Underline) {
		return 0, 0, false
	}
	st.indentation = 0
	emitZeroWidth(lx, SetextH1Underline)
	return SetextH1Underline, 1, true
}

// matchDashDispatch resolves the three-way ambiguity a leading '-' creates:
// a thematic break, a Setext H2 underline (or both at once), and a
// "- " list marker all share the same first byte. A single forward pass
// counts the leading contiguous run and, if it could be a one-dash list
// marker, tentatively scans and pins (via MarkEnd) that shorter span before
// continuing on to check the whole-line thematic/Setext pattern -- MarkEnd
// only ever moves forward, so if thematic or Setext wins instead, it is
// re-pinned further along the same line below.
func matchDashDispatch(st *openerState, lx Lexer, valid SymbolSet) (Symbol, int, bool) {
	contiguous := 0
	for lx.Lookahead() == '-' {
		advanceColumn(lx, &st.column, true)
		contiguous++
	}

	listMarkerPinned := false
	var contentIndent int
	if contiguous == 1 && isSpaceOrTab(lx.Lookahead()) && valid.Has(ListMarkerMinus) {
		lineStartIndent := st.indentation
		n := 0
		for n < 5 && isSpaceOrTab(lx.Lookahead()) {
			advanceColumn(lx, &st.column, true)
			n++
		}
		contentIndent = lineStartIndent + 1 + minInt(n, 4)
		listMarkerPinned = true
		lx.MarkEnd()
	}

	extraDashes, lineIsDashOrSpace := 0, true
	for !atEndOfLine(lx) {
		switch c := lx.Lookahead(); {
		case c == '-':
			extraDashes++
		case !isSpaceOrTab(c):
			lineIsDashOrSpace = false
		}
		advanceColumn(lx, &st.column, true)
	}

	total := contiguous + extraDashes
	thematicOK := lineIsDashOrSpace && total >= 3
	setextOK := lineIsDashOrSpace && extraDashes == 0

	switch {
	case thematicOK && setextOK && valid.Has(SetextH2UnderlineOrThematicBreak):
		st.indentation = 0
		emitZeroWidth(lx, SetextH2UnderlineOrThematicBreak)
		return SetextH2UnderlineOrThematicBreak, 1, true
	case thematicOK && valid.Has(ThematicBreak):
		st.indentation = 0
		emitZeroWidth(lx, ThematicBreak)
		return ThematicBreak, 1, true
	case setextOK && valid.Has(SetextH2Underline):
		st.indentation = 0
		emitZeroWidth(lx, SetextH2Underline)
		return SetextH2Underline, 1, true
	case listMarkerPinned:
		st.indentation = 0
		st.stack.push(newListItem(contentIndent))
		lx.SetResultSymbol(ListMarkerMinus)
		return ListMarkerMinus, 2, true
	}
	return 0, 0, false
}

func matchStarDispatch(st *openerState, lx Lexer, valid SymbolSet) (Symbol, int, bool) {
	contiguous := 0
	for lx.Lookahead() == '*' {
		advanceColumn(lx, &st.column, true)
		contiguous++
	}

	listMarkerPinned := false
	var contentIndent int
	if contiguous == 1 && isSpaceOrTab(lx.Lookahead()) && valid.Has(ListMarkerStar) {
		lineStartIndent := st.indentation
		n := 0
		for n < 5 && isSpaceOrTab(lx.Lookahead()) {
			advanceColumn(lx, &st.column, true)
			n++
		}
		contentIndent = lineStartIndent + 1 + minInt(n, 4)
		listMarkerPinned = true
		lx.MarkEnd()
	}

	extraStars, lineIsStarOrSpace := 0, true
	for !atEndOfLine(lx) {
		switch c := lx.Lookahead(); {
		case c == '*':
			extraStars++
		case !isSpaceOrTab(c):
			lineIsStarOrSpace = false
		}
		advanceColumn(lx, &st.column, true)
	}

	if lineIsStarOrSpace && contiguous+extraStars >= 3 && valid.Has(ThematicBreak) {
		st.indentation = 0
		emitZeroWidth(lx, ThematicBreak)
		return ThematicBreak, 1, true
	}
	if listMarkerPinned {
		st.indentation = 0
		st.stack.push(newListItem(contentIndent))
		lx.SetResultSymbol(ListMarkerStar)
		return ListMarkerStar, 2, true
	}
	return 0, 0, false
}

func matchUnderscoreThematicBreak(st *openerState, lx Lexer, valid SymbolSet) (Symbol, int, bool) {
	count, lineIsUnderscoreOrSpace := 0, true
	for !atEndOfLine(lx) {
		switch c := lx.Lookahead(); {
		case c == '_':
			count++
		case !isSpaceOrTab(c):
			lineIsUnderscoreOrSpace = false
		}
		advanceColumn(lx, &st.column, true)
	}
	if !lineIsUnderscoreOrSpace || count < 3 || !valid.Has(ThematicBreak) {
		return 0, 0, false
	}
	st.indentation = 0
	emitZeroWidth(lx, ThematicBreak)
	return ThematicBreak, 1, true
}

func matchPlusListMarker(st *openerState, lx Lexer, valid SymbolSet) (Symbol, int, bool) {
	if lx.Lookahead() != '+' {
		return 0, 0, false
	}
	advanceColumn(lx, &st.column, true)
	if !isSpaceOrTab(lx.Lookahead()) {
		return 0, 0, false
	}
	if !valid.Has(ListMarkerPlus) {
		return 0, 0, false
	}
	return matchListMarker(st, lx, 1, ListMarkerPlus)
}

func matchOrderedListMarker(st *openerState, lx Lexer, valid SymbolSet) (Symbol, int, bool) {
	digits := 0
	for digits < 9 && isASCIIDigit(lx.Lookahead()) {
		advanceColumn(lx, &st.column, true)
		digits++
	}
	if digits == 0 {
		return 0, 0, false
	}
	delim := lx.Lookahead()
	if delim != '.' && delim != ')' {
		return 0, 0, false
	}
	advanceColumn(lx, &st.column, true)
	if !isSpaceOrTab(lx.Lookahead()) {
		return 0, 0, false
	}
	sym := ListMarkerDot
	if delim == ')' {
		sym = ListMarkerParenthesis
	}
	if !valid.Has(sym) {
		return 0, 0, false
	}
	return matchListMarker(st, lx, digits+1, sym)
}

// matchListMarker implements the shared list-item content-indent
// computation (specification §4.4). The caller has already advanced past
// the w-byte marker itself (bullet or digits+delimiter); this scans the
// padding that follows and pushes the item. It always matches once called.
func matchListMarker(st *openerState, lx Lexer, w int, sym Symbol) (Symbol, int, bool) {
	lineStartIndent := st.indentation

	n := 0
	for n < 5 && isSpaceOrTab(lx.Lookahead()) {
		advanceColumn(lx, &st.column, true)
		n++
	}
	contentIndent := lineStartIndent + w + minInt(n, 4)

	st.indentation = 0
	st.stack.push(newListItem(contentIndent))
	emitZeroWidth(lx, sym)
	return sym, 2, true
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
