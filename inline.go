package mdscan

// Phase D: code-span delimiters and emphasis flanking, per the
// specification's §4.5. The flanking formulas are implemented directly from
// their boolean form rather than ported from any single example repo, since
// none of the pack's teachers carry a CommonMark inline scanner; the run
// bookkeeping (numEmphasisDelimiters/Left/IsOpen) follows the same
// one-token-per-call, zero-width-marker convention used throughout the
// block-level recognizers (opener.go, scan_prefix.go).

func (s *Scanner) scanInline(lx Lexer, valid SymbolSet) bool {
	if s.indentation > 0 && valid.Has(VirtualSpace) {
		emitZeroWidth(lx, VirtualSpace)
		s.indentation--
		return true
	}

	if c := lx.Lookahead(); isLineEnd(c) {
		if !valid.Has(LineEnding) {
			return false
		}
		if c == '\r' {
			advanceColumn(lx, &s.column, true)
			if lx.Lookahead() == '\n' {
				advanceColumn(lx, &s.column, true)
			}
		} else {
			advanceColumn(lx, &s.column, true)
		}
		emitZeroWidth(lx, LineEnding)
		s.resetLineState()
		return true
	}

	if s.scanCodeSpanDelimiter(lx, valid) {
		return true
	}

	return s.scanEmphasis(lx, valid)
}

func (s *Scanner) scanCodeSpanDelimiter(lx Lexer, valid SymbolSet) bool {
	if lx.Lookahead() != '`' {
		return false
	}
	n := 0
	for lx.Lookahead() == '`' {
		advanceColumn(lx, &s.column, true)
		n++
	}

	if n == s.codeSpanDelimiterLen && s.codeSpanDelimiterLen > 0 && valid.Has(CodeSpanClose) {
		s.codeSpanDelimiterLen = 0
		emitZeroWidth(lx, CodeSpanClose)
		return true
	}
	if valid.Has(CodeSpanStart) {
		s.codeSpanDelimiterLen = n
		emitZeroWidth(lx, CodeSpanStart)
		return true
	}
	return false
}

func emphasisSymbol(c byte, isOpen bool) Symbol {
	switch {
	case c == '*' && isOpen:
		return EmphasisOpenStar
	case c == '*':
		return EmphasisCloseStar
	case isOpen:
		return EmphasisOpenUnderscore
	default:
		return EmphasisCloseUnderscore
	}
}

// scanEmphasis emits exactly one delimiter token per call even though
// deciding flanking requires looking past the whole run: it advances past
// the first byte of the run and pins that as the resume point with MarkEnd
// before continuing on to count the rest of the run and inspect the byte
// that follows it. Those further advances move the lexer only to look --
// per the Lexer contract, advances made after the last MarkEnd are free
// lookahead that don't affect where the next call resumes -- so the token
// this call emits still spans exactly one byte, with numEmphasisDelimiters
// bookkeeping left to dole out the remaining k-1 bytes one per subsequent
// call.
func (s *Scanner) scanEmphasis(lx Lexer, valid SymbolSet) bool {
	if s.numEmphasisDelimitersLeft > 0 {
		c := lx.Lookahead()
		sym := emphasisSymbol(c, s.emphasisDelimitersIsOpen)
		if !valid.Has(sym) {
			return false
		}
		advanceColumn(lx, &s.column, true)
		s.numEmphasisDelimitersLeft--
		emitZeroWidth(lx, sym)
		return true
	}

	c := lx.Lookahead()
	if c != '*' && c != '_' {
		return false
	}

	prevWs := valid.Has(LastTokenWhitespace)
	prevPunct := valid.Has(LastTokenPunctuation)

	advanceColumn(lx, &s.column, true)
	lx.MarkEnd()

	k := 1
	for lx.Lookahead() == c {
		advanceColumn(lx, &s.column, true)
		k++
	}

	next := lx.Lookahead()
	nextWs := next == 0 || isASCIIWhitespace(next)
	nextPunct := isASCIIPunctuation(next)

	rightFlanking := !prevWs && (!prevPunct || nextPunct || nextWs)
	leftFlanking := !nextWs && (!nextPunct || prevPunct || prevWs)

	var canOpen, canClose bool
	if c == '*' {
		canClose = rightFlanking
		canOpen = leftFlanking
	} else {
		canClose = rightFlanking && (!leftFlanking || nextPunct)
		canOpen = leftFlanking && (!rightFlanking || prevPunct)
	}

	var isOpen bool
	var sym Symbol
	switch {
	case canClose && valid.Has(emphasisSymbol(c, false)):
		isOpen, sym = false, emphasisSymbol(c, false)
	case canOpen && valid.Has(emphasisSymbol(c, true)):
		isOpen, sym = true, emphasisSymbol(c, true)
	default:
		return false
	}

	s.numEmphasisDelimiters = k
	s.numEmphasisDelimitersLeft = k - 1
	s.emphasisDelimitersIsOpen = isOpen
	lx.SetResultSymbol(sym)
	return true
}
