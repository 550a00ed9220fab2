package mdscan

// Byte classification is ASCII-only, per the specification's Non-goals:
// Unicode-aware punctuation/whitespace classification is explicitly out of
// scope. This is a known limitation carried forward rather than fixed; a
// future version could gate full Unicode classification behind a
// configuration bit without changing the rest of the state machine.

func isSpaceOrTab(c byte) bool {
	return c == ' ' || c == '\t'
}

func isLineEnd(c byte) bool {
	return c == '\n' || c == '\r'
}

func isBlankByte(c byte) bool {
	return isSpaceOrTab(c) || isLineEnd(c) || c == 0
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isASCIIPunctuation(c byte) bool {
	switch {
	case c >= '!' && c <= '/':
		return true
	case c >= ':' && c <= '@':
		return true
	case c >= '[' && c <= '`':
		return true
	case c >= '{' && c <= '~':
		return true
	default:
		return false
	}
}

func isASCIIWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}
