package main

import "github.com/cordwood/mdscan"

// fullMask enables every emittable token, standing in for the generated
// parser's valid_symbols mask. A real host only allows the subset its
// grammar state accepts; these command line tools have no such grammar, so
// they run the scanner permissively and show whatever it would be willing
// to emit at each position.
func fullMask() mdscan.SymbolSet {
	return mdscan.NewSymbolSet(
		mdscan.LineEnding,
		mdscan.Indentation,
		mdscan.VirtualSpace,
		mdscan.MatchingDone,
		mdscan.BlockClose,
		mdscan.BlockCloseLoose,
		mdscan.BlockContinuation,
		mdscan.LazyContinuation,
		mdscan.BlockQuoteStart,
		mdscan.IndentedChunkStart,
		mdscan.AtxH1, mdscan.AtxH2, mdscan.AtxH3, mdscan.AtxH4, mdscan.AtxH5, mdscan.AtxH6,
		mdscan.SetextH1Underline,
		mdscan.SetextH2Underline,
		mdscan.SetextH2UnderlineOrThematicBreak,
		mdscan.ThematicBreak,
		mdscan.ListMarkerMinus,
		mdscan.ListMarkerPlus,
		mdscan.ListMarkerStar,
		mdscan.ListMarkerParenthesis,
		mdscan.ListMarkerDot,
		mdscan.FencedCodeBlockStart,
		mdscan.BlankLine,
		mdscan.CodeSpanStart,
		mdscan.CodeSpanClose,
		mdscan.EmphasisOpenStar,
		mdscan.EmphasisOpenUnderscore,
		mdscan.EmphasisCloseStar,
		mdscan.EmphasisCloseUnderscore,
	)
}

func isWhitespaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

func isPunctByte(b byte) bool {
	switch {
	case b >= '!' && b <= '/':
		return true
	case b >= ':' && b <= '@':
		return true
	case b >= '[' && b <= '`':
		return true
	case b >= '{' && b <= '~':
		return true
	default:
		return false
	}
}
