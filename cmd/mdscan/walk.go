package main

import "github.com/cordwood/mdscan"

// token is one emitted marker, with the raw bytes the scanner consumed
// while recognizing it (usually the delimiter itself: '#', '>', etc).
type token struct {
	Offset int
	End    int
	Symbol mdscan.Symbol
}

// textRun is a span of input the scanner declined to claim, which a real
// host grammar would assemble into ordinary text/paragraph content.
type textRun struct {
	Offset int
	End    int
}

// walk drives a freshly created Scanner over the entirety of buf using a
// permissive mask, reporting every marker token and every run of
// host-assembled text in order. It returns the Scanner in its final state,
// suitable for Serialize.
func walk(buf []byte, onToken func(token), onText func(textRun)) *mdscan.Scanner {
	return walkFrom(mdscan.New(), buf, onToken, onText)
}

// walkFrom is walk, but resuming from a caller-supplied Scanner rather than
// always starting fresh -- what the snapshot subcommand uses to demonstrate
// picking an incremental reparse back up from a serialized state image.
func walkFrom(sc *mdscan.Scanner, buf []byte, onToken func(token), onText func(textRun)) *mdscan.Scanner {
	lx := newByteLexer(buf)

	var lastWs, lastPunct bool
	textStart := 0

	for {
		mask := fullMask()
		if lastWs {
			mask[mdscan.LastTokenWhitespace] = true
		}
		if lastPunct {
			mask[mdscan.LastTokenPunctuation] = true
		}

		preScan := lx.pos
		lx.hasResult = false

		if sc.Scan(lx, mask) {
			// The token ends at the scanner's last MarkEnd; anything
			// advanced past that was lookahead only.
			lx.pos = lx.end
			if preScan > textStart {
				onText(textRun{Offset: textStart, End: preScan})
			}
			onToken(token{Offset: preScan, End: lx.pos, Symbol: lx.result})
			textStart = lx.pos
			lastWs, lastPunct = false, false
			continue
		}

		// A declined call consumes nothing.
		lx.pos = preScan
		if lx.EOF() {
			break
		}

		b := lx.Lookahead()
		lastWs = isWhitespaceByte(b)
		lastPunct = isPunctByte(b)
		lx.Advance(true)
	}

	if textStart < len(buf) {
		onText(textRun{Offset: textStart, End: len(buf)})
	}

	return sc
}
