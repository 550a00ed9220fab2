package mdscan_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/cordwood/mdscan"
)

// exampleLexer is a black-box Lexer implementation over an in-memory
// buffer, built only against the exported Lexer interface -- these tests
// exercise mdscan the way an external host would: after an emitted token the
// drivers below resume at the last MarkEnd, and a declined call is rolled
// back to where it started.
type exampleLexer struct {
	buf       []byte
	pos       int
	end       int
	result    Symbol
	hasResult bool
}

func (l *exampleLexer) Lookahead() byte {
	if l.pos >= len(l.buf) {
		return 0
	}
	return l.buf[l.pos]
}

func (l *exampleLexer) Advance(bool) {
	if l.pos < len(l.buf) {
		l.pos++
	}
}

func (l *exampleLexer) MarkEnd() { l.end = l.pos }

func (l *exampleLexer) EOF() bool { return l.pos >= len(l.buf) }

func (l *exampleLexer) SetResultSymbol(sym Symbol) {
	l.result = sym
	l.hasResult = true
}

func scenarioMask() SymbolSet {
	return NewSymbolSet(
		LineEnding, Indentation, VirtualSpace, MatchingDone,
		BlockClose, BlockCloseLoose, BlockContinuation, LazyContinuation,
		BlockQuoteStart, IndentedChunkStart,
		AtxH1, AtxH2, AtxH3, AtxH4, AtxH5, AtxH6,
		SetextH1Underline, SetextH2Underline, SetextH2UnderlineOrThematicBreak, ThematicBreak,
		ListMarkerMinus, ListMarkerPlus, ListMarkerStar, ListMarkerParenthesis, ListMarkerDot,
		FencedCodeBlockStart, BlankLine,
		CodeSpanStart, CodeSpanClose,
		EmphasisOpenStar, EmphasisOpenUnderscore, EmphasisCloseStar, EmphasisCloseUnderscore,
	)
}

// scanTokens drives a fresh Scanner to exhaustion over text, returning the
// sequence of emitted marker token names interleaved with "_" for every run
// of bytes the scanner declined to claim -- the notation spec.md §8 uses
// for host-assembled text.
func scanTokens(text string) []string {
	s := New()
	lx := &exampleLexer{buf: []byte(text)}
	mask := scenarioMask()

	var out []string
	inText := false
	for {
		start := lx.pos
		lx.hasResult = false
		if s.Scan(lx, mask) {
			lx.pos = lx.end
			inText = false
			out = append(out, lx.result.String())
			continue
		}
		lx.pos = start
		if lx.EOF() {
			break
		}
		if !inText {
			out = append(out, "_")
			inText = true
		}
		lx.Advance(true)
	}
	return out
}

func TestScenario_AtxHeading(t *testing.T) {
	assert.Equal(t, []string{"AtxH1Marker", "_", "LineEnding"}, scanTokens("# hi\n"))
}

// TestScenario_BlockQuote: on line 2 the continuation advances matched by
// one, so Phase C still runs, finds no opener before "b", and emits
// MatchingDone; line 1 skips Phase C because a newly opened block advances
// matched by two.
func TestScenario_BlockQuote(t *testing.T) {
	assert.Equal(t, []string{
		"BlockQuoteStart", "_", "LineEnding",
		"BlockContinuation", "MatchingDone", "_", "LineEnding",
		"BlockClose",
	}, scanTokens("> a\n> b\n"))
}

// TestScenario_TightToLooseList traces "- a\n\n- b\n" through two distinct
// list items (each pushed and popped independently, per block.go's data
// model -- there is no shared "list" container tying them together). The
// first item is marked loose by the intervening blank line and closes with
// BlockCloseLoose; the second item never sees a blank line while open and
// closes tight at EOF. Phase B's blank-line branch for an open list item
// also emits its own BlockContinuation before Phase C's BlankLine fires,
// since every Scan call must emit exactly one token or decline -- there is
// no way to silently advance match state.
func TestScenario_TightToLooseList(t *testing.T) {
	assert.Equal(t, []string{
		"ListMarkerMinus", "_", "LineEnding",
		"BlockContinuation", "BlankLine", "LineEnding",
		"BlockCloseLoose",
		"ListMarkerMinus", "_", "LineEnding",
		"BlockClose",
	}, scanTokens("- a\n\n- b\n"))
}

// TestScenario_FencedCodeBlock drives spec.md §8's own fenced-code scenario,
// an opening fence followed by an info string on the same line. The info
// string is not tokenized by the scanner itself -- matchFencedCode matches
// on backtick-run length alone, regardless of what follows it -- so the "x"
// surfaces as ordinary host-assembled text between FencedCodeBlockStart and
// the LineEnding that ends the opening line.
func TestScenario_FencedCodeBlock(t *testing.T) {
	assert.Equal(t, []string{
		"FencedCodeBlockStart", "_", "LineEnding",
		"BlockContinuation", "_", "LineEnding",
		"BlockClose",
	}, scanTokens("```x\ncode\n```"))
}

// TestScenario_SetextH1 includes the MatchingDone token that Phase C emits
// when line 1 ("a") matches no block opener and control falls through to
// inline scanning -- a real, mask-gated token, even though it carries no
// text of its own.
func TestScenario_SetextH1(t *testing.T) {
	assert.Equal(t, []string{
		"MatchingDone", "_", "LineEnding",
		"SetextH1Underline", "LineEnding",
	}, scanTokens("a\n=\n"))
}

// TestScenario_ThematicBreak excludes the Setext-underline symbols from the
// mask: a real host only offers SetextH2UnderlineOrThematicBreak when a
// paragraph is open above to underline, which is never the case at true
// document start.
func TestScenario_ThematicBreak(t *testing.T) {
	mask := NewSymbolSet(LineEnding, ThematicBreak)
	s := New()
	lx := &exampleLexer{buf: []byte("---\n")}
	var out []string
	for {
		start := lx.pos
		lx.hasResult = false
		if s.Scan(lx, mask) {
			lx.pos = lx.end
			out = append(out, lx.result.String())
			continue
		}
		lx.pos = start
		if lx.EOF() {
			break
		}
		lx.Advance(true)
	}
	assert.Equal(t, []string{"ThematicBreak", "LineEnding"}, out)
}

func TestScenario_CodeSpan(t *testing.T) {
	assert.Equal(t, []string{
		"MatchingDone", "_", "CodeSpanStart", "_", "CodeSpanClose", "_", "LineEnding",
	}, scanTokens("see `code` here\n"))
}

func ExampleScanner_Scan() {
	for _, sym := range scanTokens("# hi\n") {
		fmt.Println(sym)
	}
	// Output:
	// AtxH1Marker
	// _
	// LineEnding
}
