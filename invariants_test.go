package mdscan

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLexer is a minimal Lexer over an in-memory buffer, used to drive the
// scanner in tests with no host grammar involved. driveAll resumes it at the
// last MarkEnd after an emitted token and rolls it back after a declined
// call, the way a host lexer driver does.
type testLexer struct {
	buf       []byte
	pos       int
	end       int
	result    Symbol
	hasResult bool
}

func (l *testLexer) Lookahead() byte {
	if l.pos >= len(l.buf) {
		return 0
	}
	return l.buf[l.pos]
}

func (l *testLexer) Advance(bool) {
	if l.pos < len(l.buf) {
		l.pos++
	}
}

func (l *testLexer) MarkEnd() { l.end = l.pos }

func (l *testLexer) EOF() bool { return l.pos >= len(l.buf) }

func (l *testLexer) SetResultSymbol(sym Symbol) {
	l.result = sym
	l.hasResult = true
}

// fullMask enables every emittable token; tests add LastTokenWhitespace and
// LastTokenPunctuation per call based on the prior token, the way a host
// grammar would.
func fullMask() SymbolSet {
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

// driveAll runs a fresh Scanner over buf to exhaustion (until EOF and no
// more tokens), invoking check after every single Scan call -- whether it
// returned true or false -- with the scanner and lexer as they stood right
// after that call.
func driveAll(t *testing.T, buf []byte, check func(s *Scanner, lx *testLexer, ok bool)) *Scanner {
	t.Helper()
	s := New()
	lx := &testLexer{buf: buf}
	var lastWs, lastPunct bool

	for {
		mask := fullMask()
		if lastWs {
			mask[LastTokenWhitespace] = true
		}
		if lastPunct {
			mask[LastTokenPunctuation] = true
		}

		start := lx.pos
		lx.hasResult = false
		ok := s.Scan(lx, mask)
		check(s, lx, ok)

		if ok {
			lx.pos = lx.end
			lastWs, lastPunct = false, false
			continue
		}
		lx.pos = start
		if lx.EOF() {
			break
		}
		b := lx.Lookahead()
		lastWs = isASCIIWhitespace(b)
		lastPunct = isASCIIPunctuation(b)
		lx.Advance(true)
	}
	return s
}

// corpus is a small set of building blocks exercising every opener and
// continuation recognizer; randomDocument concatenates a random subset of
// them to build property-test inputs.
var corpus = []string{
	"# heading\n",
	"## another\n",
	"plain paragraph text\n",
	"para\n=\n",
	"para2\n---\n",
	"> quoted line\n> continued\n",
	"> nested > still one quote\n",
	"- item one\n",
	"- item two\n\n- item three\n",
	"1. ordered\n2. ordered two\n",
	"* star item\n",
	"+ plus item\n",
	"    indented code\n    more code\n",
	"```\nfenced code\n```\n",
	"~~~\ntilde fenced\n~~~\n",
	"***\n",
	"___\n",
	"---\n",
	"\n",
	"text with `code span` inline\n",
	"text with *emphasis* and _more_\n",
}

func randomDocument(r *rand.Rand, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString(corpus[r.Intn(len(corpus))])
	}
	return sb.String()
}

// TestInvariant_MatchedBound is invariant (1): matched <= stack.len()+1
// must hold after every single Scan call, true or false.
func TestInvariant_MatchedBound(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for doc := 0; doc < 50; doc++ {
		text := randomDocument(r, 1+r.Intn(12))
		driveAll(t, []byte(text), func(s *Scanner, _ *testLexer, _ bool) {
			require.True(t, s.checkInvariants(), "matched=%d stack=%d doc=%q", s.matched, s.stack.len(), text)
		})
	}
}

// TestInvariant_LineEndingResetsLineState is invariant (3): right after
// LineEnding is emitted, indentation, column, and matched are all zero.
func TestInvariant_LineEndingResetsLineState(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for doc := 0; doc < 50; doc++ {
		text := randomDocument(r, 1+r.Intn(12))
		driveAll(t, []byte(text), func(s *Scanner, lx *testLexer, ok bool) {
			if ok && lx.result == LineEnding {
				assert.Equal(t, 0, s.indentation)
				assert.Equal(t, 0, s.column)
				assert.Equal(t, 0, s.matched)
			}
		})
	}
}

// TestInvariant_SerializeRoundTrip is invariant (2): Serialize followed by
// Deserialize reproduces the same externally observable state, for states
// within the stack-depth bound that fits in 255 bytes without truncation.
func TestInvariant_SerializeRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for doc := 0; doc < 30; doc++ {
		text := randomDocument(r, 1+r.Intn(8))
		s := driveAll(t, []byte(text), func(*Scanner, *testLexer, bool) {})

		var buf [255]byte
		n := s.Serialize(buf[:])
		require.LessOrEqual(t, n, maxSerializedLen)

		s2 := New()
		s2.Deserialize(buf[:n])

		assert.Equal(t, s.matched, s2.matched)
		assert.Equal(t, s.indentation, s2.indentation)
		assert.Equal(t, s.column, s2.column)
		assert.Equal(t, s.codeSpanDelimiterLen, s2.codeSpanDelimiterLen)
		assert.Equal(t, s.numEmphasisDelimiters, s2.numEmphasisDelimiters)
		assert.Equal(t, s.numEmphasisDelimitersLeft, s2.numEmphasisDelimitersLeft)
		assert.Equal(t, s.emphasisDelimitersIsOpen, s2.emphasisDelimitersIsOpen)

		if s.stack.len() <= maxStackBytes {
			require.Equal(t, s.stack.len(), s2.stack.len())
			for i := 0; i < s.stack.len(); i++ {
				assert.Equal(t, s.stack.at(i).kind, s2.stack.at(i).kind)
				if s.stack.at(i).kind == listItem {
					assert.Equal(t, s.stack.at(i).listLooseness, s2.stack.at(i).listLooseness)
					assert.Equal(t, s.stack.at(i).listContentIndent, s2.stack.at(i).listContentIndent)
				}
			}
		}
	}
}

// TestInvariant_EmptyDeserializeResets covers the deserialize(handle, buf,
// 0) contract: a zero-length buffer always resets to fresh state.
func TestInvariant_EmptyDeserializeResets(t *testing.T) {
	s := New()
	s.stack.push(newBlockQuote())
	s.stack.push(newListItem(4))
	s.matched = 1
	s.indentation = 2
	s.column = 5
	require.Greater(t, s.stack.len(), 0)

	s.Deserialize(nil)
	assert.Equal(t, 0, s.stack.len())
	assert.Equal(t, 0, s.matched)
	assert.Equal(t, 0, s.indentation)
	assert.Equal(t, 0, s.column)
}

// TestInvariant_SerializeRoundTrip_OpenStack exercises the stack-tag
// encoding of invariant (2) directly, with a hand-built mid-document state
// spanning every block kind and a loose list item, rather than relying on
// EOF having closed everything first.
func TestInvariant_SerializeRoundTrip_OpenStack(t *testing.T) {
	s := New()
	s.stack.push(newBlockQuote())
	s.stack.push(newListItem(4))
	s.stack.blocks[1].listLooseness = loose
	s.stack.push(newFencedCode(fenceTilde, 3))
	s.matched = 2
	s.indentation = 1
	s.column = 7
	s.codeSpanDelimiterLen = 2
	s.numEmphasisDelimiters = 3
	s.numEmphasisDelimitersLeft = 1
	s.emphasisDelimitersIsOpen = true

	var buf [255]byte
	n := s.Serialize(buf[:])
	require.Equal(t, headerLen+3, n)

	s2 := New()
	s2.Deserialize(buf[:n])

	assert.Equal(t, s.matched, s2.matched)
	assert.Equal(t, s.indentation, s2.indentation)
	assert.Equal(t, s.column, s2.column)
	assert.Equal(t, s.codeSpanDelimiterLen, s2.codeSpanDelimiterLen)
	assert.Equal(t, s.numEmphasisDelimiters, s2.numEmphasisDelimiters)
	assert.Equal(t, s.numEmphasisDelimitersLeft, s2.numEmphasisDelimitersLeft)
	assert.Equal(t, s.emphasisDelimitersIsOpen, s2.emphasisDelimitersIsOpen)

	require.Equal(t, s.stack.len(), s2.stack.len())
	for i := 0; i < s.stack.len(); i++ {
		assert.Equal(t, s.stack.at(i).kind, s2.stack.at(i).kind, "block %d", i)
	}
	assert.Equal(t, loose, s2.stack.at(1).listLooseness)
	assert.Equal(t, uint8(4), s2.stack.at(1).listContentIndent)
	assert.Equal(t, fenceTilde, s2.stack.at(2).fence)
	assert.Equal(t, uint8(3), s2.stack.at(2).fenceLen)
}

// TestInvariant_SerializeRoundTrip_TruncatesStack drives a stack well past
// maxStackBytes deep (300 block quotes) with matched pointing at the very
// top of the stack, the way Phase C leaves it mid-reconsumption. Serialize
// must drop the bottom of the stack down to maxStackBytes entries and rebase
// matched by the same amount, or invariant (1) breaks immediately on the far
// side of Deserialize.
func TestInvariant_SerializeRoundTrip_TruncatesStack(t *testing.T) {
	s := New()
	const depth = 300
	for i := 0; i < depth; i++ {
		s.stack.push(newBlockQuote())
	}
	s.matched = depth

	var buf [255]byte
	n := s.Serialize(buf[:])
	require.Equal(t, maxSerializedLen, n)

	s2 := New()
	s2.Deserialize(buf[:n])

	require.Equal(t, maxStackBytes, s2.stack.len())
	require.True(t, s2.checkInvariants(), "matched=%d stack=%d", s2.matched, s2.stack.len())
	assert.Equal(t, s2.stack.len(), s2.matched)
}

// TestInvariant_EmphasisRunLength is invariant (5): a run of k identical
// emphasis delimiters produces exactly k tokens of the polarity chosen at
// the head of the run, when any are consumed at all.
func TestInvariant_EmphasisRunLength(t *testing.T) {
	for _, k := range []int{1, 2, 3, 5} {
		text := "a " + strings.Repeat("*", k) + "b"
		var got []Symbol
		driveAll(t, []byte(text), func(_ *Scanner, lx *testLexer, ok bool) {
			if ok {
				switch lx.result {
				case EmphasisOpenStar, EmphasisCloseStar:
					got = append(got, lx.result)
				}
			}
		})
		if assert.NotEmpty(t, got, "k=%d", k) {
			assert.Len(t, got, k, "k=%d", k)
			first := got[0]
			for _, sym := range got {
				assert.Equal(t, first, sym, "mixed polarity within one run, k=%d", k)
			}
		}
	}
}

// TestInvariant_TightListBecomesLooseAfterBlankLine is invariant (6): a
// tight list item, once any BlankLine is emitted while it is on the stack,
// is closed with BlockCloseLoose rather than BlockClose. Looseness is
// scoped to the individual item (block.go has no shared "list" container),
// so the trailing blank line here must fall after the only item open --
// a blank line between two sibling items only makes the first of them
// loose, not the second, since the second is a fresh item never exposed
// to that blank line.
func TestInvariant_TightListBecomesLooseAfterBlankLine(t *testing.T) {
	text := "- a\n\n"
	var closes []Symbol
	driveAll(t, []byte(text), func(_ *Scanner, lx *testLexer, ok bool) {
		if ok && (lx.result == BlockClose || lx.result == BlockCloseLoose) {
			closes = append(closes, lx.result)
		}
	})
	require.NotEmpty(t, closes)
	for _, sym := range closes {
		assert.Equal(t, BlockCloseLoose, sym)
	}
}

// TestInvariant_TightListStaysTightWithoutBlankLine is the converse check:
// no blank line, no loose upgrade.
func TestInvariant_TightListStaysTightWithoutBlankLine(t *testing.T) {
	text := "- a\n- b\n"
	var closes []Symbol
	driveAll(t, []byte(text), func(_ *Scanner, lx *testLexer, ok bool) {
		if ok && (lx.result == BlockClose || lx.result == BlockCloseLoose) {
			closes = append(closes, lx.result)
		}
	})
	require.NotEmpty(t, closes)
	for _, sym := range closes {
		assert.Equal(t, BlockClose, sym)
	}
}
