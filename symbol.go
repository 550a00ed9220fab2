package mdscan

// Symbol identifies a token the scanner can emit, or a mask-only bit the
// host uses to tell the scanner about grammar and lexical context it
// otherwise has no way to observe.
//
// AtxH1..AtxH6 are guaranteed contiguous so that the ATX heading
// recognizer can compute AtxH(level) by offset from AtxH1.
type Symbol uint16

// Token alphabet, in the order listed in the specification.
const (
	LineEnding Symbol = iota
	Indentation
	VirtualSpace
	MatchingDone
	BlockClose
	BlockCloseLoose
	BlockContinuation
	LazyContinuation

	BlockQuoteStart
	IndentedChunkStart

	AtxH1
	AtxH2
	AtxH3
	AtxH4
	AtxH5
	AtxH6

	SetextH1Underline
	SetextH2Underline
	SetextH2UnderlineOrThematicBreak
	ThematicBreak

	ListMarkerMinus
	ListMarkerPlus
	ListMarkerStar
	ListMarkerParenthesis
	ListMarkerDot

	FencedCodeBlockStart
	BlankLine

	CodeSpanStart
	CodeSpanClose

	// LastTokenWhitespace and LastTokenPunctuation are mask-only: the host
	// sets them to tell the scanner the class of the token it emitted
	// immediately prior to this call. The scanner never sets its result
	// symbol to either of these.
	LastTokenWhitespace
	LastTokenPunctuation

	EmphasisOpenStar
	EmphasisOpenUnderscore
	EmphasisCloseStar
	EmphasisCloseUnderscore

	numSymbols
)

// AtxH returns the Symbol for an ATX heading of the given 1-based level,
// which must be in [1,6].
func AtxH(level int) Symbol {
	return AtxH1 + Symbol(level-1)
}

var symbolNames = [...]string{
	LineEnding:                       "LineEnding",
	Indentation:                      "Indentation",
	VirtualSpace:                     "VirtualSpace",
	MatchingDone:                     "MatchingDone",
	BlockClose:                       "BlockClose",
	BlockCloseLoose:                  "BlockCloseLoose",
	BlockContinuation:                "BlockContinuation",
	LazyContinuation:                 "LazyContinuation",
	BlockQuoteStart:                  "BlockQuoteStart",
	IndentedChunkStart:               "IndentedChunkStart",
	AtxH1:                            "AtxH1Marker",
	AtxH2:                            "AtxH2Marker",
	AtxH3:                            "AtxH3Marker",
	AtxH4:                            "AtxH4Marker",
	AtxH5:                            "AtxH5Marker",
	AtxH6:                            "AtxH6Marker",
	SetextH1Underline:                "SetextH1Underline",
	SetextH2Underline:                "SetextH2Underline",
	SetextH2UnderlineOrThematicBreak: "SetextH2UnderlineOrThematicBreak",
	ThematicBreak:                    "ThematicBreak",
	ListMarkerMinus:                  "ListMarkerMinus",
	ListMarkerPlus:                   "ListMarkerPlus",
	ListMarkerStar:                   "ListMarkerStar",
	ListMarkerParenthesis:            "ListMarkerParenthesis",
	ListMarkerDot:                    "ListMarkerDot",
	FencedCodeBlockStart:             "FencedCodeBlockStart",
	BlankLine:                        "BlankLine",
	CodeSpanStart:                    "CodeSpanStart",
	CodeSpanClose:                    "CodeSpanClose",
	LastTokenWhitespace:              "LastTokenWhitespace",
	LastTokenPunctuation:             "LastTokenPunctuation",
	EmphasisOpenStar:                 "EmphasisOpenStar",
	EmphasisOpenUnderscore:           "EmphasisOpenUnderscore",
	EmphasisCloseStar:                "EmphasisCloseStar",
	EmphasisCloseUnderscore:          "EmphasisCloseUnderscore",
}

// String implements fmt.Stringer, following the teacher's hand-written
// "Format"-table convention (scandown.BlockType.Format) rather than relying
// on a generated stringer file.
func (s Symbol) String() string {
	if int(s) < len(symbolNames) {
		if name := symbolNames[s]; name != "" {
			return name
		}
	}
	return "Symbol(" + itoa(int(s)) + ")"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// SymbolSet is the valid_symbols mask the host passes into Scan: the set of
// tokens the grammar would currently accept. The scanner must never set its
// result symbol to one absent from the set.
type SymbolSet [numSymbols]bool

// NewSymbolSet builds a SymbolSet with exactly the given symbols valid.
func NewSymbolSet(symbols ...Symbol) SymbolSet {
	var set SymbolSet
	for _, s := range symbols {
		set[s] = true
	}
	return set
}

// Has reports whether s is valid in the set.
func (set SymbolSet) Has(s Symbol) bool {
	return int(s) < len(set) && set[s]
}
