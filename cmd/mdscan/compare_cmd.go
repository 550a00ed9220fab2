package main

import (
	"flag"
	"fmt"

	"github.com/cordwood/mdscan"
	"github.com/russross/blackfriday/v2"
)

// blockTally counts the block-level constructs both parsers recognize.
// mdscan counts list *markers* (one per item); blackfriday counts list
// *nodes* (one per list, however many items it holds) -- the two numbers
// are not expected to match exactly, only to move together.
type blockTally struct {
	headings    [7]int // index by level, 1..6; index 0 unused
	lists       int
	codeBlocks  int
	blockQuotes int
	thematic    int
}

// mdExtensions mirrors cmd/poc's extension set: NoIntraEmphasis, FencedCode,
// Autolink, Strikethrough, SpaceHeadings, HeadingIDs, BackslashLineBreak.
// HeadingIDs is what pulls shurcooL/sanitized_anchor_name in transitively;
// mdscan itself never imports it.
const mdExtensions = blackfriday.NoIntraEmphasis |
	blackfriday.FencedCode |
	blackfriday.Autolink |
	blackfriday.Strikethrough |
	blackfriday.SpaceHeadings |
	blackfriday.HeadingIDs |
	blackfriday.BackslashLineBreak

// runCompare parses the same input through mdscan's own scanner and through
// blackfriday's full parser, then prints both blocks tallies side by side
// as an independent cross-check of mdscan's block-opener dispatch -- ground:
// cmd/poc's use of blackfriday to parse and walk the stream file.
func runCompare(args []string) error {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	buf, err := readInput(fs.Args())
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	scanTally := tallyScanner(buf)
	bfTally := tallyBlackfriday(buf)

	fmt.Printf("%-14s %8s %8s\n", "construct", "mdscan", "blackfriday")
	for level := 1; level <= 6; level++ {
		fmt.Printf("heading h%-5d %8d %8d\n", level, scanTally.headings[level], bfTally.headings[level])
	}
	fmt.Printf("%-14s %8d %8d  (markers vs lists, see above)\n", "lists", scanTally.lists, bfTally.lists)
	fmt.Printf("%-14s %8d %8d\n", "code blocks", scanTally.codeBlocks, bfTally.codeBlocks)
	fmt.Printf("%-14s %8d %8d\n", "block quotes", scanTally.blockQuotes, bfTally.blockQuotes)
	fmt.Printf("%-14s %8d %8d\n", "thematic", scanTally.thematic, bfTally.thematic)
	return nil
}

func tallyScanner(buf []byte) blockTally {
	var t blockTally
	walk(buf, func(tok token) {
		switch tok.Symbol {
		case mdscan.AtxH1:
			t.headings[1]++
		case mdscan.AtxH2:
			t.headings[2]++
		case mdscan.AtxH3:
			t.headings[3]++
		case mdscan.AtxH4:
			t.headings[4]++
		case mdscan.AtxH5:
			t.headings[5]++
		case mdscan.AtxH6:
			t.headings[6]++
		case mdscan.SetextH1Underline:
			t.headings[1]++
		case mdscan.SetextH2Underline:
			t.headings[2]++
		case mdscan.SetextH2UnderlineOrThematicBreak:
			t.headings[2]++
			t.thematic++
		case mdscan.ThematicBreak:
			t.thematic++
		case mdscan.ListMarkerMinus, mdscan.ListMarkerPlus, mdscan.ListMarkerStar,
			mdscan.ListMarkerDot, mdscan.ListMarkerParenthesis:
			t.lists++
		case mdscan.FencedCodeBlockStart, mdscan.IndentedChunkStart:
			t.codeBlocks++
		case mdscan.BlockQuoteStart:
			t.blockQuotes++
		}
	}, func(textRun) {})
	return t
}

func tallyBlackfriday(buf []byte) blockTally {
	var t blockTally
	md := blackfriday.New(blackfriday.WithExtensions(mdExtensions))
	doc := md.Parse(buf)
	doc.Walk(func(n *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if !entering {
			return blackfriday.GoToNext
		}
		switch n.Type {
		case blackfriday.Heading:
			if n.Level >= 1 && n.Level <= 6 {
				t.headings[n.Level]++
			}
		case blackfriday.List:
			t.lists++
		case blackfriday.CodeBlock:
			t.codeBlocks++
		case blackfriday.BlockQuote:
			t.blockQuotes++
		case blackfriday.HorizontalRule:
			t.thematic++
		}
		return blackfriday.GoToNext
	})
	return t
}
