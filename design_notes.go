// Package mdscan implements the context-sensitive block/inline scanner
// described by the specification this repository was built against: the
// open-block stack, column-aware indentation, line-prefix matching, block
// opener dispatch, and emphasis/code-span flanking that a generated parser
// cannot express as ordinary grammar productions.
//
// File layout mirrors the component breakdown:
//
//	classify.go     byte classifier (ASCII-only, by design)
//	column.go       column-aware advance, the one tab-expanding primitive
//	block.go        tagged union of open container kinds
//	stack.go        the open-block stack itself
//	state.go        the overloaded "matched" cursor, split into phase+index
//	serialize.go    the compact state image and its inverse
//	scan_prefix.go  Phase B: reconsuming already-open containers
//	opener.go       Phase C: recognizing new block openers
//	inline.go       Phase D: code spans and emphasis flanking
//	scan.go         Scan itself, dispatching over the four phases
//
// No per-call diagnostic tracing is emitted; the original scanner this was
// built from logs on every call, which is debug scaffolding that has no
// place in a library other code embeds. See DESIGN.md for the full
// grounding ledger against the example repositories this package's style
// and dependencies are drawn from.
package mdscan
