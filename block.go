package mdscan

// blockKind classifies an open container block.
type blockKind uint8

const (
	blockQuote blockKind = iota
	indentedCodeBlock
	listItem
	fencedCode
)

// fenceKind distinguishes the two fence characters a FencedCode block can
// use.
type fenceKind uint8

const (
	fenceBacktick fenceKind = iota
	fenceTilde
)

// looseness is the tight/loose attribute of a list item. It only ever
// flips from tight to loose, never back, for the lifetime of the item.
type looseness uint8

const (
	tight looseness = iota
	loose
)

// openBlock is the tagged union described in the specification's data
// model: a single struct carries kind-specific fields, rather than the
// single overloaded enum-tag byte the original scanner used. The one-byte
// packed encoding exists only at the serialize.go boundary.
type openBlock struct {
	kind blockKind

	// listLooseness and listContentIndent are valid only for listItem.
	// listContentIndent is the number of columns (2..8) a continuation
	// line must match; it is fixed when the item is opened.
	listLooseness     looseness
	listContentIndent uint8

	// fence and fenceLen are valid only for fencedCode: the fence
	// character used to open the block, and the run length of that
	// opening fence.
	fence    fenceKind
	fenceLen uint8
}

func newBlockQuote() openBlock {
	return openBlock{kind: blockQuote}
}

func newIndentedCodeBlock() openBlock {
	return openBlock{kind: indentedCodeBlock}
}

func newListItem(contentIndent int) openBlock {
	if contentIndent < 2 {
		contentIndent = 2
	} else if contentIndent > 8 {
		contentIndent = 8
	}
	return openBlock{kind: listItem, listContentIndent: uint8(contentIndent)}
}

func newFencedCode(fk fenceKind, fenceLen int) openBlock {
	if fenceLen > 255 {
		fenceLen = 255
	}
	return openBlock{kind: fencedCode, fence: fk, fenceLen: uint8(fenceLen)}
}

func (b openBlock) isLoose() bool {
	return b.kind == listItem && b.listLooseness == loose
}

// closeSymbol returns the token that should be emitted when this block is
// closed: BlockCloseLoose for a loose list item, BlockClose otherwise.
func (b openBlock) closeSymbol() Symbol {
	if b.isLoose() {
		return BlockCloseLoose
	}
	return BlockClose
}
