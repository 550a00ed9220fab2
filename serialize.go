package mdscan

// maxSerializedLen is the specification's hard cap on a serialized state
// image.
const maxSerializedLen = 255

// headerLen is the number of fixed-layout bytes before the block stack:
// matched, indentation, column, codeSpanDelimiterLen, numEmphasisDelimiters,
// numEmphasisDelimitersLeft, emphasisDelimitersIsOpen.
const headerLen = 7

// maxStackBytes is how many block-tag bytes can follow the header within
// maxSerializedLen.
const maxStackBytes = maxSerializedLen - headerLen

func clampByte(n int) byte {
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return byte(n)
}

func clampBool(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// encodeBlockTag packs an openBlock into the one-byte wire representation:
// the top two bits are the kind, the bottom six bits are kind-specific data
// (list-item looseness+contentIndent, or fence kind+fenceLen). This is the
// only place the tagged union (block.go) is collapsed to a single byte, per
// the design note that reimplementations should keep the struct untagged
// everywhere else.
func encodeBlockTag(b openBlock) byte {
	switch b.kind {
	case listItem:
		data := byte(0)
		if b.listLooseness == loose {
			data |= 1 << 5
		}
		ci := int(b.listContentIndent) - 2
		if ci < 0 {
			ci = 0
		} else if ci > 6 {
			ci = 6
		}
		data |= byte(ci)
		return byte(listItem)<<6 | data
	case fencedCode:
		data := byte(0)
		if b.fence == fenceTilde {
			data |= 1 << 5
		}
		fl := int(b.fenceLen)
		if fl > 31 {
			fl = 31
		}
		data |= byte(fl)
		return byte(fencedCode)<<6 | data
	default:
		return byte(b.kind) << 6
	}
}

// decodeBlockTag is the inverse of encodeBlockTag. Per the error-handling
// design (spec §7), it never fails: any byte value decodes to some valid
// openBlock, saturating out-of-range data rather than rejecting the byte.
func decodeBlockTag(tag byte) openBlock {
	kind := blockKind(tag >> 6)
	data := tag & 0x3f
	switch kind {
	case listItem:
		ci := data & 0x1f
		if ci > 6 {
			ci = 6
		}
		b := openBlock{kind: listItem, listContentIndent: uint8(ci) + 2}
		if data&(1<<5) != 0 {
			b.listLooseness = loose
		}
		return b
	case fencedCode:
		b := openBlock{kind: fencedCode, fenceLen: uint8(data & 0x1f)}
		if data&(1<<5) != 0 {
			b.fence = fenceTilde
		}
		return b
	case blockQuote:
		return openBlock{kind: blockQuote}
	default:
		// The two kind bits cover exactly the four block kinds, so the
		// only value left here is IndentedCodeBlock, which carries no data.
		return openBlock{kind: indentedCodeBlock}
	}
}

// Serialize writes the Scanner's state image into buf, following the
// specification's §6 layout, and returns the number of bytes written. buf
// must have capacity for at least maxSerializedLen(255) bytes; Serialize
// never writes more than that regardless of buf's length.
//
// If the block stack is deeper than fits, only the deepest
// (innermost/most-recently-opened) tail is kept, per invariant 4: the
// truncation drops from the bottom of the stack, not the top, so the host
// never loses track of the blocks actually enclosing the current position.
// Dropping the bottom `start` entries shortens the stack out from under
// matched, which is an index into (or one/two past) that same stack, so
// matched is rebased by `start` and reclamped to the truncated tail before
// being written, keeping invariant 1 (matched <= stack.len()+1) true of the
// image Deserialize will reconstruct.
func (s *Scanner) Serialize(buf []byte) int {
	if len(buf) > maxSerializedLen {
		buf = buf[:maxSerializedLen]
	}
	if len(buf) < headerLen {
		return 0
	}

	n := s.stack.len()
	avail := len(buf) - headerLen
	if avail > maxStackBytes {
		avail = maxStackBytes
	}
	start := 0
	if n > avail {
		start = n - avail // keep the deepest tail
	}

	matched := s.matched - start
	if matched < 0 {
		matched = 0
	}
	if kept := n - start; matched > kept+1 {
		matched = kept + 1
	}

	buf[0] = clampByte(matched)
	buf[1] = clampByte(s.indentation)
	buf[2] = clampByte(s.column)
	buf[3] = clampByte(s.codeSpanDelimiterLen)
	buf[4] = clampByte(s.numEmphasisDelimiters)
	buf[5] = clampByte(s.numEmphasisDelimitersLeft)
	buf[6] = clampBool(s.emphasisDelimitersIsOpen)

	i := headerLen
	for _, b := range s.stack.blocks[start:] {
		buf[i] = encodeBlockTag(b)
		i++
	}
	return i
}

// Deserialize restores Scanner state from a buffer produced by Serialize.
// A zero-length buf resets the Scanner to fresh state, corresponding to the
// specification's deserialize() contract.
func (s *Scanner) Deserialize(buf []byte) {
	if len(buf) == 0 {
		s.Reset()
		return
	}
	if len(buf) > maxSerializedLen {
		buf = buf[:maxSerializedLen]
	}
	if len(buf) < headerLen {
		// Malformed input: fail safe to a fresh scanner rather than
		// reading out of bounds.
		s.Reset()
		return
	}

	s.matched = int(buf[0])
	s.indentation = int(buf[1])
	s.column = int(buf[2])
	s.codeSpanDelimiterLen = int(buf[3])
	s.numEmphasisDelimiters = int(buf[4])
	s.numEmphasisDelimitersLeft = int(buf[5])
	s.emphasisDelimitersIsOpen = buf[6] != 0

	tags := buf[headerLen:]
	blocks := make([]openBlock, len(tags))
	for i, tag := range tags {
		blocks[i] = decodeBlockTag(tag)
	}
	s.stack = blockStack{blocks: blocks}

	// A buffer not produced by Serialize (or corrupted in transit) could
	// carry a matched value inconsistent with the stack it was paired with;
	// saturate rather than let invariant 1 start false, matching
	// decodeBlockTag's never-fail contract.
	if s.matched > s.stack.len()+1 {
		s.matched = s.stack.len() + 1
	}
}
