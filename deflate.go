package main

// Length table for literal/length symbols 257..285: base length and extra
// bit count, per RFC 1951 §3.2.5.
var lengthBase = [29]uint16{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31,
	35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258,
}
var lengthExtra = [29]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2,
	3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0,
}

// Distance table for distance symbols 0..29.
var distBase = [30]uint16{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129, 193,
	257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
}
var distExtra = [30]uint8{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6,
	7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// codeLengthAlphabet is the order in which the 19 code-length-alphabet
// lengths are stored in a dynamic-Huffman block header.
var codeLengthAlphabet = [19]uint8{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

const maxBackrefLength = 258

var (
	fixedLitTable  huffmanTable
	fixedDistTable huffmanTable
	fixedTablesSet bool
)

// fixedTables builds (once) the fixed-Huffman literal/length and distance
// tables defined by RFC 1951 §3.2.6: symbols 0-143 use 8 bits, 144-255 use
// 9 bits, 256-279 use 7 bits, 280-287 use 8 bits; all 32 distance symbols
// use 5 bits.
func fixedTables() (*huffmanTable, *huffmanTable, error) {
	if fixedTablesSet {
		return &fixedLitTable, &fixedDistTable, nil
	}

	litLens := make([]uint8, 288)
	for i := 0; i <= 143; i++ {
		litLens[i] = 8
	}
	for i := 144; i <= 255; i++ {
		litLens[i] = 9
	}
	for i := 256; i <= 279; i++ {
		litLens[i] = 7
	}
	for i := 280; i <= 287; i++ {
		litLens[i] = 8
	}
	distLens := make([]uint8, 32)
	for i := range distLens {
		distLens[i] = 5
	}

	fixedLitTable = newHuffmanTable(9)
	if err := buildHuffmanTable(&fixedLitTable, litLens); err != nil {
		return nil, nil, err
	}
	fixedDistTable = newHuffmanTable(5)
	if err := buildHuffmanTable(&fixedDistTable, distLens); err != nil {
		return nil, nil, err
	}
	fixedTablesSet = true
	return &fixedLitTable, &fixedDistTable, nil
}

// inflateState threads the growing uncompressed output buffer through the
// block decoders; the LZ77 window is simply the tail of this slice.
type inflateState struct {
	out []byte
}

func (s *inflateState) emit(b byte) {
	s.out = append(s.out, b)
}

func (s *inflateState) copyBackref(length int, distance int) error {
	if distance > len(s.out) {
		return &DecodeError{Kind: ErrCorruptedFile}
	}
	if length > maxBackrefLength {
		return &DecodeError{Kind: ErrCorruptedFile}
	}
	// Byte-by-byte so that distance < length (RLE-style overlap) is well
	// defined: each copied byte must be able to see bytes written earlier
	// in this very call.
	start := len(s.out) - distance
	for i := 0; i < length; i++ {
		s.out = append(s.out, s.out[start+i])
	}
	return nil
}

// inflateBlock decodes a single DEFLATE block (one BFINAL+BTYPE header and
// its payload) into state.out. It returns whether this was the final block.
func inflateBlock(br *bitReader, state *inflateState) (final bool, err error) {
	finalBit, err := br.getBits(1)
	if err != nil {
		return false, err
	}
	btype, err := br.getBits(2)
	if err != nil {
		return false, err
	}

	switch btype {
	case 0:
		err = inflateStored(br, state)
	case 1:
		err = inflateHuffman(br, state, true)
	case 2:
		err = inflateHuffman(br, state, false)
	default:
		err = &DecodeError{Kind: ErrCorruptedFile}
	}
	if err != nil {
		return false, err
	}
	return finalBit == 1, nil
}

// inflateStored handles BTYPE 00: byte-align, read LEN/NLEN, copy LEN raw
// bytes verbatim.
func inflateStored(br *bitReader, state *inflateState) error {
	br.alignToByte()

	b0, err := br.readByte()
	if err != nil {
		return err
	}
	b1, err := br.readByte()
	if err != nil {
		return err
	}
	b2, err := br.readByte()
	if err != nil {
		return err
	}
	b3, err := br.readByte()
	if err != nil {
		return err
	}

	length := uint16(b0) | uint16(b1)<<8
	nlen := uint16(b2) | uint16(b3)<<8
	if length != ^nlen {
		return &DecodeError{Kind: ErrCorruptedFile}
	}

	for i := uint16(0); i < length; i++ {
		b, err := br.readByte()
		if err != nil {
			return err
		}
		state.emit(b)
	}
	return nil
}

// inflateHuffman handles BTYPE 01 (fixed) and BTYPE 10 (dynamic), sharing
// the common literal/length/back-reference decode loop once the tables are
// built.
func inflateHuffman(br *bitReader, state *inflateState, fixed bool) error {
	var litTable, distTable *huffmanTable

	if fixed {
		lit, dist, err := fixedTables()
		if err != nil {
			return err
		}
		litTable, distTable = lit, dist
	} else {
		lit, dist, err := buildDynamicTables(br)
		if err != nil {
			return err
		}
		litTable, distTable = lit, dist
	}

	return runLiteralLengthLoop(br, state, litTable, distTable)
}

// buildDynamicTables reads HLIT/HDIST/HCLEN, the code-length-alphabet
// lengths, then the run-length-encoded code lengths for the literal/length
// and distance alphabets, and builds both tables from them.
func buildDynamicTables(br *bitReader) (*huffmanTable, *huffmanTable, error) {
	hlitBits, err := br.getBits(5)
	if err != nil {
		return nil, nil, err
	}
	hdistBits, err := br.getBits(5)
	if err != nil {
		return nil, nil, err
	}
	hclenBits, err := br.getBits(4)
	if err != nil {
		return nil, nil, err
	}
	hlit := int(hlitBits) + 257
	hdist := int(hdistBits) + 1
	hclen := int(hclenBits) + 4

	var clLens [19]uint8
	for i := 0; i < hclen; i++ {
		v, err := br.getBits(3)
		if err != nil {
			return nil, nil, err
		}
		clLens[codeLengthAlphabet[i]] = uint8(v)
	}

	clTable := newHuffmanTable(7)
	if err := buildHuffmanTable(&clTable, clLens[:]); err != nil {
		return nil, nil, err
	}

	total := hlit + hdist
	scratch := newCodeLengthScratch(total)

	for len(scratch.lens) < total {
		sym, err := decodeSymbol(&clTable, br)
		if err != nil {
			return nil, nil, err
		}
		switch {
		case sym <= 15:
			scratch.append(uint8(sym), 1)
		case sym == 16:
			if len(scratch.lens) == 0 {
				return nil, nil, &DecodeError{Kind: ErrCorruptedFile}
			}
			n, err := br.getBits(2)
			if err != nil {
				return nil, nil, err
			}
			prev := scratch.lens[len(scratch.lens)-1]
			scratch.append(prev, int(n)+3)
		case sym == 17:
			n, err := br.getBits(3)
			if err != nil {
				return nil, nil, err
			}
			scratch.append(0, int(n)+3)
		case sym == 18:
			n, err := br.getBits(7)
			if err != nil {
				return nil, nil, err
			}
			scratch.append(0, int(n)+11)
		default:
			return nil, nil, &DecodeError{Kind: ErrBadHuffmanCodeLengths}
		}
	}
	if len(scratch.lens) != total {
		return nil, nil, &DecodeError{Kind: ErrBadHuffmanCodeLengths}
	}

	litTable := newHuffmanTable(15)
	if err := buildHuffmanTable(&litTable, scratch.lens[:hlit]); err != nil {
		return nil, nil, err
	}
	distTable := newHuffmanTable(15)
	if err := buildHuffmanTable(&distTable, scratch.lens[hlit:]); err != nil {
		return nil, nil, err
	}
	return &litTable, &distTable, nil
}

// runLiteralLengthLoop is the common decode loop shared by fixed and
// dynamic Huffman blocks: decode one literal/length symbol at a time,
// emitting literal bytes, copying back-references, or returning at the
// block-end symbol.
func runLiteralLengthLoop(br *bitReader, state *inflateState, litTable, distTable *huffmanTable) error {
	for {
		sym, err := decodeSymbol(litTable, br)
		if err != nil {
			return err
		}

		switch {
		case sym < 256:
			state.emit(byte(sym))
		case sym == 256:
			return nil
		case sym <= 285:
			idx := sym - 257
			length := int(lengthBase[idx])
			if extra := lengthExtra[idx]; extra > 0 {
				v, err := br.getBits(extra)
				if err != nil {
					return err
				}
				length += int(v)
			}

			distSym, err := decodeSymbol(distTable, br)
			if err != nil {
				return err
			}
			if distSym > 29 {
				return &DecodeError{Kind: ErrCorruptedFile}
			}
			distance := int(distBase[distSym])
			if extra := distExtra[distSym]; extra > 0 {
				v, err := br.getBits(extra)
				if err != nil {
					return err
				}
				distance += int(v)
			}

			if err := state.copyBackref(length, distance); err != nil {
				return err
			}
		default:
			return &DecodeError{Kind: ErrCorruptedFile}
		}
	}
}
