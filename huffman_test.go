package main

import "testing"

func TestReverseBits(t *testing.T) {
	for _, tc := range []struct {
		value uint32
		bits  uint8
		want  uint32
	}{
		{0b001, 3, 0b100},
		{0b101, 3, 0b101},
		{0b0000, 4, 0b0000},
		{0b1000, 4, 0b0001},
	} {
		got := reverseBits(tc.value, tc.bits)
		if got != tc.want {
			t.Fatalf("reverseBits(%#b, %d) = %#b, want %#b", tc.value, tc.bits, got, tc.want)
		}
	}
}

// TestBuildAndDecodeHuffmanRoundTrip builds a small canonical table from a
// fixed code-length vector and checks that encoding each symbol by hand
// (MSB-first, per the canonical algorithm) decodes back to the same symbol
// when fed through the bit-reversed lookup table LSB-first, as the DEFLATE
// bitstream does.
func TestBuildAndDecodeHuffmanRoundTrip(t *testing.T) {
	// Symbols: A=0 (len 2), B=1 (len 1), C=2 (len 3), D=3 (len 3).
	// Canonical codes: B=0 (1 bit), A=10 (2 bits), C=110 (3 bits), D=111 (3 bits).
	lens := []uint8{2, 1, 3, 3}
	table := newHuffmanTable(3)
	if err := buildHuffmanTable(&table, lens); err != nil {
		t.Fatalf("buildHuffmanTable: %v", err)
	}

	cases := []struct {
		code    uint32
		bits    uint8
		wantSym uint16
	}{
		{0b0, 1, 1},   // B
		{0b10, 2, 0},  // A
		{0b110, 3, 2}, // C
		{0b111, 3, 3}, // D
	}

	for _, c := range cases {
		// Pack the MSB-first canonical code into an LSB-first bit stream
		// byte the same way buildHuffmanTable's fan-out expects: left-align
		// the code within maxBits (padding bit = 0), then bit-reverse.
		packed := reverseBits(c.code<<(table.maxBits-c.bits), table.maxBits)
		br := newBitReader([]byte{byte(packed)})
		sym, err := decodeSymbol(&table, &br)
		if err != nil {
			t.Fatalf("decodeSymbol: %v", err)
		}
		if sym != c.wantSym {
			t.Fatalf("decodeSymbol(code=%03b) = %d, want %d", c.code, sym, c.wantSym)
		}
	}
}

func TestBuildHuffmanTableRejectsOutOfRangeLength(t *testing.T) {
	table := newHuffmanTable(3)
	lens := []uint8{20}
	if err := buildHuffmanTable(&table, lens); err == nil {
		t.Fatalf("expected error for out-of-range code length")
	}
}

func TestDecodeSymbolFailsOnUnassignedPrefix(t *testing.T) {
	// Single symbol of length 1: code "0". Bit prefix "1..." is never
	// assigned and must fail to decode.
	table := newHuffmanTable(2)
	if err := buildHuffmanTable(&table, []uint8{1}); err != nil {
		t.Fatalf("buildHuffmanTable: %v", err)
	}
	br := newBitReader([]byte{0xFF}) // all 1 bits
	if _, err := decodeSymbol(&table, &br); err == nil {
		t.Fatalf("expected error decoding an unassigned code prefix")
	}
}
