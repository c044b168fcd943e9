package main

import "testing"

func TestBitReaderGetBits(t *testing.T) {
	// 0b10110010, 0b00001111 as bytes; LSB-first reading of byte 0 gives
	// bits 0,1,0,0,1,1,0,1 (bit 0 of 0xB2 is 0).
	data := []byte{0xB2, 0x0F}
	br := newBitReader(data)

	for _, tc := range []struct {
		n    uint8
		want uint32
	}{
		{4, 0x2}, // low 4 bits of 0xB2
		{4, 0xB}, // high 4 bits of 0xB2
		{8, 0x0F},
	} {
		got, err := br.getBits(tc.n)
		if err != nil {
			t.Fatalf("getBits(%d): %v", tc.n, err)
		}
		if got != tc.want {
			t.Fatalf("getBits(%d) = %#x, want %#x", tc.n, got, tc.want)
		}
	}

	if !br.atEOF() {
		t.Fatalf("expected EOF after consuming all bits")
	}
}

func TestBitReaderPeekDoesNotConsume(t *testing.T) {
	br := newBitReader([]byte{0xB2}) // low nibble 0x2, high nibble 0xB
	v1, err := br.peekBits(4)
	if err != nil {
		t.Fatalf("peekBits: %v", err)
	}
	v2, err := br.peekBits(4)
	if err != nil {
		t.Fatalf("peekBits: %v", err)
	}
	if v1 != v2 || v1 != 0x2 {
		t.Fatalf("peekBits should be idempotent and non-consuming, got %#x then %#x", v1, v2)
	}
	br.consume(4)
	v3, err := br.peekBits(4)
	if err != nil {
		t.Fatalf("peekBits: %v", err)
	}
	if v3 != 0xB {
		t.Fatalf("peekBits after consume(4) = %#x, want 0xB", v3)
	}
}

func TestBitReaderAlignToByte(t *testing.T) {
	br := newBitReader([]byte{0xFF, 0xAA})
	if _, err := br.getBits(3); err != nil {
		t.Fatalf("getBits: %v", err)
	}
	br.alignToByte()
	b, err := br.readByte()
	if err != nil {
		t.Fatalf("readByte: %v", err)
	}
	if b != 0xAA {
		t.Fatalf("readByte after align = %#x, want 0xAA", b)
	}
}

func TestBitReaderErrorsPastEnd(t *testing.T) {
	br := newBitReader([]byte{0x01})
	if _, err := br.getBits(8); err != nil {
		t.Fatalf("first getBits(8): %v", err)
	}
	if _, err := br.getBits(1); err == nil {
		t.Fatalf("expected error reading past end of stream")
	}
}
