package main

import "testing"

func TestPNGCRCKnownValue(t *testing.T) {
	// IEND chunks always have empty data; its CRC is a well-known
	// constant for any PNG encoder.
	got := pngCRC(typeIEND, nil)
	const wantIENDCRC = 0xAE426082
	if got != wantIENDCRC {
		t.Fatalf("CRC of IEND = %#x, want %#x", got, wantIENDCRC)
	}
}

func TestPNGCRCDependsOnTypeAndData(t *testing.T) {
	a := pngCRC(typeIDAT, []byte("hello"))
	b := pngCRC(typeIDAT, []byte("hellp"))
	if a == b {
		t.Fatalf("CRCs of different data should differ")
	}
	c := pngCRC(typeIHDR, []byte("hello"))
	if a == c {
		t.Fatalf("CRCs of the same data under different chunk types should differ")
	}
}
