package main

import "testing"

func TestDecodeReturnsNilInfoOnError(t *testing.T) {
	info, err := Decode([]byte("not a png"))
	if err == nil {
		t.Fatalf("expected an error for non-PNG input")
	}
	if info != nil {
		t.Fatalf("expected a nil ImageInfo alongside an error, got %+v", info)
	}
}

func TestDecodeMinimalOnePixelImage(t *testing.T) {
	data := buildPNG(
		ch(typeIHDR, ihdrData(1, 1, 8, colourTruecolour)),
		ch(typeIDAT, zlibEncode(t, []byte{0, 0, 0, 0})),
		ch(typeIEND, nil),
	)
	info, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if info.Width != 1 || info.Height != 1 {
		t.Fatalf("dimensions = %dx%d, want 1x1", info.Width, info.Height)
	}
	if info.Processed != nil {
		t.Fatalf("Processed must stay nil: defiltering is not implemented")
	}
}

func TestCheckCRCToggleDisablesVerification(t *testing.T) {
	ihdr := ihdrData(1, 1, 8, colourTruecolour)
	raw := buildChunkBytes(typeIHDR, ihdr)
	raw[len(raw)-1] ^= 0xFF // corrupt the CRC

	data := append([]byte{}, pngSignature[:]...)
	data = append(data, raw...)
	data = append(data, buildChunkBytes(typeIDAT, zlibEncode(t, []byte{0, 0, 0, 0}))...)
	data = append(data, buildChunkBytes(typeIEND, nil)...)

	old := CheckCRC
	CheckCRC = false
	defer func() { CheckCRC = old }()

	if _, err := Decode(data); err != nil {
		t.Fatalf("Decode with CheckCRC disabled should ignore the bad CRC, got: %v", err)
	}
}
