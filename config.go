package main

// Compile-time options, exposed as mutable package vars since Go has no
// build-time #ifdef that fits a library's public surface as cleanly as a
// documented var a caller can flip before calling Decode.
var (
	// MaxImageSize bounds both width and height in pixels.
	MaxImageSize uint32 = 1 << 24

	// CheckCRC enables per-chunk CRC-32 verification. Unlike the source
	// library (which gated this behind a disabled-by-default build flag),
	// this defaults to on: a decoder that silently accepts corrupted
	// chunks is not a safe default for untrusted input.
	CheckCRC = true

	// IdatDefaultBlockSize is the initial capacity for the accumulated
	// IDAT buffer before geometric doubling takes over.
	IdatDefaultBlockSize = 4096
)
