package main

import "fmt"

// ErrorKind enumerates every way a decode can fail. A single enumeration
// (rather than one Go error type per failure) mirrors the source library's
// flat error-code taxonomy and keeps callers able to switch on Kind without
// type-asserting through a tree of sentinel errors.
type ErrorKind int

const (
	ErrNone ErrorKind = iota

	// Header
	ErrBadSignature
	ErrTypeNotSupported

	// Structural
	ErrInvalidFile
	ErrIhdrNotFound
	ErrMultipleIhdr
	ErrNoIdat
	ErrNoPlte
	ErrUnexpectedPlte
	ErrGamaAfterPlte
	ErrMultipleGama
	ErrIdatSizeLimit
	ErrCorruptIhdr

	// IHDR validation
	ErrBadBitDepth
	ErrBadColourType
	ErrBadBitDepthCombination
	ErrBadInterlace
	ErrImageTooBig
	ErrZeroSize

	// CRC
	ErrCrcMismatch

	// Zlib/DEFLATE
	ErrZlibHeaderCorrupted
	ErrZlibCompression
	ErrPresetDict
	ErrInvalidZlibValue
	ErrBadHuffmanCodeLengths
	ErrCorruptedFile

	// Resource
	ErrOutOfMemory
	ErrMemoryError
)

var errorMessages = map[ErrorKind]string{
	ErrNone:                   "no error",
	ErrBadSignature:           "data does not begin with the PNG signature",
	ErrTypeNotSupported:       "container type is not supported",
	ErrInvalidFile:            "chunk sequence is not valid for a PNG datastream",
	ErrIhdrNotFound:           "first chunk is not IHDR",
	ErrMultipleIhdr:           "more than one IHDR chunk present",
	ErrNoIdat:                 "no IDAT chunk present before IEND",
	ErrNoPlte:                 "indexed colour type requires a PLTE chunk",
	ErrUnexpectedPlte:         "PLTE chunk not allowed for this colour type",
	ErrGamaAfterPlte:          "gAMA chunk appeared after PLTE",
	ErrMultipleGama:           "more than one gAMA chunk present",
	ErrIdatSizeLimit:          "IDAT chunk exceeds the size limit",
	ErrCorruptIhdr:            "IHDR chunk has the wrong length",
	ErrBadBitDepth:            "invalid bit depth",
	ErrBadColourType:          "invalid colour type",
	ErrBadBitDepthCombination: "bit depth not allowed for this colour type",
	ErrBadInterlace:           "invalid interlace method",
	ErrImageTooBig:            "image dimensions exceed the maximum allowed size",
	ErrZeroSize:               "image width or height is zero",
	ErrCrcMismatch:            "chunk CRC does not match its data",
	ErrZlibHeaderCorrupted:    "zlib header is malformed",
	ErrZlibCompression:        "zlib compression method is not DEFLATE",
	ErrPresetDict:             "zlib stream requests a preset dictionary, which PNG forbids",
	ErrInvalidZlibValue:       "zlib stream contains an out-of-range value",
	ErrBadHuffmanCodeLengths:  "dynamic Huffman code-length sequence is invalid",
	ErrCorruptedFile:          "compressed data is corrupt",
	ErrOutOfMemory:            "allocation failed",
	ErrMemoryError:            "internal memory error",
}

// ErrorMessage maps an ErrorKind to a short human-readable description,
// mirroring the library's secondary error_code_to_message entry point for
// callers that only carry the numeric kind across a boundary.
func ErrorMessage(kind ErrorKind) string {
	if msg, ok := errorMessages[kind]; ok {
		return msg
	}
	return "unknown error"
}

// DecodeError is the single error type the decoder ever returns. Recovery
// is never attempted once one is produced: the first DecodeError observed
// short-circuits the rest of the decode.
type DecodeError struct {
	Kind ErrorKind
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("png: %s", ErrorMessage(e.Kind))
}
