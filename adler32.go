package main

import "hash/adler32"

// adler32Of computes the RFC 1950 Adler-32 checksum of the given bytes,
// used to verify the zlib trailer against the decompressed output.
func adler32Of(data []byte) uint32 {
	return adler32.Checksum(data)
}
