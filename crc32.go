package main

import "hash/crc32"

// pngCRC computes the CRC-32 (IEEE, polynomial 0xEDB88320) over a chunk's
// type and data fields, exactly as required by the PNG chunk layout (the
// length field is never part of the CRC). stdlib's hash/crc32 implements
// the identical table-and-fold algorithm the PNG spec describes in its
// Annex D sample code, so there's no reason to carry a second hand-rolled
// table alongside it.
func pngCRC(chunkType [4]byte, data []byte) uint32 {
	c := crc32.NewIEEE()
	c.Write(chunkType[:])
	c.Write(data)
	return c.Sum32()
}
