// Package main decodes a PNG byte buffer into image dimensions plus the
// DEFLATE-decompressed pixel stream: the chunk parser/state machine
// (signature, IHDR, ordering/multiplicity rules, IDAT accumulation), the
// zlib envelope, and the from-scratch DEFLATE block decoder and canonical
// Huffman engine it drives.
//
// Encoding, streaming input, Adam7 de-interleaving, scanline defiltering,
// palette-to-RGBA resolution, and colour management are explicitly out of
// scope; ImageInfo.Palette and ImageInfo.Gamma are captured as extension
// points for a future defiltering stage, and ImageInfo.Processed is always
// nil.
package main

// Decode parses data as a PNG datastream and returns its dimensions and
// uncompressed (but not yet defiltered) pixel stream, or the first error
// encountered. On failure the returned ImageInfo is nil; no partial
// buffers are handed back to the caller.
func Decode(data []byte) (*ImageInfo, error) {
	info, err := decodePNG(data)
	if err != nil {
		return nil, err
	}
	return info, nil
}
