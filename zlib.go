package main

// inflateZlib validates the 2-byte zlib header, rejects preset
// dictionaries, drives the DEFLATE block loop to completion, and verifies
// the trailing Adler-32 checksum against the decompressed output.
func inflateZlib(compressed []byte) ([]byte, error) {
	if len(compressed) < 2 {
		return nil, &DecodeError{Kind: ErrZlibHeaderCorrupted}
	}
	cmf := compressed[0]
	flg := compressed[1]

	if (int(cmf)*256+int(flg))%31 != 0 {
		return nil, &DecodeError{Kind: ErrZlibHeaderCorrupted}
	}
	if cmf&0x0F != 8 {
		return nil, &DecodeError{Kind: ErrZlibCompression}
	}
	if flg&0x20 != 0 {
		return nil, &DecodeError{Kind: ErrPresetDict}
	}

	br := newBitReader(compressed[2:])
	state := &inflateState{}

	for {
		final, err := inflateBlock(&br, state)
		if err != nil {
			return nil, err
		}
		if final {
			break
		}
	}

	br.alignToByte()
	var trailer [4]byte
	for i := range trailer {
		b, err := br.readByte()
		if err != nil {
			return nil, &DecodeError{Kind: ErrCorruptedFile}
		}
		trailer[i] = b
	}
	want := uint32(trailer[0])<<24 | uint32(trailer[1])<<16 | uint32(trailer[2])<<8 | uint32(trailer[3])
	if got := adler32Of(state.out); got != want {
		return nil, &DecodeError{Kind: ErrCorruptedFile}
	}

	return state.out, nil
}
