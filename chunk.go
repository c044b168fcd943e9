package main

var pngSignature = [8]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func checkPNGSignature(r *reader) error {
	sig, err := r.readBytes(len(pngSignature))
	if err != nil {
		return &DecodeError{Kind: ErrBadSignature}
	}
	for i, b := range pngSignature {
		if sig[i] != b {
			return &DecodeError{Kind: ErrBadSignature}
		}
	}
	return nil
}

// chunk is one PNG chunk: length (data-field length only), 4-byte type,
// the data slice itself, and the trailing CRC.
type chunk struct {
	Length uint32
	Type   [4]byte
	Data   []byte
	CRC    uint32
}

// readChunk reads one chunk (length, type, data, crc) from the cursor,
// bounds-checking every field.
func readChunk(r *reader) (chunk, error) {
	var c chunk

	length, err := r.readU32BE()
	if err != nil {
		return c, &DecodeError{Kind: ErrCorruptedFile}
	}
	if length > (1<<31)-1 {
		return c, &DecodeError{Kind: ErrCorruptedFile}
	}

	typ, err := r.readType()
	if err != nil {
		return c, &DecodeError{Kind: ErrCorruptedFile}
	}

	data, err := r.readBytes(int(length))
	if err != nil {
		return c, &DecodeError{Kind: ErrCorruptedFile}
	}

	crc, err := r.readU32BE()
	if err != nil {
		return c, &DecodeError{Kind: ErrCorruptedFile}
	}

	c.Length = length
	c.Type = typ
	c.Data = data
	c.CRC = crc
	return c, nil
}

// isAncillary reports whether a chunk type's bit-5 ("case bit") of its
// first byte is set, the PNG convention marking ancillary (safe to skip)
// chunk types. Critical chunk types have the bit clear (uppercase first
// letter).
func (c chunk) isAncillary() bool {
	return c.Type[0]&0x20 != 0
}

func (c chunk) typeName() string {
	return string(c.Type[:])
}
