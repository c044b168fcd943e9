package main

// reader is a bounds-checked byte cursor over the input datastream. Every
// read fails with a DecodeError instead of panicking if it would run past
// the end of data.
type reader struct {
	data   []byte
	cursor int
}

func newReader(data []byte) *reader {
	return &reader{data: data}
}

func (r *reader) remaining() int {
	return len(r.data) - r.cursor
}

func (r *reader) readBytes(n int) ([]byte, error) {
	if n < 0 || r.remaining() < n {
		return nil, &DecodeError{Kind: ErrCorruptedFile}
	}
	b := r.data[r.cursor : r.cursor+n]
	r.cursor += n
	return b, nil
}

func (r *reader) readU32BE() (uint32, error) {
	b, err := r.readBytes(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

func (r *reader) readType() ([4]byte, error) {
	var t [4]byte
	b, err := r.readBytes(4)
	if err != nil {
		return t, err
	}
	copy(t[:], b)
	return t, nil
}
