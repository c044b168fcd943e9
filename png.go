package main

const (
	colourGreyscale       = 0
	colourTruecolour      = 2
	colourIndexed         = 3
	colourGreyscaleAlpha  = 4
	colourTruecolourAlpha = 6
)

// ImageInfo is the in-flight and final record of one decode: the parsed
// IHDR fields, the accumulated compressed (IDAT) buffer, the DEFLATE
// output, and the extension points (Palette, Processed) a future
// defiltering stage would consume.
type ImageInfo struct {
	Width     uint32
	Height    uint32
	ColorType uint8
	BitDepth  uint8
	Gamma     *uint32
	Palette   [][3]byte

	Compressed   []byte
	Uncompressed []byte
	Processed    []byte // always nil: defiltering is an extension point, not implemented here

	Err error
}

// bitDepthAllowed reports whether bitDepth is a legal choice for colourType,
// per the PNG IHDR table.
func bitDepthAllowed(colourType, bitDepth uint8) bool {
	switch colourType {
	case colourGreyscale:
		switch bitDepth {
		case 1, 2, 4, 8, 16:
			return true
		}
	case colourTruecolour, colourGreyscaleAlpha, colourTruecolourAlpha:
		switch bitDepth {
		case 8, 16:
			return true
		}
	case colourIndexed:
		switch bitDepth {
		case 1, 2, 4, 8:
			return true
		}
	}
	return false
}

type ihdr struct {
	Width             uint32
	Height            uint32
	BitDepth          uint8
	ColourType        uint8
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8
}

func parseIHDR(data []byte) (ihdr, error) {
	var h ihdr
	if len(data) != 13 {
		return h, &DecodeError{Kind: ErrCorruptIhdr}
	}
	h.Width = uint32(data[0])<<24 | uint32(data[1])<<16 | uint32(data[2])<<8 | uint32(data[3])
	h.Height = uint32(data[4])<<24 | uint32(data[5])<<16 | uint32(data[6])<<8 | uint32(data[7])
	h.BitDepth = data[8]
	h.ColourType = data[9]
	h.CompressionMethod = data[10]
	h.FilterMethod = data[11]
	h.InterlaceMethod = data[12]
	return h, nil
}

// validateIHDR checks every field of a parsed IHDR against the PNG rules,
// returning the first violation found.
func validateIHDR(h ihdr) error {
	switch h.ColourType {
	case colourGreyscale, colourTruecolour, colourIndexed, colourGreyscaleAlpha, colourTruecolourAlpha:
	default:
		return &DecodeError{Kind: ErrBadColourType}
	}

	switch h.BitDepth {
	case 1, 2, 4, 8, 16:
	default:
		return &DecodeError{Kind: ErrBadBitDepth}
	}

	if !bitDepthAllowed(h.ColourType, h.BitDepth) {
		return &DecodeError{Kind: ErrBadBitDepthCombination}
	}

	if h.CompressionMethod != 0 || h.FilterMethod != 0 {
		return &DecodeError{Kind: ErrCorruptIhdr}
	}
	if h.InterlaceMethod != 0 && h.InterlaceMethod != 1 {
		return &DecodeError{Kind: ErrBadInterlace}
	}

	if h.Width == 0 || h.Height == 0 {
		return &DecodeError{Kind: ErrZeroSize}
	}
	if h.Width > MaxImageSize || h.Height > MaxImageSize {
		return &DecodeError{Kind: ErrImageTooBig}
	}

	return nil
}

var (
	typeIHDR = [4]byte{'I', 'H', 'D', 'R'}
	typeGAMA = [4]byte{'g', 'A', 'M', 'A'}
	typePLTE = [4]byte{'P', 'L', 'T', 'E'}
	typeIDAT = [4]byte{'I', 'D', 'A', 'T'}
	typeIEND = [4]byte{'I', 'E', 'N', 'D'}
)

const idatSizeLimit = 1 << 30

// decodePNG runs the chunk state machine: signature, IHDR, the
// ordering/multiplicity rules for gAMA/PLTE/IDAT, and the zlib decode
// triggered by IEND.
func decodePNG(data []byte) (*ImageInfo, error) {
	r := newReader(data)
	if err := checkPNGSignature(r); err != nil {
		return nil, err
	}

	info := &ImageInfo{}

	var (
		sawIHDR      bool
		sawIDAT      bool
		sawPLTE      bool
		sawGAMA      bool
		idatBreached bool // a non-IDAT chunk has appeared after at least one IDAT
	)

	for {
		c, err := readChunk(r)
		if err != nil {
			return nil, err
		}

		if CheckCRC {
			if pngCRC(c.Type, c.Data) != c.CRC {
				return nil, &DecodeError{Kind: ErrCrcMismatch}
			}
		}

		switch c.Type {
		case typeIHDR:
			if sawIHDR {
				return nil, &DecodeError{Kind: ErrMultipleIhdr}
			}
			if c.Length != 13 {
				return nil, &DecodeError{Kind: ErrCorruptIhdr}
			}
			h, err := parseIHDR(c.Data)
			if err != nil {
				return nil, err
			}
			if err := validateIHDR(h); err != nil {
				return nil, err
			}
			info.Width = h.Width
			info.Height = h.Height
			info.ColorType = h.ColourType
			info.BitDepth = h.BitDepth
			sawIHDR = true

		case typeGAMA:
			if !sawIHDR {
				return nil, &DecodeError{Kind: ErrIhdrNotFound}
			}
			if sawPLTE {
				return nil, &DecodeError{Kind: ErrGamaAfterPlte}
			}
			if sawGAMA {
				return nil, &DecodeError{Kind: ErrMultipleGama}
			}
			if len(c.Data) != 4 {
				return nil, &DecodeError{Kind: ErrInvalidFile}
			}
			g := uint32(c.Data[0])<<24 | uint32(c.Data[1])<<16 | uint32(c.Data[2])<<8 | uint32(c.Data[3])
			info.Gamma = &g
			sawGAMA = true

		case typePLTE:
			if !sawIHDR {
				return nil, &DecodeError{Kind: ErrIhdrNotFound}
			}
			if info.ColorType == colourGreyscale || info.ColorType == colourGreyscaleAlpha {
				return nil, &DecodeError{Kind: ErrUnexpectedPlte}
			}
			if len(c.Data)%3 != 0 || len(c.Data)/3 > 256 {
				return nil, &DecodeError{Kind: ErrInvalidFile}
			}
			entries := len(c.Data) / 3
			info.Palette = make([][3]byte, entries)
			for i := 0; i < entries; i++ {
				info.Palette[i] = [3]byte{c.Data[i*3], c.Data[i*3+1], c.Data[i*3+2]}
			}
			sawPLTE = true

		case typeIDAT:
			if !sawIHDR {
				return nil, &DecodeError{Kind: ErrIhdrNotFound}
			}
			if sawIDAT && idatBreached {
				return nil, &DecodeError{Kind: ErrInvalidFile}
			}
			if c.Length > idatSizeLimit {
				return nil, &DecodeError{Kind: ErrIdatSizeLimit}
			}
			appendCompressed(info, c.Data)
			sawIDAT = true

		case typeIEND:
			if !sawIHDR {
				return nil, &DecodeError{Kind: ErrIhdrNotFound}
			}
			if !sawIDAT {
				return nil, &DecodeError{Kind: ErrNoIdat}
			}
			if info.ColorType == colourIndexed && !sawPLTE {
				return nil, &DecodeError{Kind: ErrNoPlte}
			}

			uncompressed, err := inflateZlib(info.Compressed)
			if err != nil {
				return nil, err
			}
			info.Uncompressed = uncompressed
			return info, nil

		default:
			if !sawIHDR {
				return nil, &DecodeError{Kind: ErrIhdrNotFound}
			}
			if c.isAncillary() {
				// Unknown ancillary chunk: safe to skip per PNG's chunk
				// naming convention.
				if sawIDAT {
					idatBreached = true
				}
				continue
			}
			return nil, &DecodeError{Kind: ErrInvalidFile}
		}

		if c.Type != typeIDAT && c.Type != typeIHDR && sawIDAT {
			idatBreached = true
		}
	}
}

// appendCompressed grows info.Compressed geometrically from a
// IdatDefaultBlockSize floor, mirroring the source library's realloc
// policy but via append's own amortized-doubling growth.
func appendCompressed(info *ImageInfo, data []byte) {
	if info.Compressed == nil {
		cap0 := IdatDefaultBlockSize
		if len(data) > cap0 {
			cap0 = len(data)
		}
		info.Compressed = make([]byte, 0, cap0)
	}
	info.Compressed = append(info.Compressed, data...)
}
