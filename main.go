package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprint(os.Stderr, "Usage: pngdecode <file.png>\n")
		os.Exit(1)
	}

	path := os.Args[1]
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read error:", err)
		os.Exit(1)
	}

	info, err := Decode(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, "decode error:", err)
		os.Exit(1)
	}

	fmt.Printf("width=%d height=%d colorType=%d bitDepth=%d uncompressedBytes=%d\n",
		info.Width, info.Height, info.ColorType, info.BitDepth, len(info.Uncompressed))
	if info.Gamma != nil {
		fmt.Printf("gamma=%d\n", *info.Gamma)
	}
	if info.Palette != nil {
		fmt.Printf("paletteEntries=%d\n", len(info.Palette))
	}
}
