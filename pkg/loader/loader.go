// Package loader reassembles a program image into the word slice the
// engine package installs as segment zero. Program-file loading is kept
// separate from the execution engine: it knows nothing about opcodes or
// registers, only about turning bytes into big-endian 32-bit words.
package loader

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ErrTruncated indicates that the input's length is not a multiple of
// four bytes, so it cannot be reassembled into whole 32-bit words.
var ErrTruncated = fmt.Errorf("loader: program image length is not a multiple of 4 bytes")

// LoadImage reads all of r and reassembles it into a slice of big-endian
// 32-bit words, one word per four consecutive bytes.
func LoadImage(r io.Reader) ([]uint32, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	if len(raw)%4 != 0 {
		return nil, ErrTruncated
	}
	words := make([]uint32, len(raw)/4)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(raw[i*4 : i*4+4])
	}
	return words, nil
}
