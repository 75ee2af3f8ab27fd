package steg

import "fmt"

// Encode hides payload in the low bitWidth bits of grid's channels,
// mutating the pixel buffer in place. A non-nil key obfuscates the
// payload with a repeating-key XOR and sets the prologue's obfuscation
// flag; a nil key leaves the payload as-is.
//
// Capacity is checked before the first write, so a failed Encode leaves
// the grid untouched.
func Encode(grid *Grid, payload []byte, bitWidth int, key []byte) error {
	if bitWidth < 1 || bitWidth > chanBits-1 {
		return fmt.Errorf("%w: %d not in [1,7]", ErrInvalidBitWidth, bitWidth)
	}
	if avail := Available(grid.Channels(), bitWidth); len(payload) > avail {
		return fmt.Errorf("%w: %d bytes, %d available at width %d",
			ErrPayloadTooLarge, len(payload), avail, bitWidth)
	}

	data := payload
	if key != nil {
		var err error
		if data, err = Xor(payload, key); err != nil {
			return err
		}
	}

	cur := NewCursor(grid)
	if err := writeHeader(cur, len(data), bitWidth, key != nil); err != nil {
		return err
	}
	return writePayload(cur, data, bitWidth)
}

// Decode recovers the payload hidden in grid. The pixel buffer is not
// modified. A key must be supplied when the prologue signals obfuscation
// (ErrMissingKey otherwise); a key supplied when none was signalled is
// ignored. A wrong key yields garbage bytes, not an error.
func Decode(grid *Grid, key []byte) ([]byte, error) {
	cur := NewCursor(grid)
	bitWidth, obfuscated, err := readPrologue(cur)
	if err != nil {
		return nil, err
	}
	if obfuscated && key == nil {
		return nil, ErrMissingKey
	}

	size, err := readLength(cur, bitWidth)
	if err != nil {
		return nil, err
	}
	// A declared size past the grid's capacity means the image was never
	// encoded; reject before allocating.
	if rest := grid.Channels() - prologueChunks - lengthChunks(bitWidth); payloadChunks(size, bitWidth) > rest {
		return nil, fmt.Errorf("%w: declared payload of %d bytes exceeds image capacity", ErrCorruptHeader, size)
	}

	data, err := readPayload(cur, size, bitWidth)
	if err != nil {
		return nil, err
	}
	if obfuscated {
		return Xor(data, key)
	}
	return data, nil
}
