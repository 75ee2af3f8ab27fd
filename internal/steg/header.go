package steg

import "fmt"

// Obfuscation flag values carried in the prologue's high 3 bits.
const (
	xorYes = 0b111000 // an XOR key is expected
	xorNo  = 0b000000 // no XOR key
)

// packBits writes value to the cursor as chunks of bitWidth bits each,
// least-significant chunk first. Each channel keeps its high 8-bitWidth
// bits and only the low bitWidth bits are overwritten.
func packBits(cur *Cursor, value uint32, chunks, bitWidth int) error {
	hi, lo := highMask(bitWidth), lowOnes(bitWidth)
	for i := 0; i < chunks; i++ {
		v, ok := cur.Next()
		if !ok {
			return fmt.Errorf("%w: image exhausted", ErrPayloadTooLarge)
		}
		cur.Write(v&hi | uint8(value)&lo)
		value >>= uint(bitWidth)
	}
	return nil
}

// unpackBits reads chunks channel values at bitWidth bits each and
// reassembles them into a value, inverting packBits.
func unpackBits(cur *Cursor, chunks, bitWidth int) (uint32, error) {
	lo := lowOnes(bitWidth)
	var value uint32
	for i := 0; i < chunks; i++ {
		v, ok := cur.Next()
		if !ok {
			return 0, fmt.Errorf("%w: image exhausted", ErrCorruptHeader)
		}
		value |= uint32(v&lo) << uint(i*bitWidth)
	}
	return value, nil
}

// writeHeader packs the prologue at one bit per channel, then the 32-bit
// payload length at bitWidth bits per channel.
func writeHeader(cur *Cursor, size, bitWidth int, obfuscated bool) error {
	prologue := uint32(bitWidth)
	if obfuscated {
		prologue |= xorYes
	}
	if err := packBits(cur, prologue, prologueChunks, 1); err != nil {
		return err
	}
	return packBits(cur, uint32(size), lengthChunks(bitWidth), bitWidth)
}

// readPrologue unpacks and validates the 6-bit prologue. The obfuscation
// sub-field must be exactly 0b111 or 0b000; the width sub-field must be a
// valid bit width.
func readPrologue(cur *Cursor) (bitWidth int, obfuscated bool, err error) {
	prologue, err := unpackBits(cur, prologueChunks, 1)
	if err != nil {
		return 0, false, err
	}
	switch prologue & uint32(highMask(3)) {
	case xorYes:
		obfuscated = true
	case xorNo:
	default:
		return 0, false, fmt.Errorf("%w: obfuscation flag %#03b", ErrCorruptHeader, prologue>>3)
	}
	bitWidth = int(prologue & uint32(lowOnes(3)))
	if bitWidth < 1 {
		return 0, false, fmt.Errorf("%w: width field is zero", ErrInvalidBitWidth)
	}
	return bitWidth, obfuscated, nil
}

// readLength unpacks the payload byte count at the bit width the
// prologue declared.
func readLength(cur *Cursor, bitWidth int) (int, error) {
	n, err := unpackBits(cur, lengthChunks(bitWidth), bitWidth)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
