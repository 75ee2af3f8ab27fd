package steg

import (
	"fmt"
	"math/big"
)

// payloadChunks returns the number of channels a payload of size bytes
// occupies at the given bit width.
func payloadChunks(size, bitWidth int) int {
	return (size*chanBits + bitWidth - 1) / bitWidth
}

// writePayload packs data, interpreted as one big-endian unsigned
// integer, into bitWidth-bit chunks written to successive channels,
// least-significant chunk first. The final chunk is zero-padded when
// bitWidth does not divide the payload's bit count.
func writePayload(cur *Cursor, data []byte, bitWidth int) error {
	v := new(big.Int).SetBytes(data)
	hi := highMask(bitWidth)
	mask := big.NewInt(int64(lowOnes(bitWidth)))
	chunk := new(big.Int)
	for i := payloadChunks(len(data), bitWidth); i > 0; i-- {
		cv, ok := cur.Next()
		if !ok {
			return fmt.Errorf("%w: image exhausted", ErrPayloadTooLarge)
		}
		chunk.And(v, mask)
		cur.Write(cv&hi | uint8(chunk.Uint64()))
		v.Rsh(v, uint(bitWidth))
	}
	return nil
}

// readPayload reads size bytes' worth of chunks in encode order and
// reassembles the big-endian byte buffer, left-padding with zero bytes
// when the recovered integer is shorter than size (leading zeros in the
// original data).
func readPayload(cur *Cursor, size, bitWidth int) ([]byte, error) {
	v := new(big.Int)
	chunk := new(big.Int)
	for i, n := 0, payloadChunks(size, bitWidth); i < n; i++ {
		cv, ok := cur.Next()
		if !ok {
			return nil, fmt.Errorf("%w: image exhausted", ErrCorruptHeader)
		}
		bits := cv & lowOnes(bitWidth)
		if left := size*chanBits - i*bitWidth; left < bitWidth {
			// padding bits in the final chunk carry no payload
			bits &= lowOnes(left)
		}
		chunk.SetUint64(uint64(bits))
		v.Or(v, chunk.Lsh(chunk, uint(i*bitWidth)))
	}
	buf := make([]byte, size)
	v.FillBytes(buf)
	return buf, nil
}
