package steg

import "fmt"

// chanBits is the number of bits in one channel value.
const chanBits = 8

// lowOnes returns a mask with the low n bits set, i.e. 2^n - 1.
// n outside [0,8] is a programming error and panics.
func lowOnes(n int) uint8 {
	if n < 0 || n > chanBits {
		panic(fmt.Sprintf("steg: mask width %d outside [0,%d]", n, chanBits))
	}
	return uint8(1<<uint(n) - 1)
}

// highMask returns the complement of lowOnes(n) within a channel:
// bits n..7 set.
func highMask(n int) uint8 {
	return lowOnes(chanBits) ^ lowOnes(n)
}
