package steg

const (
	// prologueSlots is the number of pixels reserved for the prologue.
	prologueSlots = 2

	// prologueChunks is the number of one-bit chunks in the prologue.
	prologueChunks = prologueSlots * ChanCount

	// lengthBytes is the size of the payload length field.
	lengthBytes = 4

	lengthBits = lengthBytes * chanBits
)

// lengthChunks returns the number of channels the length field occupies
// at the given bit width.
func lengthChunks(bitWidth int) int {
	return lengthBits / bitWidth
}

// Available returns the maximum payload size in bytes that a grid with
// the given number of channel slots can hold at the given bit width,
// keeping one byte of slack. The result is negative when not even the
// header fits.
//
// Channels not claimed by the prologue or the length field each carry
// bitWidth payload bits.
func Available(channels, bitWidth int) int {
	return (channels-prologueChunks-lengthChunks(bitWidth))*bitWidth/chanBits - 1
}
