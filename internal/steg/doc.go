// Package steg implements the LSB steganography codec: it hides an
// arbitrary byte payload in the low bits of an image's pixel channels and
// recovers it later.
//
// # Layout
//
// The encoded stream occupies successive channel slots of the grid in
// row-major, column-major, channel-ascending order:
//
//   - Prologue: 6 channels at 1 bit each. The high 3 bits are the
//     obfuscation flag (0b111 = XOR key follows, 0b000 = none), the low
//     3 bits are the payload bit width.
//   - Length field: a 32-bit payload byte count at bitWidth bits per
//     channel, least-significant chunk first.
//   - Payload: the payload bytes as one big-endian integer, split into
//     bitWidth-bit chunks, least-significant chunk first.
//
// Each channel write preserves the channel's high 8-bitWidth bits, so the
// visual damage is bounded by the chosen bit width.
//
// # Ownership
//
// The codec never owns pixel storage. Callers pass a Grid, a borrowed view
// over an externally owned buffer, and the codec holds it only for the
// duration of one Encode or Decode call. Encode mutates the buffer in
// place; Decode leaves it untouched.
//
// # Error Handling
//
// All failures are detected before or during a single linear pass and
// abort the whole operation. Encode checks capacity before the first
// write, so a failed Encode leaves the grid unmodified. Failures are
// sentinel errors (ErrCorruptHeader, ErrPayloadTooLarge, ...) wrapped
// with context; classify them with errors.Is.
//
// The XOR obfuscation is a repeating-key stream, not a cipher; it offers
// no cryptographic security.
package steg
