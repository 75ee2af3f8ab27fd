package steg

import "errors"

// Failure kinds surfaced by the codec. Wrapped values carry context;
// classify with errors.Is.
var (
	// ErrInvalidImage indicates the pixel grid could not be constructed
	// from the source image.
	ErrInvalidImage = errors.New("invalid image")

	// ErrCorruptHeader indicates the prologue or length field failed
	// validation on decode: the image was not encoded by this codec, or
	// was encoded by an incompatible version.
	ErrCorruptHeader = errors.New("corrupt header")

	// ErrInvalidBitWidth indicates a bit width outside [1,7].
	ErrInvalidBitWidth = errors.New("invalid bit width")

	// ErrMissingKey indicates the prologue signals obfuscation but no XOR
	// key was supplied.
	ErrMissingKey = errors.New("xor key required but not provided")

	// ErrInvalidKey indicates an empty XOR key was supplied where one is
	// required.
	ErrInvalidKey = errors.New("xor key must not be empty")

	// ErrPayloadTooLarge indicates the payload does not fit in the image
	// at the requested bit width.
	ErrPayloadTooLarge = errors.New("payload too large for image")
)
