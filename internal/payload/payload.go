// Package payload resolves the bytes to hide and optionally compresses
// them before they reach the codec. Compression transforms the payload
// only; the on-image layout is unchanged, so the decode side must opt in
// with the matching flag.
package payload

import (
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"
)

// Source selects where the payload bytes come from: a literal string or
// a file's contents. Exactly one must be set; HasLiteral distinguishes
// an empty literal from an absent one, since a zero-length payload is
// valid.
type Source struct {
	Literal    string
	HasLiteral bool
	File       string
}

// Read returns the payload bytes for the source.
func (s Source) Read() ([]byte, error) {
	switch {
	case s.HasLiteral && s.File != "":
		return nil, fmt.Errorf("ambiguous payload source: both a string and a file were given")
	case s.HasLiteral:
		return []byte(s.Literal), nil
	case s.File != "":
		data, err := os.ReadFile(s.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read payload file: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("no payload source: provide a string or a file")
	}
}

var (
	zenc = mustNewZstdEncoder()
	zdec = mustNewZstdDecoder()
)

// Compress returns data zstd-compressed in one shot.
func Compress(data []byte) []byte {
	return zenc.EncodeAll(data, nil)
}

// Decompress reverses Compress.
func Decompress(data []byte) ([]byte, error) {
	out, err := zdec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress payload: %w", err)
	}
	return out, nil
}

func mustNewZstdEncoder() *zstd.Encoder {
	enc, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
	)
	if err != nil {
		panic(err)
	}
	return enc
}

func mustNewZstdDecoder() *zstd.Decoder {
	dec, err := zstd.NewReader(
		nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
	)
	if err != nil {
		panic(err)
	}
	return dec
}
