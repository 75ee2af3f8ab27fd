package imaging

import (
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/goodieshq/solus/internal/steg"
)

// DefaultCompression is the default position of the 0-9 PNG compression
// knob.
const DefaultCompression = 4

// Load reads and decodes the image at path and normalizes it to NRGBA,
// one flat buffer of 8-bit channels, regardless of the source color
// model.
//
// Returns an error wrapping steg.ErrInvalidImage if the file cannot be
// opened or is not a decodable image.
func Load(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", steg.ErrInvalidImage, err)
	}
	return imaging.Clone(img), nil
}

// Grid wraps an NRGBA image in the codec's borrowed grid view. The pixel
// buffer is shared, not copied: mutations made through the grid are
// visible in img. Alpha bytes are outside the view and stay untouched.
func Grid(img *image.NRGBA) *steg.Grid {
	b := img.Bounds()
	return &steg.Grid{
		Pix:         img.Pix,
		Width:       b.Dx(),
		Height:      b.Dy(),
		Stride:      img.Stride,
		PixelStride: 4,
	}
}

// Save persists img at path without loss and returns the path actually
// written. A path with no extension gets ".png" appended. Lossy formats
// are refused because recompression would destroy any encoded bits.
//
// compression maps the original tool's 0-9 knob onto the PNG encoder's
// levels; out-of-range values fall back to DefaultCompression.
func Save(img image.Image, path string, compression int) (string, error) {
	if !strings.Contains(filepath.Base(path), ".") {
		path += ".png"
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		if compression < 0 || compression > 9 {
			compression = DefaultCompression
		}
		err := imaging.Save(img, path, imaging.PNGCompressionLevel(pngLevel(compression)))
		if err != nil {
			return "", fmt.Errorf("failed to save image: %w", err)
		}
	case ".bmp", ".tif", ".tiff":
		if err := imaging.Save(img, path); err != nil {
			return "", fmt.Errorf("failed to save image: %w", err)
		}
	default:
		return "", fmt.Errorf("refusing to save %q: %s is a lossy format and would destroy the encoded data", path, ext)
	}
	return path, nil
}

// pngLevel maps the 0-9 scale onto image/png's four compression levels.
func pngLevel(compression int) png.CompressionLevel {
	switch {
	case compression == 0:
		return png.NoCompression
	case compression <= 3:
		return png.BestSpeed
	case compression <= 6:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}
