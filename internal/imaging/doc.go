// Package imaging is the boundary between the codec and image files on
// disk. It loads an image into a flat 8-bit pixel buffer, bridges that
// buffer to the codec's grid view, and persists the mutated buffer
// losslessly.
//
// # Lossless Persistence
//
// The encoded bits live in the low bits of the pixel channels, so any
// lossy recompression destroys them. Save therefore refuses JPEG and GIF
// output and defaults to PNG; the 0-9 compression knob only trades file
// size for speed, never pixel values.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward, matching the codec's
// row-major traversal.
package imaging
