package steg

// ChanCount is the number of channels per pixel that carry hidden data.
// A fourth (alpha) byte in the backing buffer, if present, is skipped via
// Grid.PixelStride and never touched.
const ChanCount = 3

// Grid is a borrowed view over externally owned pixel storage. The codec
// reads and writes channel values through it but never allocates, resizes,
// or retains the buffer beyond a single call.
type Grid struct {
	// Pix holds the channel values. Pix[row*Stride + col*PixelStride + c]
	// is channel c of the pixel at (row, col).
	Pix []uint8

	// Width and Height are the grid dimensions in pixels.
	Width  int
	Height int

	// Stride is the byte offset between the starts of consecutive rows.
	Stride int

	// PixelStride is the byte offset between the starts of consecutive
	// pixels within a row (3 for packed RGB, 4 for RGBA).
	PixelStride int
}

// Channels returns the total number of data-carrying channel slots.
func (g *Grid) Channels() int {
	return g.Width * g.Height * ChanCount
}

// Cursor walks a Grid's channel values sequentially: row-major, then
// column-major, then channel index ascending. The decoder must reproduce
// the encoder's traversal exactly, so this ordering is load-bearing.
//
// One cursor backs an entire encode or decode call; the header and the
// payload consume disjoint prefixes of it. A cursor is not restartable.
type Cursor struct {
	grid *Grid
	row  int
	col  int
	ch   int
	idx  int // byte index of the value most recently yielded by Next
}

// NewCursor returns a cursor positioned before the grid's first channel.
func NewCursor(g *Grid) *Cursor {
	return &Cursor{grid: g, idx: -1}
}

// Next yields the next channel value in traversal order, or false when
// the grid is exhausted.
func (c *Cursor) Next() (uint8, bool) {
	if c.grid.Width <= 0 || c.row >= c.grid.Height {
		return 0, false
	}
	c.idx = c.row*c.grid.Stride + c.col*c.grid.PixelStride + c.ch
	v := c.grid.Pix[c.idx]
	if c.ch++; c.ch == ChanCount {
		c.ch = 0
		if c.col++; c.col == c.grid.Width {
			c.col = 0
			c.row++
		}
	}
	return v, true
}

// Write commits a new value at the position most recently yielded by
// Next. Each position is written at most once per traversal.
func (c *Cursor) Write(v uint8) {
	if c.idx < 0 {
		panic("steg: cursor Write before Next")
	}
	c.grid.Pix[c.idx] = v
}
