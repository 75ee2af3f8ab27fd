package imaging

import (
	"bufio"
	"fmt"
	"image"
	"io"
)

// Show writes a human-readable dump of img's pixel matrix to w: one line
// per row of [R G B A] tuples, preceded by the dimensions.
func Show(w io.Writer, img *image.NRGBA) error {
	bw := bufio.NewWriter(w)
	b := img.Bounds()
	fmt.Fprintf(bw, "%dx%d\n", b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+b.Dx()*4]
		for x := 0; x < b.Dx(); x++ {
			if x > 0 {
				bw.WriteByte(' ')
			}
			px := row[x*4 : x*4+4]
			fmt.Fprintf(bw, "[%3d %3d %3d %3d]", px[0], px[1], px[2], px[3])
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
