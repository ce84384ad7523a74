package renderer

import (
	"image"
	"image/color"

	"github.com/eternalStudent/RayTracer/pkg/core"
)

// PixelBuffer is a row-major image of RGB byte triples
type PixelBuffer struct {
	Width, Height int
	Pix           []byte // len = Width*Height*3
}

// NewPixelBuffer allocates a black buffer of the given size
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*3),
	}
}

// offset returns the index of the red byte of pixel (x, y)
func (pb *PixelBuffer) offset(x, y int) int {
	return (y*pb.Width + x) * 3
}

// Set stores a color at (x, y). Distinct rows never share bytes, so
// workers may write disjoint rows concurrently.
func (pb *PixelBuffer) Set(x, y int, c core.Color) {
	i := pb.offset(x, y)
	pb.Pix[i], pb.Pix[i+1], pb.Pix[i+2] = c.ToBytes()
}

// At returns the RGB bytes of pixel (x, y)
func (pb *PixelBuffer) At(x, y int) (r, g, b uint8) {
	i := pb.offset(x, y)
	return pb.Pix[i], pb.Pix[i+1], pb.Pix[i+2]
}

// ToImage converts the buffer to an opaque RGBA image
func (pb *PixelBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, pb.Width, pb.Height))
	for y := 0; y < pb.Height; y++ {
		for x := 0; x < pb.Width; x++ {
			r, g, b := pb.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
