package stream

import (
	"encoding/binary"
	"fmt"
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// Frame represents a frame of RGB pixels to display on an LED matrix.
type Frame struct {
	width  int
	height int
	pixels []colorful.Color
}

// NewFrame scales img down to a width x height LED matrix.
func NewFrame(img image.Image, width int, height int) *Frame {
	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	f := new(Frame)
	f.width = width
	f.height = height
	f.pixels = make([]colorful.Color, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c, _ := colorful.MakeColor(scaled.RGBAAt(x, y))
			f.pixels[y*width+x] = c
		}
	}

	return f
}

// Len returns the number of pixels.
func (f *Frame) Len() int {
	return len(f.pixels)
}

// MarshalBinary converts a Frame into binary data: the pixel count as a
// little-endian uint16 followed by row-major RGB triplets.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	if len(f.pixels) > math.MaxUint16 {
		return nil, fmt.Errorf("frame has %d pixels, at most %d fit", len(f.pixels), math.MaxUint16)
	}

	data = make([]byte, 2, (len(f.pixels)*3)+2)
	binary.LittleEndian.PutUint16(data, uint16(len(f.pixels)))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
