package stream

import (
	"image"
	"image/color"
	"log"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

const discSegments = 24

// A Raster is an in-memory Renderer. Every pen draws into its own
// transparent layer; Present composites the layers in creation order over
// the background and hands the result to each sink.
type Raster struct {
	width      int
	height     int
	background color.RGBA
	layers     []*image.RGBA
	out        *image.RGBA
	z          *vector.Rasterizer
	sinks      []Sink
}

// NewRaster creates a width x height raster renderer.
func NewRaster(width int, height int, background RGB, sinks ...Sink) *Raster {
	r := new(Raster)
	r.width = width
	r.height = height
	r.background = toRGBA(background.Colorful())
	r.out = image.NewRGBA(image.Rect(0, 0, width, height))
	r.z = vector.NewRasterizer(width, height)
	r.sinks = sinks
	draw.Draw(r.out, r.out.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)
	return r
}

// AddSink registers another output for presented frames.
func (r *Raster) AddSink(s Sink) {
	r.sinks = append(r.sinks, s)
}

// NewPen creates a pen with a fresh layer above all existing ones.
func (r *Raster) NewPen() Pen {
	layer := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	r.layers = append(r.layers, layer)

	p := new(rasterPen)
	p.raster = r
	p.layer = layer
	p.colour = color.RGBA{255, 255, 255, 255}
	p.width = 1
	p.down = true
	return p
}

// Present composites the layers and passes the frame to every sink.
func (r *Raster) Present() error {
	b := r.out.Bounds()
	draw.Draw(r.out, b, image.NewUniform(r.background), image.Point{}, draw.Src)
	for _, l := range r.layers {
		draw.Draw(r.out, b, l, image.Point{}, draw.Over)
	}

	for _, s := range r.sinks {
		if err := s.Show(r.out); err != nil {
			return err
		}
	}
	return nil
}

// Snapshot returns a copy of the last presented frame.
func (r *Raster) Snapshot() *image.RGBA {
	img := image.NewRGBA(r.out.Bounds())
	copy(img.Pix, r.out.Pix)
	return img
}

func (r *Raster) toPixel(x, y float64) (float32, float32) {
	return float32(x + float64(r.width)/2), float32(float64(r.height)/2 - y)
}

func (r *Raster) fill(layer *image.RGBA, c color.RGBA, path func(z *vector.Rasterizer)) {
	r.z.Reset(r.width, r.height)
	path(r.z)
	r.z.Draw(layer, layer.Bounds(), image.NewUniform(c), image.Point{})
}

func (r *Raster) disc(z *vector.Rasterizer, cx, cy, radius float32) {
	for i := 0; i < discSegments; i++ {
		a := 2 * math.Pi * float64(i) / discSegments
		x := cx + radius*float32(math.Cos(a))
		y := cy + radius*float32(math.Sin(a))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}

type rasterPen struct {
	raster  *Raster
	layer   *image.RGBA
	x       float64
	y       float64
	heading float64
	colour  color.RGBA
	width   float64
	down    bool
}

func (p *rasterPen) MoveTo(x, y float64) {
	p.x = x
	p.y = y
}

func (p *rasterPen) SetHeading(deg float64) {
	p.heading = deg
}

func (p *rasterPen) StrokeColor(hex string) {
	p.colour = parseRGBA(hex)
}

func (p *rasterPen) StrokeWidth(px float64) {
	p.width = px
}

func (p *rasterPen) PenUp() {
	p.down = false
}

func (p *rasterPen) PenDown() {
	p.down = true
}

func (p *rasterPen) DrawSegment(length float64) {
	rad := p.heading * math.Pi / 180
	nx := p.x + math.Cos(rad)*length
	ny := p.y + math.Sin(rad)*length

	if p.down && length != 0 {
		r := p.raster
		x0, y0 := r.toPixel(p.x, p.y)
		x1, y1 := r.toPixel(nx, ny)
		half := float32(p.width / 2)

		// Unit normal in pixel space, where y points down
		dx, dy := x1-x0, y1-y0
		l := float32(math.Hypot(float64(dx), float64(dy)))
		ox, oy := -dy/l*half, dx/l*half

		r.fill(p.layer, p.colour, func(z *vector.Rasterizer) {
			z.MoveTo(x0+ox, y0+oy)
			z.LineTo(x1+ox, y1+oy)
			z.LineTo(x1-ox, y1-oy)
			z.LineTo(x0-ox, y0-oy)
			z.ClosePath()
		})
		// Round cap
		r.fill(p.layer, p.colour, func(z *vector.Rasterizer) {
			r.disc(z, x1, y1, half)
		})
	}

	p.x = nx
	p.y = ny
}

func (p *rasterPen) DrawDot(size float64, hex string) {
	r := p.raster
	cx, cy := r.toPixel(p.x, p.y)
	r.fill(p.layer, parseRGBA(hex), func(z *vector.Rasterizer) {
		r.disc(z, cx, cy, float32(math.Max(size, 1)/2))
	})
}

func (p *rasterPen) Clear() {
	draw.Draw(p.layer, p.layer.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func parseRGBA(hex string) color.RGBA {
	c, err := HexToRGB(hex)
	if err != nil {
		log.Printf("Bad colour %q, using white: %v", hex, err)
		return color.RGBA{255, 255, 255, 255}
	}
	return toRGBA(c.Colorful())
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}
