package stream

import (
	"math/rand"

	"github.com/matt-g-everett/starfall/util"
)

// A Star is a fixed dot that occasionally flickers brighter.
type Star struct {
	X      float64
	Y      float64
	Size   int
	Colour RGB

	// Flicker counts the remaining frames drawn brighter.
	Flicker int
}

// A StarField draws a static set of stars once and overlays flickers each frame.
type StarField struct {
	rng           *rand.Rand
	pen           Pen
	stars         []*Star
	flickerChance float64
	flickerMin    int
	flickerMax    int
}

// NewStarField generates and draws the stars for a canvas.
func NewStarField(rng *rand.Rand, config Config, pen Pen) *StarField {
	f := new(StarField)
	f.rng = rng
	f.pen = pen
	f.flickerChance = config.Stars.FlickerChance
	f.flickerMin = config.Stars.FlickerMin
	f.flickerMax = config.Stars.FlickerMax

	w := config.Canvas.Width / 2
	h := config.Canvas.Height / 2
	margin := config.Stars.Margin
	palette := StarPalette()

	n := util.IntBetween(rng, config.Stars.Min, config.Stars.Max)
	f.stars = make([]*Star, 0, n)
	for i := 0; i < n; i++ {
		s := &Star{
			X:      float64(util.IntBetween(rng, -w+margin, w-margin)),
			Y:      float64(util.IntBetween(rng, -h+margin, h-margin)),
			Size:   util.IntBetween(rng, 1, 3),
			Colour: palette.Pick(rng),
		}
		f.stars = append(f.stars, s)
		f.draw(s, float64(s.Size), s.Colour)
	}

	return f
}

// NewStarFieldFrom wraps existing stars without drawing them.
func NewStarFieldFrom(rng *rand.Rand, pen Pen, stars []*Star, flickerChance float64, flickerMin, flickerMax int) *StarField {
	f := new(StarField)
	f.rng = rng
	f.pen = pen
	f.stars = stars
	f.flickerChance = flickerChance
	f.flickerMin = flickerMin
	f.flickerMax = flickerMax
	return f
}

func (f *StarField) draw(s *Star, size float64, c RGB) {
	f.pen.MoveTo(s.X, s.Y)
	f.pen.DrawDot(size, RGBToHex(c))
}

// Stars returns the generated stars.
func (f *StarField) Stars() []*Star {
	return f.stars
}

// SetFlickerChance changes the per-frame probability of a new flicker.
func (f *StarField) SetFlickerChance(chance float64) {
	f.flickerChance = chance
}

// Tick advances every star's flicker by one frame. The brighter dot is drawn
// over the base dot and never reverted.
func (f *StarField) Tick() {
	for _, s := range f.stars {
		if s.Flicker > 0 {
			f.draw(s, float64(s.Size+1), White)
			s.Flicker--
			continue
		}

		// Start a flicker by chance
		if f.rng.Float64() < f.flickerChance {
			s.Flicker = util.IntBetween(f.rng, f.flickerMin, f.flickerMax)
			f.draw(s, float64(s.Size+1), White)
		}
	}
}
