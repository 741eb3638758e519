package stream

import (
	"math/rand"

	"github.com/matt-g-everett/starfall/util"
)

// Pastel colours shared by stars and meteor heads.
var Pastels = []RGB{
	mustRGB("#E6F7FF"),
	mustRGB("#FFF4E6"),
	mustRGB("#F7E6FF"),
	mustRGB("#E8FFF1"),
	mustRGB("#FFF0F6"),
	mustRGB("#E8F2FF"),
}

// HeadColours are the candidate head colours of a meteor.
var HeadColours = append(append([]RGB{}, Pastels...),
	mustRGB("#A7FFFC"),
	mustRGB("#FFF9C4"),
	White,
)

// WeightedPalette stores colours with relative pick weights.
type WeightedPalette []struct {
	Colour RGB
	Weight float64
}

// StarPalette is mostly white with an occasional pastel.
func StarPalette() WeightedPalette {
	p := WeightedPalette{{White, 60}}
	for _, c := range Pastels {
		p = append(p, WeightedPalette{{c, 8}}...)
	}
	return p
}

// Pick chooses a colour with probability proportional to its weight.
func (p WeightedPalette) Pick(rng *rand.Rand) RGB {
	weights := make([]float64, len(p))
	for i, e := range p {
		weights[i] = e.Weight
	}
	return p[util.WeightedIndex(rng, weights)].Colour
}
