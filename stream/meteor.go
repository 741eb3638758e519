package stream

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/matt-g-everett/starfall/util"
)

// MeteorState is the lifecycle stage of a meteor.
type MeteorState int

const (
	Pending MeteorState = iota
	WaitingForHandle
	Drawing
	Done
)

func (s MeteorState) String() string {
	switch s {
	case Pending:
		return "pending"
	case WaitingForHandle:
		return "waiting"
	case Drawing:
		return "drawing"
	case Done:
		return "done"
	}
	return fmt.Sprintf("MeteorState(%d)", int(s))
}

// MeteorStyle shapes the colour and width of a streak.
type MeteorStyle struct {
	HeadDot       float64
	MaxWidth      float64
	TailExponent  float64
	HeatThreshold float64
	HeatMix       float64
	HeatEasing    func(float64) float64
}

// DefaultMeteorStyle is a streak that fades in from black, widens to 6px and
// turns near-white over its last quarter.
func DefaultMeteorStyle() MeteorStyle {
	s, err := NewMeteorStyle(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return s
}

// NewMeteorStyle builds a style from the meteor configuration.
func NewMeteorStyle(config Config) (MeteorStyle, error) {
	easing, err := util.Easing(config.Meteors.HeatEasing)
	if err != nil {
		return MeteorStyle{}, err
	}

	return MeteorStyle{
		HeadDot:       config.Meteors.HeadDot,
		MaxWidth:      config.Meteors.MaxWidth,
		TailExponent:  config.Meteors.TailExponent,
		HeatThreshold: config.Meteors.HeatThreshold,
		HeatMix:       config.Meteors.HeatMix,
		HeatEasing:    easing,
	}, nil
}

// A Meteor is a streak drawn one step per frame once its delay has elapsed
// and it holds a pool handle.
type Meteor struct {
	ID       int
	X        float64
	Y        float64
	Angle    float64
	Length   int
	Step     float64
	Delay    int
	Progress int
	Head     RGB

	style  MeteorStyle
	handle *Handle
}

// NewMeteor creates a meteor entering from the upper left of the canvas.
func NewMeteor(id int, rng *rand.Rand, config Config, style MeteorStyle) *Meteor {
	w := config.Canvas.Width / 2
	h := config.Canvas.Height / 2

	m := new(Meteor)
	m.ID = id
	m.X = float64(util.IntBetween(rng, -w+20, -60))
	m.Y = float64(util.IntBetween(rng, h/4, h-20))
	m.Angle = config.Meteors.Angle + util.Uniform(rng, -config.Meteors.AngleJitter, config.Meteors.AngleJitter)
	m.Length = util.IntBetween(rng, config.Meteors.LengthMin, config.Meteors.LengthMax)
	m.Step = float64(util.IntBetween(rng, config.Meteors.StepMin, config.Meteors.StepMax))
	m.Delay = util.IntBetween(rng, config.Meteors.DelayMin, config.Meteors.DelayMax)
	m.Head = HeadColours[rng.Intn(len(HeadColours))]
	m.style = style

	return m
}

// State reports where the meteor is in its lifecycle.
func (m *Meteor) State() MeteorState {
	switch {
	case m.Delay > 0:
		return Pending
	case m.Progress >= m.Length:
		return Done
	case m.handle != nil:
		return Drawing
	}
	return WaitingForHandle
}

// Handle returns the bound handle, or nil.
func (m *Meteor) Handle() *Handle {
	return m.handle
}

// Stroke returns the colour and width of step i.
func (m *Meteor) Stroke(i int) (RGB, float64) {
	t := float64(i) / float64(max(1, m.Length-1))

	c := Interpolate(m.Head, Black, math.Pow(1-t, m.style.TailExponent))
	if t > m.style.HeatThreshold {
		mix := (t - m.style.HeatThreshold) / (1 - m.style.HeatThreshold)
		c = Interpolate(c, White, m.style.HeatMix*m.style.HeatEasing(mix))
	}

	width := math.Max(1, math.Floor(m.style.MaxWidth*t))
	return c, width
}

// Tick advances the meteor by one frame.
func (m *Meteor) Tick(pool *Pool) error {
	if m.Delay > 0 {
		m.Delay--
		return nil
	}
	if m.Progress >= m.Length {
		return nil
	}

	if m.handle == nil {
		m.handle = pool.Acquire(m.ID)
		if m.handle == nil {
			// Try again next frame
			return nil
		}

		pen := m.handle.Pen()
		pen.Clear()
		pen.PenUp()
		pen.MoveTo(m.X, m.Y)
		pen.SetHeading(m.Angle)
		pen.PenDown()
	}

	pen := m.handle.Pen()
	c, width := m.Stroke(m.Progress)
	pen.StrokeColor(RGBToHex(c))
	pen.StrokeWidth(width)
	pen.DrawSegment(m.Step)
	m.Progress++

	if m.Progress >= m.Length {
		// Mark the head one step short of the end
		pen.PenUp()
		pen.DrawSegment(-m.Step)
		pen.PenDown()
		pen.DrawDot(m.style.HeadDot, RGBToHex(m.Head))

		h := m.handle
		m.handle = nil
		if err := pool.Release(h); err != nil {
			return fmt.Errorf("meteor %d: release handle %d: %w", m.ID, h.ID(), err)
		}
	}

	return nil
}
