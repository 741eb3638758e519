package stream

import (
	"image"
)

// A Pen draws turtle-style into its own layer of a Renderer. World
// coordinates are centred on the canvas with y pointing up; a heading of 0
// points east and angles increase counter-clockwise.
type Pen interface {
	MoveTo(x, y float64)
	SetHeading(deg float64)
	StrokeColor(hex string)
	StrokeWidth(px float64)
	PenUp()
	PenDown()
	// DrawSegment moves along the heading, drawing while the pen is down.
	// Negative lengths move backwards.
	DrawSegment(length float64)
	DrawDot(size float64, hex string)
	// Clear erases everything this pen has drawn.
	Clear()
}

// A Renderer hands out pens and flushes their drawing once per frame.
type Renderer interface {
	NewPen() Pen
	Present() error
}

// A Sink receives each presented frame.
type Sink interface {
	Show(img *image.RGBA) error
}
