package stream

import (
	"fmt"
)

// call is one recorded pen operation.
type call struct {
	pen  int
	op   string
	args string
}

// recordingRenderer implements Renderer and logs every pen call.
type recordingRenderer struct {
	pens     []*recordingPen
	calls    []call
	presents int
	err      error
}

func (r *recordingRenderer) NewPen() Pen {
	p := &recordingPen{id: len(r.pens), r: r}
	r.pens = append(r.pens, p)
	return p
}

func (r *recordingRenderer) Present() error {
	r.presents++
	return r.err
}

func (r *recordingRenderer) count(pen int, op string) int {
	n := 0
	for _, c := range r.calls {
		if c.pen == pen && c.op == op {
			n++
		}
	}
	return n
}

func (r *recordingRenderer) reset() {
	r.calls = nil
}

type recordingPen struct {
	id int
	r  *recordingRenderer
}

func (p *recordingPen) log(op string, format string, args ...interface{}) {
	p.r.calls = append(p.r.calls, call{pen: p.id, op: op, args: fmt.Sprintf(format, args...)})
}

func (p *recordingPen) MoveTo(x, y float64) { p.log("moveTo", "%g,%g", x, y) }
func (p *recordingPen) SetHeading(deg float64) { p.log("heading", "%g", deg) }
func (p *recordingPen) StrokeColor(hex string) { p.log("color", "%s", hex) }
func (p *recordingPen) StrokeWidth(px float64) { p.log("width", "%g", px) }
func (p *recordingPen) PenUp() { p.log("up", "") }
func (p *recordingPen) PenDown() { p.log("down", "") }
func (p *recordingPen) DrawSegment(length float64) { p.log("segment", "%g", length) }
func (p *recordingPen) DrawDot(size float64, h string) { p.log("dot", "%g %s", size, h) }
func (p *recordingPen) Clear() { p.log("clear", "") }
