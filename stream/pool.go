package stream

import (
	"errors"
)

// ErrNotBound is returned when releasing a handle that is already free.
var ErrNotBound = errors.New("handle is not bound")

// A Handle is one pool slot owning a pen.
type Handle struct {
	id  int
	pen Pen
}

// ID returns the handle's slot number.
func (h *Handle) ID() int {
	return h.id
}

// Pen returns the pen this handle draws with.
func (h *Handle) Pen() Pen {
	return h.pen
}

// A Pool is a fixed set of interchangeable drawing handles. A handle is
// bound to at most one owner at a time.
//
// Between Hold and Flush, released handles stay bound until the flush, so a
// handle freed during a tick can only be acquired from the next one.
type Pool struct {
	handles []*Handle
	owners  []int
	bound   []bool
	pending []bool
	holding bool
}

// NewPool creates size handles, each with its own pen from the renderer.
func NewPool(size int, renderer Renderer) (*Pool, error) {
	if size < 1 {
		return nil, ErrEmptyPool
	}

	p := new(Pool)
	p.handles = make([]*Handle, size)
	p.owners = make([]int, size)
	p.bound = make([]bool, size)
	p.pending = make([]bool, size)
	for i := 0; i < size; i++ {
		p.handles[i] = &Handle{id: i, pen: renderer.NewPen()}
	}

	return p, nil
}

// Hold defers releases until the next Flush.
func (p *Pool) Hold() {
	p.holding = true
}

// Flush unbinds every handle released since Hold and ends the hold.
func (p *Pool) Flush() {
	for i, pending := range p.pending {
		if pending {
			p.unbind(i)
		}
	}
	p.holding = false
}

// Acquire binds the first free handle to owner, or returns nil when none is free.
func (p *Pool) Acquire(owner int) *Handle {
	for i, h := range p.handles {
		if !p.bound[i] {
			p.bound[i] = true
			p.owners[i] = owner
			return h
		}
	}
	return nil
}

// Release returns a bound handle to the pool.
func (p *Pool) Release(h *Handle) error {
	if !p.bound[h.id] || p.pending[h.id] {
		return ErrNotBound
	}
	if p.holding {
		p.pending[h.id] = true
		return nil
	}
	p.unbind(h.id)
	return nil
}

func (p *Pool) unbind(i int) {
	p.bound[i] = false
	p.pending[i] = false
	p.owners[i] = 0
}

// Owner returns the id bound to h and whether it is bound. A handle
// released during a hold is no longer owned.
func (p *Pool) Owner(h *Handle) (int, bool) {
	if !p.bound[h.id] || p.pending[h.id] {
		return 0, false
	}
	return p.owners[h.id], true
}

// Size returns the number of handles.
func (p *Pool) Size() int {
	return len(p.handles)
}

// Bound returns the number of handles that cannot be acquired, counting
// releases still waiting on a Flush.
func (p *Pool) Bound() int {
	n := 0
	for _, b := range p.bound {
		if b {
			n++
		}
	}
	return n
}

// Free returns the number of handles Acquire can hand out.
func (p *Pool) Free() int {
	return len(p.handles) - p.Bound()
}
