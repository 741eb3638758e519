package stream

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/matt-g-everett/starfall/util"
)

// SchedulerState is Running until every meteor is done.
type SchedulerState int

const (
	Running SchedulerState = iota
	Finished
)

func (s SchedulerState) String() string {
	if s == Finished {
		return "finished"
	}
	return "running"
}

// Scheduler advances the star field and all meteors one tick per frame.
type Scheduler struct {
	renderer Renderer
	stars    *StarField
	meteors  []*Meteor
	pool     *Pool
	state    SchedulerState
	ticks    int
}

// NewScheduler generates the star field, pen pool and meteors for a run.
func NewScheduler(config Config, rng *rand.Rand, renderer Renderer) (*Scheduler, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	style, err := NewMeteorStyle(config)
	if err != nil {
		return nil, err
	}

	// The star pen is created first so stars sit beneath the meteors
	stars := NewStarField(rng, config, renderer.NewPen())
	if err := renderer.Present(); err != nil {
		return nil, fmt.Errorf("present star field: %w", err)
	}

	pool, err := NewPool(config.Pool.Size, renderer)
	if err != nil {
		return nil, err
	}

	n := util.IntBetween(rng, config.Meteors.Min, config.Meteors.Max)
	meteors := make([]*Meteor, n)
	for i := range meteors {
		meteors[i] = NewMeteor(i, rng, config, style)
	}

	log.Printf("Scheduler: %d stars, %d meteors, %d pens", len(stars.Stars()), n, pool.Size())
	return NewSchedulerFrom(stars, meteors, pool, renderer), nil
}

// NewSchedulerFrom assembles a scheduler from existing parts. Meteors are
// advanced in the order given.
func NewSchedulerFrom(stars *StarField, meteors []*Meteor, pool *Pool, renderer Renderer) *Scheduler {
	s := new(Scheduler)
	s.renderer = renderer
	s.stars = stars
	s.meteors = meteors
	s.pool = pool
	s.state = Running
	return s
}

// Tick applies one frame and presents it. It reports whether the animation
// has finished; once finished, further ticks change nothing.
func (s *Scheduler) Tick() (bool, error) {
	if s.state == Finished {
		return true, nil
	}

	if s.stars != nil {
		s.stars.Tick()
	}

	// Handles freed by finishing meteors are reusable from the next tick
	s.pool.Hold()
	defer s.pool.Flush()
	allDone := true
	for _, m := range s.meteors {
		if err := m.Tick(s.pool); err != nil {
			return false, err
		}
		if m.State() != Done {
			allDone = false
		}
	}

	s.ticks++
	if err := s.renderer.Present(); err != nil {
		return false, fmt.Errorf("present tick %d: %w", s.ticks, err)
	}

	if allDone {
		s.state = Finished
		log.Printf("Finished after %d ticks", s.ticks)
	}

	return allDone, nil
}

// Run ticks once per value received from ticks until the animation
// finishes or ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticks:
			done, err := s.Tick()
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}

// State returns Running or Finished.
func (s *Scheduler) State() SchedulerState {
	return s.state
}

// Ticks returns the number of frames applied.
func (s *Scheduler) Ticks() int {
	return s.ticks
}

func (s *Scheduler) Meteors() []*Meteor {
	return s.meteors
}

func (s *Scheduler) Stars() *StarField {
	return s.stars
}

func (s *Scheduler) Pool() *Pool {
	return s.pool
}
