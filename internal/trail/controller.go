package trail

import (
	"context"
	"errors"
	"github.com/callebjorkell/led-demos/internal/ledstrip"
	"github.com/callebjorkell/led-demos/internal/powermate"
	log "github.com/sirupsen/logrus"
	"time"
)

// minWait keeps the knob read from ever being asked to wait for zero or negative time.
const minWait = 10 * time.Millisecond

type EventSource interface {
	ReadEvent(ctx context.Context, timeout time.Duration) (powermate.Event, error)
}

type Controller struct {
	strip *ledstrip.Strip
	knob  EventSource
	steps Steps
	now   func() time.Time
	state State
}

func NewController(strip *ledstrip.Strip, knob EventSource, steps Steps) *Controller {
	return &Controller{
		strip: strip,
		knob:  knob,
		steps: steps,
		now:   time.Now,
	}
}

// State returns the state as it was after the last loop iteration.
func (c *Controller) State() State {
	return c.state
}

// Run drives the strip from the knob until ctx ends or the strip or knob fails.
func (c *Controller) Run(ctx context.Context) error {
	c.state = NewState(c.strip.Len(), c.now())
	log.Infof("Control mode %v", c.state.Mode)
	if err := DrawCurrent(c.state.Current, c.strip); err != nil {
		return err
	}

	for {
		now := c.now()
		elapsed := now.Sub(c.state.LastUpdate)
		timeLeft := max(c.state.Interval()-elapsed, minWait)
		if elapsed >= c.state.Interval() {
			c.state = c.state.Push(now)
			if err := DrawTrail(c.state.History, c.strip); err != nil {
				return err
			}
		}

		e, err := c.knob.ReadEvent(ctx, timeLeft)
		if errors.Is(err, powermate.ErrTimeout) {
			continue
		}
		if err != nil {
			return err
		}

		var effect Effect
		c.state, effect = c.state.Handle(e, c.steps)
		switch effect {
		case ModeChanged:
			log.Infof("Control mode %v", c.state.Mode)
		case RateChanged:
			log.Infof("Rate adjusted to %.1f", c.state.Rate)
		case CurrentChanged:
			log.Infof("LED adjusted to %v", c.state.Current)
			if err := DrawCurrent(c.state.Current, c.strip); err != nil {
				return err
			}
		}
	}
}
