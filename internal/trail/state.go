package trail

import (
	"github.com/callebjorkell/led-demos/internal/ledstrip"
	"github.com/callebjorkell/led-demos/internal/powermate"
	"time"
)

// Steps are the amounts a single knob detent changes each quantity by.
type Steps struct {
	Color      int
	Brightness float64
	Scroll     float64
	MaxRate    float64
}

var DefaultSteps = Steps{
	Color:      32,
	Brightness: 0.1,
	Scroll:     0.1,
	MaxRate:    5.0,
}

const initialRate = 1.0

// Effect tells the caller what a handled event changed.
type Effect int

const (
	NoEffect Effect = iota
	ModeChanged
	RateChanged
	CurrentChanged
)

// Number is anything Bump can clamp.
type Number interface {
	~int | ~float64
}

// Bump adds inc to val and saturates the result to [minimum, maximum].
func Bump[T Number](val, inc, minimum, maximum T) T {
	return max(min(val+inc, maximum), minimum)
}

type State struct {
	Current ledstrip.Color
	History History
	Mode    Mode
	// Rate is the number of seconds between pushes of the current value into the history.
	Rate       float64
	LastUpdate time.Time
}

// NewState gives the starting state for a strip of count LEDs.
func NewState(count int, now time.Time) State {
	return State{
		Current:    ledstrip.Color{Brightness: 1.0},
		History:    NewHistory(count - 1),
		Mode:       Red,
		Rate:       initialRate,
		LastUpdate: now,
	}
}

// Interval is Rate as a duration.
func (s State) Interval() time.Duration {
	return time.Duration(s.Rate * float64(time.Second))
}

// Push moves the current value into the history and restarts the scroll interval.
func (s State) Push(now time.Time) State {
	s.History = s.History.Push(s.Current)
	s.LastUpdate = now
	return s
}

// Handle applies a knob event. A released button cycles the mode, a rotation adjusts whatever the mode points at.
func (s State) Handle(e powermate.Event, steps Steps) (State, Effect) {
	switch {
	case e.Kind == powermate.Button && e.Value == 0:
		s.Mode = s.Mode.Next()
		return s, ModeChanged
	case e.Kind == powermate.Rotate && s.Mode == ScrollSpeed:
		s.Rate = Bump(s.Rate, float64(e.Value)*steps.Scroll, 0.0, steps.MaxRate)
		return s, RateChanged
	case e.Kind == powermate.Rotate:
		s.Current = adjust(s.Current, s.Mode, e.Value, steps)
		return s, CurrentChanged
	}
	return s, NoEffect
}

func adjust(c ledstrip.Color, m Mode, inc int, steps Steps) ledstrip.Color {
	bumpChannel := func(v uint8) uint8 {
		return uint8(Bump(int(v), inc*steps.Color, 0, 255))
	}

	switch m {
	case Red:
		c.R = bumpChannel(c.R)
	case Green:
		c.G = bumpChannel(c.G)
	case Blue:
		c.B = bumpChannel(c.B)
	case Brightness:
		c.Brightness = Bump(c.Brightness, float64(inc)*steps.Brightness, 0.0, 1.0)
	}
	return c
}
