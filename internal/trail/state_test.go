package trail

import (
	"github.com/callebjorkell/led-demos/internal/ledstrip"
	"github.com/callebjorkell/led-demos/internal/powermate"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
	"testing"
	"time"
)

func rotate(inc int) powermate.Event {
	return powermate.Event{Kind: powermate.Rotate, Value: inc}
}

func release() powermate.Event {
	return powermate.Event{Kind: powermate.Button, Value: 0}
}

func TestModeCycle(t *testing.T) {
	m := Red
	seen := []Mode{m}
	for i := 0; i < int(modeCount); i++ {
		m = m.Next()
		seen = append(seen, m)
	}
	assert.Equal(t, []Mode{Red, Green, Blue, Brightness, ScrollSpeed, Red}, seen)
	assert.Equal(t, "scroll speed", ScrollSpeed.String())
}

func TestNewState(t *testing.T) {
	now := time.Now()
	s := NewState(4, now)

	assert.Equal(t, ledstrip.Color{Brightness: 1.0}, s.Current)
	assert.Equal(t, 0, s.History.Len())
	assert.Equal(t, 3, s.History.Cap())
	assert.Equal(t, Red, s.Mode)
	assert.Equal(t, 1.0, s.Rate)
	assert.Equal(t, time.Second, s.Interval())
	assert.Equal(t, now, s.LastUpdate)
}

func TestHandle(t *testing.T) {
	tt := []struct {
		name    string
		mode    Mode
		current ledstrip.Color
		rate    float64
		event   powermate.Event
		effect  Effect
		want    ledstrip.Color
		mode2   Mode
		rate2   float64
	}{
		{
			"red up",
			Red, ledstrip.Color{Brightness: 1.0}, 1.0,
			rotate(1),
			CurrentChanged, ledstrip.Color{R: 32, Brightness: 1.0}, Red, 1.0,
		},
		{
			"green saturates at max",
			Green, ledstrip.Color{G: 250, Brightness: 1.0}, 1.0,
			rotate(1),
			CurrentChanged, ledstrip.Color{G: 255, Brightness: 1.0}, Green, 1.0,
		},
		{
			"blue saturates at zero",
			Blue, ledstrip.Color{B: 20, Brightness: 1.0}, 1.0,
			rotate(-1),
			CurrentChanged, ledstrip.Color{Brightness: 1.0}, Blue, 1.0,
		},
		{
			"brightness down",
			Brightness, ledstrip.Color{R: 5, Brightness: 1.0}, 1.0,
			rotate(-5),
			CurrentChanged, ledstrip.Color{R: 5, Brightness: 0.5}, Brightness, 1.0,
		},
		{
			"rate down",
			ScrollSpeed, ledstrip.Color{Brightness: 1.0}, 1.0,
			rotate(-1),
			RateChanged, ledstrip.Color{Brightness: 1.0}, ScrollSpeed, 0.9,
		},
		{
			"rate saturates at max",
			ScrollSpeed, ledstrip.Color{Brightness: 1.0}, 4.8,
			rotate(10),
			RateChanged, ledstrip.Color{Brightness: 1.0}, ScrollSpeed, 5.0,
		},
		{
			"release cycles mode",
			Blue, ledstrip.Color{Brightness: 1.0}, 1.0,
			release(),
			ModeChanged, ledstrip.Color{Brightness: 1.0}, Brightness, 1.0,
		},
		{
			"press is ignored",
			Blue, ledstrip.Color{Brightness: 1.0}, 1.0,
			powermate.Event{Kind: powermate.Button, Value: 1},
			NoEffect, ledstrip.Color{Brightness: 1.0}, Blue, 1.0,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState(4, time.Time{})
			s.Mode = tc.mode
			s.Current = tc.current
			s.Rate = tc.rate

			s2, effect := s.Handle(tc.event, DefaultSteps)
			assert.Equal(t, tc.effect, effect)
			assert.Equal(t, tc.want.R, s2.Current.R)
			assert.Equal(t, tc.want.G, s2.Current.G)
			assert.Equal(t, tc.want.B, s2.Current.B)
			assert.InDelta(t, tc.want.Brightness, s2.Current.Brightness, 1e-9)
			assert.Equal(t, tc.mode2, s2.Mode)
			assert.InDelta(t, tc.rate2, s2.Rate, 1e-9)
		})
	}
}

func TestHandleDoesNotMutate(t *testing.T) {
	s := NewState(3, time.Time{})
	_, _ = s.Handle(rotate(2), DefaultSteps)
	assert.Equal(t, uint8(0), s.Current.R)
}

func TestRateSaturatesAtZero(t *testing.T) {
	s := NewState(4, time.Time{})
	s.Mode = ScrollSpeed

	for i := 0; i < 5; i++ {
		s, _ = s.Handle(rotate(-20), DefaultSteps)
		assert.Equal(t, 0.0, s.Rate)
	}
}

func TestFivePressesReturnToRed(t *testing.T) {
	s := NewState(2, time.Time{})
	for i := 0; i < 5; i++ {
		s, _ = s.Handle(release(), DefaultSteps)
	}
	assert.Equal(t, Red, s.Mode)
}

func TestBump(t *testing.T) {
	assert.Equal(t, 255, Bump(250, 32, 0, 255))
	assert.Equal(t, 0, Bump(10, -32, 0, 255))
	assert.Equal(t, 42, Bump(10, 32, 0, 255))
	assert.InDelta(t, 0.9, Bump(1.0, -0.1, 0.0, 5.0), 1e-9)
	assert.Equal(t, 0.0, Bump(0.3, -2.0, 0.0, 5.0))
}

func TestChannelsStayInRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := NewState(rapid.IntRange(1, 32).Draw(rt, "count"), time.Time{})
		events := rapid.SliceOf(rapid.OneOf(
			rapid.Custom(func(t *rapid.T) powermate.Event {
				return rotate(rapid.IntRange(-40, 40).Draw(t, "inc"))
			}),
			rapid.Just(release()),
		)).Draw(rt, "events")

		for _, e := range events {
			s, _ = s.Handle(e, DefaultSteps)
			if s.Current.Brightness < 0.0 || s.Current.Brightness > 1.0 {
				rt.Fatalf("brightness out of range: %v", s.Current.Brightness)
			}
			if s.Rate < 0.0 || s.Rate > 5.0 {
				rt.Fatalf("rate out of range: %v", s.Rate)
			}
			if s.Mode < Red || s.Mode > ScrollSpeed {
				rt.Fatalf("invalid mode: %d", s.Mode)
			}
		}
	})
}

func TestColorBumpSaturates(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := rapid.IntRange(0, 255).Draw(rt, "value")
		inc := rapid.IntRange(-100, 100).Draw(rt, "inc")

		got := Bump(v, inc*DefaultSteps.Color, 0, 255)
		want := v + inc*DefaultSteps.Color
		if want > 255 {
			want = 255
		}
		if want < 0 {
			want = 0
		}
		if got != want {
			rt.Fatalf("Bump(%d, %d) = %d, want %d", v, inc, got, want)
		}
	})
}
