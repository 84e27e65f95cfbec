package trail

import (
	"github.com/callebjorkell/led-demos/internal/ledstrip"
)

// History holds past values of the first LED, newest first. Pushing onto a full history drops the oldest value.
type History struct {
	capacity int
	colors   []ledstrip.Color
}

func NewHistory(capacity int) History {
	if capacity < 0 {
		capacity = 0
	}
	return History{capacity: capacity}
}

// Push returns a copy of the history with c added at the front.
func (h History) Push(c ledstrip.Color) History {
	if h.capacity == 0 {
		return h
	}
	n := len(h.colors) + 1
	if n > h.capacity {
		n = h.capacity
	}
	colors := make([]ledstrip.Color, n)
	colors[0] = c
	copy(colors[1:], h.colors)
	return History{capacity: h.capacity, colors: colors}
}

func (h History) Len() int {
	return len(h.colors)
}

func (h History) Cap() int {
	return h.capacity
}

// Padded returns exactly Cap values: the history followed by unlit LEDs for the part that has not been filled yet.
func (h History) Padded() []ledstrip.Color {
	p := make([]ledstrip.Color, h.capacity)
	copy(p, h.colors)
	for i := len(h.colors); i < len(p); i++ {
		p[i] = ledstrip.Off
	}
	return p
}
