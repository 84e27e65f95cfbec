package trail

import (
	"github.com/callebjorkell/led-demos/internal/ledstrip"
)

// DrawTrail redraws every LED except the first from the history, oldest values furthest out.
func DrawTrail(h History, s *ledstrip.Strip) error {
	for i, c := range h.Padded() {
		if i+1 >= s.Len() {
			break
		}
		if err := s.Set(i+1, c); err != nil {
			return err
		}
	}
	return s.Show()
}

// DrawCurrent shows c on the first LED.
func DrawCurrent(c ledstrip.Color, s *ledstrip.Strip) error {
	if err := s.Set(0, c); err != nil {
		return err
	}
	return s.Show()
}
