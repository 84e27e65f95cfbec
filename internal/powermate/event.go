package powermate

import (
	"fmt"
	evdev "github.com/gvalkov/golang-evdev"
	"time"
)

type Kind int

const (
	Button Kind = iota
	Rotate
)

func (k Kind) String() string {
	switch k {
	case Button:
		return "button"
	case Rotate:
		return "rotate"
	}
	return "N/A"
}

// Event is a single knob action. For Button events the value is 1 when pressed and 0 when released, for Rotate
// events it is the signed number of detents turned.
type Event struct {
	Time  time.Time
	Kind  Kind
	Value int
}

func (e Event) String() string {
	return fmt.Sprintf("%v %d", e.Kind, e.Value)
}

// translate maps a raw input event onto a knob event. Synchronization reports and anything else the device sends are
// dropped.
func translate(ev *evdev.InputEvent) (Event, bool) {
	e := Event{
		Time:  time.Unix(int64(ev.Time.Sec), int64(ev.Time.Usec)*int64(time.Microsecond)),
		Value: int(ev.Value),
	}

	switch {
	case ev.Type == evdev.EV_KEY && ev.Code == evdev.BTN_0:
		e.Kind = Button
	case ev.Type == evdev.EV_REL && ev.Code == evdev.REL_DIAL:
		e.Kind = Rotate
	default:
		return Event{}, false
	}
	return e, true
}
