package trail

// Mode selects what turning the knob adjusts.
type Mode int

const (
	Red Mode = iota
	Green
	Blue
	Brightness
	ScrollSpeed

	modeCount
)

// Next returns the mode after m, wrapping around after ScrollSpeed.
func (m Mode) Next() Mode {
	return (m + 1) % modeCount
}

func (m Mode) String() string {
	switch m {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Brightness:
		return "brightness"
	case ScrollSpeed:
		return "scroll speed"
	}
	return "N/A"
}
