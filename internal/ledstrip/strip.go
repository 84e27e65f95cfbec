package ledstrip

import (
	"fmt"
	"image"
	"io"
	"periph.io/x/conn/v3/display"
)

// Strip is a fixed length chain of LEDs. Slots are written with Set and pushed to the hardware with Show.
type Strip struct {
	drawer     display.Drawer
	closer     io.Closer
	brightness float64
	pixels     []Color
}

// New creates a strip of count slots on top of the given drawer. The brightness applies uniformly to every slot and
// is clamped to [0.0, 1.0].
func New(d display.Drawer, count int, brightness float64) (*Strip, error) {
	if count < 1 {
		return nil, fmt.Errorf("invalid LED count: %d", count)
	}
	return &Strip{
		drawer:     d,
		brightness: clampUnit(brightness),
		pixels:     make([]Color, count),
	}, nil
}

func (s *Strip) Len() int {
	return len(s.pixels)
}

func (s *Strip) Brightness() float64 {
	return s.brightness
}

func (s *Strip) At(i int) Color {
	return s.pixels[i]
}

func (s *Strip) Set(i int, c Color) error {
	if i < 0 || i >= len(s.pixels) {
		return fmt.Errorf("LED index %d out of range [0, %d)", i, len(s.pixels))
	}
	s.pixels[i] = c
	return nil
}

// Show renders the current slot values to the device.
func (s *Strip) Show() error {
	img := image.NewNRGBA(image.Rect(0, 0, len(s.pixels), 1))
	for i, c := range s.pixels {
		img.SetNRGBA(i, 0, c.scaled(s.brightness))
	}
	if err := s.drawer.Draw(s.drawer.Bounds(), img, image.Point{}); err != nil {
		return fmt.Errorf("unable to draw LEDs: %w", err)
	}
	return nil
}

// Clear turns off every LED.
func (s *Strip) Clear() error {
	for i := range s.pixels {
		s.pixels[i] = Off
	}
	return s.Show()
}

// Close clears the strip and releases the underlying device.
func (s *Strip) Close() error {
	err := s.Clear()
	if herr := s.drawer.Halt(); err == nil {
		err = herr
	}
	if s.closer != nil {
		if cerr := s.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
