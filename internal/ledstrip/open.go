package ledstrip

import (
	"fmt"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/apa102"
	"periph.io/x/extra/devices/screen"
	"periph.io/x/host/v3"
)

const (
	DriverAPA102  = "apa102"
	DriverWS281x  = "ws281x"
	DriverConsole = "console"
)

// Drivers lists the accepted driver names.
var Drivers = []string{DriverAPA102, DriverWS281x, DriverConsole}

type Options struct {
	// Driver selects the backend. An empty driver means DriverAPA102.
	Driver string
	// Port is the SPI port name used by the apa102 driver. Empty picks the first available port.
	Port string
	// Pin is the GPIO pin the ws281x driver sends data on.
	Pin        int
	Count      int
	Brightness float64
}

// Open connects to the LED strip described by the options.
func Open(o Options) (*Strip, error) {
	if o.Count < 1 {
		return nil, fmt.Errorf("invalid LED count: %d", o.Count)
	}

	switch o.Driver {
	case DriverAPA102, "":
		return openAPA102(o)
	case DriverWS281x:
		log.Infof("Initializing ws281x strip with %d LEDs on GPIO%d", o.Count, o.Pin)
		d, err := openWS281x(o.Pin, o.Count)
		if err != nil {
			return nil, fmt.Errorf("unable to open ws281x strip: %w", err)
		}
		s, err := New(d, o.Count, o.Brightness)
		if err != nil {
			d.Close()
			return nil, err
		}
		s.closer = d
		return s, nil
	case DriverConsole:
		log.Infof("Printing %d LEDs to the console", o.Count)
		return New(screen.New(o.Count), o.Count, o.Brightness)
	}

	return nil, fmt.Errorf("unknown LED driver %q", o.Driver)
}

func openAPA102(o Options) (*Strip, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("unable to initialize periph: %w", err)
	}

	p, err := spireg.Open(o.Port)
	if err != nil {
		return nil, fmt.Errorf("unable to open SPI port %q: %w", o.Port, err)
	}
	log.Infof("Initializing APA102 strip with %d LEDs on %s", o.Count, p)

	d, err := newAPA102(p, o.Count)
	if err != nil {
		p.Close()
		return nil, err
	}
	s, err := New(d, o.Count, o.Brightness)
	if err != nil {
		p.Close()
		return nil, err
	}
	s.closer = p
	return s, nil
}

// newAPA102 runs the device at full intensity and without color temperature correction; all dimming is done through
// the color values handed to Show.
func newAPA102(p spi.Port, count int) (display.Drawer, error) {
	d, err := apa102.New(p, &apa102.Opts{
		NumPixels:   count,
		Intensity:   255,
		Temperature: apa102.NeutralTemp,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create APA102 device: %w", err)
	}
	return d, nil
}
