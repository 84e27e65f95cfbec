package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/callebjorkell/led-demos/internal/config"
	"github.com/callebjorkell/led-demos/internal/ledstrip"
	"github.com/callebjorkell/led-demos/internal/powermate"
	"github.com/callebjorkell/led-demos/internal/trail"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
	"os"
	"os/signal"
	"syscall"
)

// Turning the knob adjusts the color of the first LED of the strip. All the other LEDs show the color history,
// creating a snail trail as the knob turns.

var (
	app        = kingpin.New("led-powermate", "Control a DotStar strip with a Griffin PowerMate.")
	debug      = app.Flag("debug", "Turn on debug logging.").Bool()
	configFile = app.Flag("config", "YAML file with hardware settings.").ExistingFile()
	driver     = app.Flag("driver", "LED driver to use, overrides the config file.").Enum(ledstrip.Drivers...)
	port       = app.Flag("port", "SPI port of the apa102 driver, overrides the config file.").String()
	device     = app.Flag("powermate", fmt.Sprintf("Powermate device (default %s)", powermate.DefaultDevice)).Short('p').String()
	ledCount   = app.Arg("ledcount", "Number of daisy-chained DotStar LEDs in strip").Required().Int()
)

var buildTime, buildVersion string

func version() string {
	if buildTime != "" && buildVersion != "" {
		return fmt.Sprintf("%s (built: %s)", buildVersion, buildTime)
	}
	return "led-powermate: dev"
}

func main() {
	app.Version(version())
	if _, err := app.Parse(os.Args[1:]); err != nil {
		fmt.Printf("%v: Try --help\n", err.Error())
		os.Exit(1)
	}

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if *debug {
		log.Info("Enabling debug output...")
		log.SetLevel(log.DebugLevel)
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
	log.Info("Done...")
}

func run() error {
	if *ledCount < 1 {
		return fmt.Errorf("ledcount must be at least 1, got %d", *ledCount)
	}

	conf, err := readConfig()
	if err != nil {
		return err
	}

	strip, err := ledstrip.Open(conf.StripOptions(*ledCount, 1.0))
	if err != nil {
		return err
	}
	defer func() {
		if err := strip.Close(); err != nil {
			log.Warn("Unable to close the LED strip: ", err)
		}
	}()

	knob, err := powermate.Open(conf.Powermate.Device, conf.GrabKnob())
	if err != nil {
		return err
	}
	defer knob.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = trail.NewController(strip, knob, conf.Steps()).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func readConfig() (*config.Config, error) {
	conf := config.Default()
	if *configFile != "" {
		c, err := config.Load(*configFile)
		if err != nil {
			return nil, err
		}
		conf = c
	}

	if *driver != "" {
		conf.Strip.Driver = *driver
	}
	if *port != "" {
		conf.Strip.Port = *port
	}
	if *device != "" {
		conf.Powermate.Device = *device
	}
	return conf, nil
}
