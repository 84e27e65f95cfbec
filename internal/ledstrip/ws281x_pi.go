//go:build pi

package ledstrip

import (
	ws "github.com/rpi-ws281x/rpi-ws281x-go"
)

func openWS281x(pin, count int) (*wsDrawer, error) {
	opt := ws.DefaultOptions
	opt.Channels[0].Brightness = 255
	opt.Channels[0].LedCount = count
	opt.Channels[0].GpioPin = pin

	dev, err := ws.MakeWS2811(&opt)
	if err != nil {
		return nil, err
	}
	if err := dev.Init(); err != nil {
		dev.Fini()
		return nil, err
	}

	return &wsDrawer{
		ws:    dev,
		count: count,
	}, nil
}
