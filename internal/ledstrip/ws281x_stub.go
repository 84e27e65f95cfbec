//go:build !pi

package ledstrip

import (
	"errors"
)

func openWS281x(_, _ int) (*wsDrawer, error) {
	return nil, errors.New("the ws281x driver is only available in builds with the pi tag")
}
