package main

import (
	"github.com/callebjorkell/led-demos/internal/ledstrip"
	"github.com/callebjorkell/led-demos/internal/powermate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestReadConfig(t *testing.T) {
	_, err := app.Parse([]string{"8"})
	require.NoError(t, err)
	conf, err := readConfig()
	require.NoError(t, err)

	assert.Equal(t, 8, *ledCount)
	assert.Equal(t, powermate.DefaultDevice, conf.Powermate.Device)
	assert.Equal(t, ledstrip.DriverAPA102, conf.Strip.Driver)

	_, err = app.Parse([]string{"-p", "/dev/input/event7", "--driver", "console", "8"})
	require.NoError(t, err)
	conf, err = readConfig()
	require.NoError(t, err)

	assert.Equal(t, "/dev/input/event7", conf.Powermate.Device)
	assert.Equal(t, ledstrip.DriverConsole, conf.Strip.Driver)
}

func TestUnknownDriverFlag(t *testing.T) {
	_, err := app.Parse([]string{"--driver", "morse", "8"})
	assert.Error(t, err)
}

func TestRunRejectsEmptyStrip(t *testing.T) {
	_, err := app.Parse([]string{"0"})
	require.NoError(t, err)
	assert.Error(t, run())
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "led-powermate: dev", version())
}
