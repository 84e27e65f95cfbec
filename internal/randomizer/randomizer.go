package randomizer

import (
	"context"
	"github.com/callebjorkell/led-demos/internal/ledstrip"
	log "github.com/sirupsen/logrus"
	"math/rand"
	"time"
)

// Randomizer gives every LED of a strip a new random color, over and over.
type Randomizer struct {
	strip *ledstrip.Strip
	delay time.Duration
	rng   *rand.Rand
}

func New(strip *ledstrip.Strip, delay time.Duration, rng *rand.Rand) *Randomizer {
	return &Randomizer{
		strip: strip,
		delay: delay,
		rng:   rng,
	}
}

// Step draws an independent color for each LED and shows the result.
func (r *Randomizer) Step() error {
	for i := 0; i < r.strip.Len(); i++ {
		c := ledstrip.RGB(r.channel(), r.channel(), r.channel())
		if err := r.strip.Set(i, c); err != nil {
			return err
		}
	}
	return r.strip.Show()
}

func (r *Randomizer) channel() uint8 {
	return uint8(r.rng.Intn(256))
}

// Run keeps stepping with the configured delay in between until ctx ends or the strip fails.
func (r *Randomizer) Run(ctx context.Context) error {
	log.Infof("Randomizing %d LEDs every %v", r.strip.Len(), r.delay)

	frames := 0
	for {
		if err := r.Step(); err != nil {
			return err
		}
		frames++
		log.Debugf("Frame %d shown", frames)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.delay):
		}
	}
}
