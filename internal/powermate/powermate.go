package powermate

import (
	"context"
	"fmt"
	evdev "github.com/gvalkov/golang-evdev"
	log "github.com/sirupsen/logrus"
	"io"
	"sync"
	"time"
)

// DefaultDevice is where udev links the event interface of a Griffin PowerMate.
const DefaultDevice = "/dev/input/by-id/usb-Griffin_Technology_Inc._Griffin_PowerMate-event-if00"

type eventReader interface {
	ReadOne() (*evdev.InputEvent, error)
}

type result struct {
	event Event
	err   error
}

// Knob reads events from a PowerMate in a background goroutine and hands them out through ReadEvent.
type Knob struct {
	results chan result
	done    chan struct{}
	closer  io.Closer
	stopper sync.Once
	failure error
}

// Open opens the input device at path. With grab set, the device is grabbed exclusively so that the knob does not
// also act as a volume control on the desktop.
func Open(path string, grab bool) (*Knob, error) {
	log.Infof("Opening PowerMate at %s", path)
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", path, err)
	}
	log.Debugf("Found input device %q (%s)", dev.Name, dev.Phys)

	if grab {
		if err := dev.Grab(); err != nil {
			dev.File.Close()
			return nil, fmt.Errorf("unable to grab %s: %w", path, err)
		}
	}

	return newKnob(dev, closerFunc(func() error {
		if grab {
			dev.Release()
		}
		return dev.File.Close()
	})), nil
}

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

func newKnob(r eventReader, c io.Closer) *Knob {
	k := &Knob{
		results: make(chan result),
		done:    make(chan struct{}),
		closer:  c,
	}
	go k.read(r)
	return k
}

func (k *Knob) read(r eventReader) {
	for {
		ev, err := r.ReadOne()
		if err != nil {
			select {
			case k.results <- result{err: err}:
			case <-k.done:
			}
			return
		}

		e, ok := translate(ev)
		if !ok {
			continue
		}

		select {
		case k.results <- result{event: e}:
		case <-k.done:
			return
		}
	}
}

// ReadEvent waits up to timeout for the next knob event. It returns ErrTimeout when nothing happened in time, an
// *IOError when the device failed, and the context error if ctx ends first.
func (k *Knob) ReadEvent(ctx context.Context, timeout time.Duration) (Event, error) {
	if k.failure != nil {
		return Event{}, k.failure
	}

	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case r := <-k.results:
		if r.err != nil {
			k.failure = &IOError{Err: r.err}
			return Event{}, k.failure
		}
		log.Debugf("Knob event: %v", r.event)
		return r.event, nil
	case <-t.C:
		return Event{}, ErrTimeout
	case <-ctx.Done():
		return Event{}, ctx.Err()
	}
}

// Close stops the reader and releases the device.
func (k *Knob) Close() error {
	var err error
	k.stopper.Do(func() {
		log.Debug("Closing PowerMate...")
		close(k.done)
		if k.closer != nil {
			err = k.closer.Close()
		}
	})
	return err
}
