package ledstrip

import (
	"image"
	"image/color"
)

type wsEngine interface {
	Init() error
	Render() error
	Wait() error
	Fini()
	Leds(channel int) []uint32
}

// wsDrawer exposes a ws281x engine as a display.Drawer.
type wsDrawer struct {
	ws    wsEngine
	count int
}

func (d *wsDrawer) String() string {
	return "ws281x"
}

func (d *wsDrawer) ColorModel() color.Model {
	return color.NRGBAModel
}

func (d *wsDrawer) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.count, 1)
}

func (d *wsDrawer) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	leds := d.ws.Leds(0)
	r = r.Intersect(d.Bounds())
	for x := r.Min.X; x < r.Max.X && x < len(leds); x++ {
		// premultiplied, so translucent pixels come out dimmed.
		c := color.RGBAModel.Convert(src.At(sp.X+x-r.Min.X, sp.Y)).(color.RGBA)
		leds[x] = uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	}
	return d.ws.Render()
}

func (d *wsDrawer) Halt() error {
	leds := d.ws.Leds(0)
	for i := range leds {
		leds[i] = 0
	}
	return d.ws.Render()
}

func (d *wsDrawer) Close() error {
	d.ws.Fini()
	return nil
}
