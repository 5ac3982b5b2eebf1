// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package display

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	DEFAULT_FPS = 60 // Frame rate cap until the script sets one.
)

// Framebuffer is a headless Surface backed by an RGBA image.
type Framebuffer struct {
	Title      string
	Vsync      bool
	Fullscreen bool
	CustomLoop bool      // If set, Start does not run a render loop.
	Stats      io.Writer // Destination of the FPS/UPS report.
	FrameDir   string    // If set, each Render saves a PNG frame here.

	mutex   sync.Mutex
	img     *image.RGBA
	fpsCap  int
	showFps bool
	halted  bool
	closed  bool
	fps     int // Frames presented in the current second.
	ups     int // Updates in the current second.
	frame   int // Next saved frame number.

	stop chan struct{}
	done chan struct{}
}

var _ Surface = (*Framebuffer)(nil)

// NewFramebuffer creates an opaque black framebuffer.
func NewFramebuffer(width, height int, title string) (fb *Framebuffer, err error) {
	if width <= 0 || height <= 0 {
		err = ErrSize
		return
	}

	fb = &Framebuffer{
		Title:  title,
		Stats:  os.Stdout,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		fpsCap: DEFAULT_FPS,
	}
	for n := 3; n < len(fb.img.Pix); n += 4 {
		fb.img.Pix[n] = 0xff
	}

	return
}

// Bounds of the framebuffer.
func (fb *Framebuffer) Bounds() image.Rectangle {
	return fb.img.Rect
}

// Start runs the fixed rate update/render loop in its own goroutine.
func (fb *Framebuffer) Start() {
	fb.mutex.Lock()
	defer fb.mutex.Unlock()

	if fb.CustomLoop || fb.stop != nil || fb.closed {
		return
	}

	fb.stop = make(chan struct{})
	fb.done = make(chan struct{})
	go fb.loop(fb.stop, fb.done)
}

func (fb *Framebuffer) loop(stop, done chan struct{}) {
	defer close(done)

	report := time.NewTicker(time.Second)
	defer report.Stop()

	frame := time.NewTimer(fb.period())
	defer frame.Stop()

	for {
		select {
		case <-stop:
			return
		case <-frame.C:
			fb.tick()
			frame.Reset(fb.period())
		case <-report.C:
			fb.report()
		}
	}
}

func (fb *Framebuffer) period() time.Duration {
	fb.mutex.Lock()
	defer fb.mutex.Unlock()

	return time.Second / time.Duration(fb.fpsCap)
}

// tick is one iteration of the internal loop: an update, then a present.
func (fb *Framebuffer) tick() {
	fb.mutex.Lock()
	defer fb.mutex.Unlock()

	fb.ups++
	fb.fps++
}

// report writes and resets the per second counters.
func (fb *Framebuffer) report() {
	fb.mutex.Lock()
	defer fb.mutex.Unlock()

	if fb.showFps {
		fmt.Fprintln(fb.Stats, f("FPS: %d, UPS: %d", fb.fps, fb.ups))
	}
	fb.fps = 0
	fb.ups = 0
}

// Render presents the image, saving it when FrameDir is set.
func (fb *Framebuffer) Render() (err error) {
	fb.mutex.Lock()
	defer fb.mutex.Unlock()

	if fb.closed {
		err = ErrClosed
		return
	}

	fb.fps++

	if len(fb.FrameDir) == 0 {
		return
	}

	path := filepath.Join(fb.FrameDir, fmt.Sprintf("frame-%06d.png", fb.frame))
	fb.frame++
	err = fb.writePNG(path)
	return
}

func (fb *Framebuffer) Update() {
	fb.mutex.Lock()
	defer fb.mutex.Unlock()

	fb.ups++
}

func (fb *Framebuffer) HaltForever() {
	fb.mutex.Lock()
	defer fb.mutex.Unlock()

	if !fb.halted && fb.CustomLoop {
		log.Printf("display: %v: halted without a render loop", fb.Title)
	}
	fb.halted = true
}

// Halted reports whether the script has finished with the surface.
func (fb *Framebuffer) Halted() bool {
	fb.mutex.Lock()
	defer fb.mutex.Unlock()

	return fb.halted
}

func (fb *Framebuffer) SetFrameRateCap(fps int) (err error) {
	if fps <= 0 {
		err = ErrFrameRate
		return
	}

	fb.mutex.Lock()
	defer fb.mutex.Unlock()

	fb.fpsCap = fps
	return
}

func (fb *Framebuffer) Pixel(x, y int) (rgb int32, err error) {
	fb.mutex.Lock()
	defer fb.mutex.Unlock()

	if !(image.Point{x, y}).In(fb.img.Rect) {
		err = ErrOutOfBounds
		return
	}

	c := fb.img.RGBAAt(x, y)
	rgb = int32(uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B))
	return
}

func (fb *Framebuffer) SetPixel(x, y int, rgb int32) (err error) {
	fb.mutex.Lock()
	defer fb.mutex.Unlock()

	if !(image.Point{x, y}).In(fb.img.Rect) {
		err = ErrOutOfBounds
		return
	}

	fb.img.SetRGBA(x, y, opaque(rgb))
	return
}

func (fb *Framebuffer) DrawRect(x, y, w, h int, rgb int32) (err error) {
	if w <= 0 || h <= 0 {
		return
	}

	fb.mutex.Lock()
	defer fb.mutex.Unlock()

	rect := image.Rect(x, y, x+w, y+h)
	if !rect.In(fb.img.Rect) {
		err = ErrOutOfBounds
		return
	}

	draw.Draw(fb.img, rect, &image.Uniform{opaque(rgb)}, image.Point{}, draw.Src)
	return
}

func (fb *Framebuffer) SetShowFps(show bool) {
	fb.mutex.Lock()
	defer fb.mutex.Unlock()

	fb.showFps = show
}

// Snapshot returns a copy of the current image.
func (fb *Framebuffer) Snapshot() (img *image.RGBA) {
	fb.mutex.Lock()
	defer fb.mutex.Unlock()

	img = image.NewRGBA(fb.img.Rect)
	copy(img.Pix, fb.img.Pix)
	return
}

// SavePNG writes the current image to path.
func (fb *Framebuffer) SavePNG(path string) (err error) {
	fb.mutex.Lock()
	defer fb.mutex.Unlock()

	return fb.writePNG(path)
}

func (fb *Framebuffer) writePNG(path string) (err error) {
	ouf, err := os.Create(path)
	if err != nil {
		return
	}
	defer func() {
		cerr := ouf.Close()
		if err == nil {
			err = cerr
		}
	}()

	err = png.Encode(ouf, fb.img)
	return
}

// Close stops the render loop and waits for it to exit.
func (fb *Framebuffer) Close() (err error) {
	fb.mutex.Lock()
	if fb.closed {
		fb.mutex.Unlock()
		return
	}
	fb.closed = true
	stop, done := fb.stop, fb.done
	fb.mutex.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}

	return
}

// opaque converts a 0xRRGGBB integer into an opaque colour.
func opaque(rgb int32) color.RGBA {
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}
}
