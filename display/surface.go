// Package display provides the graphics surface driven by the twoq
// window instructions.
package display

// Surface is a drawable window with its own render loop.
//
//go:generate go tool mockgen -write_package_comment=false -destination=../interp/mock_surface_test.go -package=interp github.com/ezrec/twoq/display Surface
type Surface interface {
	// Render presents the current image.
	Render() error
	// Update is a script driven update tick.
	Update()
	// HaltForever tells the surface the script has finished and will only
	// be kept alive for its render loop.
	HaltForever()
	// SetFrameRateCap sets the target frames per second.
	SetFrameRateCap(fps int) error
	// Pixel returns the 0xAARRGGBB colour at x, y.
	Pixel(x, y int) (int32, error)
	// SetPixel sets the 0xRRGGBB colour at x, y.
	SetPixel(x, y int, rgb int32) error
	// DrawRect fills a rectangle with the 0xRRGGBB colour.
	DrawRect(x, y, w, h int, rgb int32) error
	// SetShowFps enables the once per second FPS/UPS report.
	SetShowFps(show bool)
	// Close stops the render loop.
	Close() error
}
