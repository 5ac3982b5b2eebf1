package interp

import (
	"github.com/ezrec/twoq/display"
)

// opWindowCreate creates the surface on first use. Later calls only
// re-apply the FPS display option.
//
//	WC width height title
func (m *Machine) opWindowCreate(op string, args []string) (err error) {
	size, err := m.resolveInts(args[0], args[1])
	if err != nil {
		return
	}
	title, err := m.Resolve(args[2])
	if err != nil {
		return
	}

	if m.Surface == nil {
		var surface display.Surface
		surface, err = m.NewSurface(size[0], size[1], title.String())
		if err != nil {
			return
		}
		m.Surface = surface
	}

	m.Surface.SetShowFps(m.Options.ShowFps)
	return
}

// opWindow forwards the frame control instructions to the surface.
func (m *Machine) opWindow(op string, args []string) (err error) {
	if m.Surface == nil {
		err = ErrSurfaceMissing
		return
	}

	switch op {
	case "WR":
		err = m.Surface.Render()
	case "WU":
		m.Surface.Update()
	case "WNL":
		m.Surface.HaltForever()
		m.Halted = true
	case "WFPS":
		var fps int32
		fps, err = m.resolveInt(args[0])
		if err != nil {
			return
		}
		err = m.Surface.SetFrameRateCap(int(fps))
	}

	return
}

// opPixelGet stores the colour of a pixel as 0xAARRGGBB.
//
//	GCS x y target
func (m *Machine) opPixelGet(op string, args []string) (err error) {
	if m.Surface == nil {
		err = ErrSurfaceMissing
		return
	}

	at, err := m.resolveInts(args[0], args[1])
	if err != nil {
		return
	}

	rgb, err := m.Surface.Pixel(at[0], at[1])
	if err != nil {
		return
	}

	err = m.Store(args[2], IntValue(rgb))
	return
}

// opPixelSet sets the colour of a pixel.
//
//	SCS x y color
func (m *Machine) opPixelSet(op string, args []string) (err error) {
	if m.Surface == nil {
		err = ErrSurfaceMissing
		return
	}

	values, err := m.resolveInts(args[0], args[1], args[2])
	if err != nil {
		return
	}

	err = m.Surface.SetPixel(values[0], values[1], int32(values[2]))
	return
}

// opRect fills a rectangle, in black for '#WRECT'.
//
//	#WRECT  x y w h
//	#WRECTC x y w h color
func (m *Machine) opRect(op string, args []string) (err error) {
	if m.Surface == nil {
		err = ErrSurfaceMissing
		return
	}

	tokens := args[:4]
	if op == "#WRECTC" {
		tokens = args[:5]
	}

	values, err := m.resolveInts(tokens...)
	if err != nil {
		return
	}

	var rgb int32
	if len(values) == 5 {
		rgb = int32(values[4])
	}

	err = m.Surface.DrawRect(values[0], values[1], values[2], values[3], rgb)
	return
}

// opUnsupported rejects the reserved graphics instructions.
func (m *Machine) opUnsupported(op string, args []string) (err error) {
	err = ErrGraphicsUnsupported
	return
}
