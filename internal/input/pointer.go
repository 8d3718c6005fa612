package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sample is one frame's pointer snapshot: the normalized cursor, the raw
// screen position with its delta since the previous sample, and the
// press/release edges of both buttons. The manipulation controller
// consumes exactly one Sample per frame.
type Sample struct {
	Cursor rl.Vector2 // normalized: center (0,0), axes in [-1,1], +Y up
	Screen rl.Vector2 // raw pixels
	Delta  rl.Vector2 // screen-pixel movement since the previous sample
	Time   float64    // seconds since window creation

	PrimaryPressed    bool
	PrimaryDown       bool
	PrimaryReleased   bool
	SecondaryPressed  bool
	SecondaryDown     bool
	SecondaryReleased bool
}

// Moved reports whether the pointer moved since the previous sample.
func (s Sample) Moved() bool {
	return s.Delta.X != 0 || s.Delta.Y != 0
}

// Normalize maps a screen-pixel position into the unit square: center to
// (0,0), edges to +-1, vertical axis flipped so up is positive.
func Normalize(screen rl.Vector2, width, height float32) rl.Vector2 {
	if width <= 0 || height <= 0 {
		return rl.Vector2{}
	}
	return rl.Vector2{
		X: (screen.X/width)*2 - 1,
		Y: -((screen.Y/height)*2 - 1),
	}
}

// Tracker polls the mouse once per frame.
type Tracker struct {
	prevScreen rl.Vector2
	hasPrev    bool
}

// Poll reads the current mouse state. The viewport size is re-read on
// every call, never cached, so normalization stays correct through a
// live resize.
func (t *Tracker) Poll() Sample {
	screen := rl.GetMousePosition()
	width := float32(rl.GetScreenWidth())
	height := float32(rl.GetScreenHeight())

	s := Sample{
		Cursor: Normalize(screen, width, height),
		Screen: screen,
		Time:   rl.GetTime(),

		PrimaryPressed:    rl.IsMouseButtonPressed(rl.MouseLeftButton),
		PrimaryDown:       rl.IsMouseButtonDown(rl.MouseLeftButton),
		PrimaryReleased:   rl.IsMouseButtonReleased(rl.MouseLeftButton),
		SecondaryPressed:  rl.IsMouseButtonPressed(rl.MouseRightButton),
		SecondaryDown:     rl.IsMouseButtonDown(rl.MouseRightButton),
		SecondaryReleased: rl.IsMouseButtonReleased(rl.MouseRightButton),
	}

	if t.hasPrev {
		s.Delta = rl.Vector2Subtract(screen, t.prevScreen)
	}
	t.prevScreen = screen
	t.hasPrev = true

	return s
}
