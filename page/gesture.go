package page

import (
	"time"

	"github.com/rrosajp/poium/driver"
)

const (
	// pause between press and release inside a tap sequence
	tapPressDuration = 100 * time.Millisecond

	// DefaultTapSettle is how long Tap waits after the gesture completes
	DefaultTapSettle = time.Second

	// DefaultSwipeDuration is the travel time of a swipe when none is given
	DefaultSwipeDuration = time.Second
)

// Tap taps the screen at the given coordinates and waits DefaultTapSettle
// for the UI to settle
func (p *Page) Tap(x, y int) error {
	return p.TapWithSettle(x, y, DefaultTapSettle)
}

// TapWithSettle taps at the given coordinates: the touch pointer moves to
// the location, presses, pauses briefly, and releases. After the gesture the
// call blocks for settle.
func (p *Page) TapWithSettle(x, y int, settle time.Duration) error {
	err := p.d.PerformActions("touch", []driver.PointerAction{
		{Type: "pointerMove", X: x, Y: y},
		{Type: "pointerDown"},
		{Type: "pause", Duration: int(tapPressDuration.Milliseconds())},
		{Type: "pointerUp"},
	})
	if err != nil {
		return err
	}

	sleep(settle)
	return nil
}

// Swipe swipes from one point to another over the given duration; zero means
// DefaultSwipeDuration
func (p *Page) Swipe(startX, startY, endX, endY int, duration time.Duration) error {
	if duration <= 0 {
		duration = DefaultSwipeDuration
	}

	return p.d.PerformActions("touch", []driver.PointerAction{
		{Type: "pointerMove", X: startX, Y: startY},
		{Type: "pointerDown"},
		{Type: "pointerMove", Duration: int(duration.Milliseconds()), X: endX, Y: endY},
		{Type: "pointerUp"},
	})
}

// MoveByOffset moves the mouse relative to its current position, optionally
// clicking at the destination
func (p *Page) MoveByOffset(x, y int, click bool) error {
	actions := []driver.PointerAction{
		{Type: "pointerMove", X: x, Y: y, Origin: "pointer"},
	}
	if click {
		actions = append(actions,
			driver.PointerAction{Type: "pointerDown"},
			driver.PointerAction{Type: "pointerUp"},
		)
	}

	return p.d.PerformActions("mouse", actions)
}

// ReleasePointer releases all held pointers and keys of the session
func (p *Page) ReleasePointer() error {
	return p.d.ReleaseActions()
}
