package page

import "time"

// androidKeyCodeHome is the Android HOME hardware key
const androidKeyCodeHome = 3

// Back navigates one step backwards
func (p *Page) Back() error {
	return p.d.Back()
}

// Home presses the device home button
func (p *Page) Home() error {
	return p.d.PressKeyCode(androidKeyCodeHome, 0)
}

// SetImplicitWait sets how long the driver polls for elements to appear
func (p *Page) SetImplicitWait(d time.Duration) error {
	return p.d.SetImplicitTimeout(d)
}

// SetScriptTimeout sets how long an async script may run before the driver
// raises an error
func (p *Page) SetScriptTimeout(d time.Duration) error {
	return p.d.SetScriptTimeout(d)
}

// SetPageLoadTimeout sets how long the driver waits for a page load to
// complete before raising an error
func (p *Page) SetPageLoadTimeout(d time.Duration) error {
	return p.d.SetPageLoadTimeout(d)
}
