package page

import (
	"errors"
	"fmt"
	"time"

	"github.com/rrosajp/poium/driver"
)

// Driver is the surface of the wrapped automation driver that the page
// helpers forward to. *driver.Client implements it; tests substitute mocks.
type Driver interface {
	ExecuteScript(script string, args []interface{}) (interface{}, error)

	GetCookies() ([]driver.Cookie, error)
	GetCookie(name string) (*driver.Cookie, error)
	AddCookie(cookie driver.Cookie) error
	DeleteCookie(name string) error
	DeleteAllCookies() error

	WindowHandles() ([]string, error)
	SwitchToWindow(handle string) error
	MaximizeWindow() error
	SetWindowRect(width, height int) error
	SwitchToFrame(id interface{}) error
	SwitchToParentFrame() error

	Contexts() ([]string, error)
	CurrentContext() (string, error)
	SwitchToContext(name string) error

	AcceptAlert() error
	DismissAlert() error
	AlertText() (string, error)

	PerformActions(pointerType string, actions []driver.PointerAction) error
	ReleaseActions() error

	Back() error
	OpenURL(url string) error
	PressKeyCode(keycode, metastate int) error

	SetImplicitTimeout(d time.Duration) error
	SetScriptTimeout(d time.Duration) error
	SetPageLoadTimeout(d time.Duration) error

	TakeScreenshot() ([]byte, error)
}

// ErrNoScript is returned by ExecuteScript when no script is given
var ErrNoScript = errors.New("please provide a js script")

// sleep is swapped out in tests to avoid real waits
var sleep = time.Sleep

// Page is a thin convenience layer over an automation driver session. It is
// not safe for concurrent use, matching the wrapped driver.
type Page struct {
	d Driver
}

func New(d Driver) *Page {
	return &Page{d: d}
}

// Driver returns the wrapped driver handle
func (p *Page) Driver() Driver {
	return p.d
}

// ExecuteScript runs a JavaScript snippet in the current browsing context
func (p *Page) ExecuteScript(js string, args ...interface{}) (interface{}, error) {
	if js == "" {
		return nil, ErrNoScript
	}
	return p.d.ExecuteScript(js, args)
}

// WindowScroll scrolls the window to the given offsets
func (p *Page) WindowScroll(width, height int) error {
	js := fmt.Sprintf("window.scrollTo(%d,%d);", width, height)
	_, err := p.ExecuteScript(js)
	return err
}

// Title returns the page title via JavaScript
func (p *Page) Title() (string, error) {
	return p.stringScript("return document.title;")
}

// URL returns the page URL via JavaScript
func (p *Page) URL() (string, error) {
	return p.stringScript("return document.URL;")
}

func (p *Page) stringScript(js string) (string, error) {
	result, err := p.ExecuteScript(js)
	if err != nil {
		return "", err
	}

	s, ok := result.(string)
	if !ok {
		return "", fmt.Errorf("script returned %T, expected string", result)
	}
	return s, nil
}

// Open navigates to the given URL
func (p *Page) Open(url string) error {
	return p.d.OpenURL(url)
}

// Sleep blocks for the given duration
func (p *Page) Sleep(d time.Duration) {
	sleep(d)
}
