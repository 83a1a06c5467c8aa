package page

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// SetWindowSize resizes the current window. When neither dimension is
// positive the window is maximized instead.
func (p *Page) SetWindowSize(width, height int) error {
	if width <= 0 && height <= 0 {
		return p.d.MaximizeWindow()
	}
	return p.d.SetWindowRect(width, height)
}

// SwitchToFrame switches focus to the frame with the given index
func (p *Page) SwitchToFrame(index int) error {
	return p.d.SwitchToFrame(index)
}

// SwitchToParentFrame switches focus back to the parent context
func (p *Page) SwitchToParentFrame() error {
	return p.d.SwitchToParentFrame()
}

// SwitchToDefaultContent switches focus to the top-level browsing context
func (p *Page) SwitchToDefaultContent() error {
	return p.d.SwitchToFrame(nil)
}

// SwitchToWindow switches focus to the window at the given index in the
// driver's handle list; 0 is the first window, 1 a newly opened one
func (p *Page) SwitchToWindow(index int) error {
	handles, err := p.d.WindowHandles()
	if err != nil {
		return err
	}

	if index < 0 || index >= len(handles) {
		return fmt.Errorf("window index %d out of range, %d windows open", index, len(handles))
	}

	return p.d.SwitchToWindow(handles[index])
}

// Screenshot saves a screenshot of the current window as a PNG file and
// returns its path. dir defaults to the working directory, filename to the
// current unix timestamp.
func (p *Page) Screenshot(dir, filename string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = wd
	}
	if filename == "" {
		filename = fmt.Sprintf("%d.png", time.Now().Unix())
	}

	data, err := p.d.TakeScreenshot()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save screenshot: %v", err)
	}

	return path, nil
}
