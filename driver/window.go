package driver

import (
	"fmt"
)

// WindowHandles returns the handles of all open windows, oldest first
func (c *Client) WindowHandles() ([]string, error) {
	var handles []string
	err := c.withSession(func(sessionID string) error {
		response, err := c.GetEndpoint(fmt.Sprintf("session/%s/window/handles", sessionID))
		if err != nil {
			return fmt.Errorf("failed to get window handles: %v", err)
		}
		return decodeValue(response, &handles)
	})
	if err != nil {
		return nil, err
	}
	return handles, nil
}

// SwitchToWindow moves command focus to the window with the given handle
func (c *Client) SwitchToWindow(handle string) error {
	return c.withSession(func(sessionID string) error {
		_, err := c.PostEndpoint(fmt.Sprintf("session/%s/window", sessionID), map[string]interface{}{
			"handle": handle,
		})
		if err != nil {
			return fmt.Errorf("failed to switch window: %v", err)
		}
		return nil
	})
}

func (c *Client) MaximizeWindow() error {
	return c.withSession(func(sessionID string) error {
		_, err := c.PostEndpoint(fmt.Sprintf("session/%s/window/maximize", sessionID), nil)
		if err != nil {
			return fmt.Errorf("failed to maximize window: %v", err)
		}
		return nil
	})
}

// SetWindowRect resizes the current window
func (c *Client) SetWindowRect(width, height int) error {
	return c.withSession(func(sessionID string) error {
		_, err := c.PostEndpoint(fmt.Sprintf("session/%s/window/rect", sessionID), map[string]interface{}{
			"width":  width,
			"height": height,
		})
		if err != nil {
			return fmt.Errorf("failed to set window rect: %v", err)
		}
		return nil
	})
}

// SwitchToFrame switches to the frame identified by id: a number for frame
// index, nil for the top-level browsing context
func (c *Client) SwitchToFrame(id interface{}) error {
	return c.withSession(func(sessionID string) error {
		_, err := c.PostEndpoint(fmt.Sprintf("session/%s/frame", sessionID), map[string]interface{}{
			"id": id,
		})
		if err != nil {
			return fmt.Errorf("failed to switch frame: %v", err)
		}
		return nil
	})
}

func (c *Client) SwitchToParentFrame() error {
	return c.withSession(func(sessionID string) error {
		_, err := c.PostEndpoint(fmt.Sprintf("session/%s/frame/parent", sessionID), nil)
		if err != nil {
			return fmt.Errorf("failed to switch to parent frame: %v", err)
		}
		return nil
	})
}
