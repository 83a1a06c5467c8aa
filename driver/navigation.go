package driver

import (
	"fmt"
)

// Back navigates one step backwards in the session history
func (c *Client) Back() error {
	return c.withSession(func(sessionID string) error {
		_, err := c.PostEndpoint(fmt.Sprintf("session/%s/back", sessionID), nil)
		if err != nil {
			return fmt.Errorf("failed to navigate back: %v", err)
		}
		return nil
	})
}

// OpenURL navigates the current browsing context to url
func (c *Client) OpenURL(url string) error {
	return c.withSession(func(sessionID string) error {
		_, err := c.PostEndpoint(fmt.Sprintf("session/%s/url", sessionID), map[string]interface{}{
			"url": url,
		})
		if err != nil {
			return fmt.Errorf("failed to open URL: %v", err)
		}
		return nil
	})
}
