package driver

import (
	"fmt"
	"time"
)

// SetImplicitTimeout sets how long the driver waits for elements to appear
func (c *Client) SetImplicitTimeout(d time.Duration) error {
	return c.setTimeout("implicit", d)
}

// SetScriptTimeout sets how long an execute/async call may run
func (c *Client) SetScriptTimeout(d time.Duration) error {
	return c.setTimeout("script", d)
}

// SetPageLoadTimeout sets how long the driver waits for page loads
func (c *Client) SetPageLoadTimeout(d time.Duration) error {
	return c.setTimeout("pageLoad", d)
}

func (c *Client) setTimeout(name string, d time.Duration) error {
	return c.withSession(func(sessionID string) error {
		_, err := c.PostEndpoint(fmt.Sprintf("session/%s/timeouts", sessionID), map[string]interface{}{
			name: d.Milliseconds(),
		})
		if err != nil {
			return fmt.Errorf("failed to set %s timeout: %v", name, err)
		}
		return nil
	})
}
