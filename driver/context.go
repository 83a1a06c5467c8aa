package driver

import (
	"fmt"
)

// Contexts lists the automation contexts available on the device, such as
// NATIVE_APP and one entry per attached WebView
func (c *Client) Contexts() ([]string, error) {
	var contexts []string
	err := c.withSession(func(sessionID string) error {
		response, err := c.GetEndpoint(fmt.Sprintf("session/%s/contexts", sessionID))
		if err != nil {
			return fmt.Errorf("failed to get contexts: %v", err)
		}
		return decodeValue(response, &contexts)
	})
	if err != nil {
		return nil, err
	}
	return contexts, nil
}

// CurrentContext returns the context automation commands currently address
func (c *Client) CurrentContext() (string, error) {
	var current string
	err := c.withSession(func(sessionID string) error {
		response, err := c.GetEndpoint(fmt.Sprintf("session/%s/context", sessionID))
		if err != nil {
			return fmt.Errorf("failed to get current context: %v", err)
		}

		current, err = valueString(response)
		return err
	})
	if err != nil {
		return "", err
	}
	return current, nil
}

func (c *Client) SwitchToContext(name string) error {
	return c.withSession(func(sessionID string) error {
		_, err := c.PostEndpoint(fmt.Sprintf("session/%s/context", sessionID), map[string]interface{}{
			"name": name,
		})
		if err != nil {
			return fmt.Errorf("failed to switch to context %s: %v", name, err)
		}
		return nil
	})
}
