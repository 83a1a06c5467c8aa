package driver

import (
	"context"
	"fmt"
	"time"

	"github.com/rrosajp/poium/utils"
)

// GetStatus queries the remote endpoint's readiness
func (c *Client) GetStatus() (map[string]interface{}, error) {
	return c.GetEndpoint("status")
}

// WaitForReady polls the status endpoint until the remote end responds
func (c *Client) WaitForReady(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timed out waiting for driver to be ready")

		case <-ticker.C:
			_, err := c.GetStatus()
			if err != nil {
				utils.Verbose("driver not ready yet: %v", err)
				continue
			}
			return nil
		}
	}
}

// CreateSession starts a new automation session and returns its id
func (c *Client) CreateSession() (string, error) {
	response, err := c.PostEndpoint("session", map[string]interface{}{
		"capabilities": map[string]interface{}{
			"alwaysMatch": map[string]interface{}{
				"platformName": c.platform,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create session: %v", err)
	}

	// W3C servers nest the session id under value, JSONWP ones do not
	if value, ok := response["value"].(map[string]interface{}); ok {
		if sessionID, ok := value["sessionId"].(string); ok {
			return sessionID, nil
		}
	}
	if sessionID, ok := response["sessionId"].(string); ok {
		return sessionID, nil
	}

	return "", fmt.Errorf("no session id in response")
}

func (c *Client) DeleteSession(sessionID string) error {
	_, err := c.DeleteEndpoint(fmt.Sprintf("session/%s", sessionID))
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %v", sessionID, err)
	}
	return nil
}

// GetOrCreateSession returns the cached session id, creating one on first use
func (c *Client) GetOrCreateSession() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sessionID != "" {
		return c.sessionID, nil
	}

	sessionID, err := c.CreateSession()
	if err != nil {
		return "", err
	}

	c.sessionID = sessionID
	return sessionID, nil
}

func (c *Client) withSession(fn func(sessionID string) error) error {
	sessionID, err := c.GetOrCreateSession()
	if err != nil {
		return err
	}
	return fn(sessionID)
}

// Close deletes the cached session, if any
func (c *Client) Close() error {
	c.mu.Lock()
	sessionID := c.sessionID
	c.sessionID = ""
	c.mu.Unlock()

	if sessionID == "" {
		return nil
	}
	return c.DeleteSession(sessionID)
}
