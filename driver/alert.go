package driver

import (
	"fmt"
)

func (c *Client) AcceptAlert() error {
	return c.withSession(func(sessionID string) error {
		_, err := c.PostEndpoint(fmt.Sprintf("session/%s/alert/accept", sessionID), nil)
		if err != nil {
			return fmt.Errorf("failed to accept alert: %v", err)
		}
		return nil
	})
}

func (c *Client) DismissAlert() error {
	return c.withSession(func(sessionID string) error {
		_, err := c.PostEndpoint(fmt.Sprintf("session/%s/alert/dismiss", sessionID), nil)
		if err != nil {
			return fmt.Errorf("failed to dismiss alert: %v", err)
		}
		return nil
	})
}

// AlertText returns the text of the open alert; the driver responds with a
// "no such alert" error when none is displayed
func (c *Client) AlertText() (string, error) {
	var text string
	err := c.withSession(func(sessionID string) error {
		response, err := c.GetEndpoint(fmt.Sprintf("session/%s/alert/text", sessionID))
		if err != nil {
			return err
		}

		text, err = valueString(response)
		return err
	})
	if err != nil {
		return "", err
	}
	return text, nil
}
