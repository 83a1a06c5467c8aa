package driver

import (
	"encoding/base64"
	"fmt"
)

// TakeScreenshot captures the current window and returns the PNG bytes
func (c *Client) TakeScreenshot() ([]byte, error) {
	var screenshot []byte
	err := c.withSession(func(sessionID string) error {
		response, err := c.GetEndpoint(fmt.Sprintf("session/%s/screenshot", sessionID))
		if err != nil {
			return fmt.Errorf("failed to take screenshot: %v", err)
		}

		data, err := valueString(response)
		if err != nil {
			return err
		}

		screenshot, err = base64.StdEncoding.DecodeString(data)
		if err != nil {
			return fmt.Errorf("failed to decode screenshot data: %v", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return screenshot, nil
}
