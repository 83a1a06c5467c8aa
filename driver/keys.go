package driver

import (
	"fmt"
)

// PressKeyCode sends an Android key event. metastate carries modifier flags
// such as shift and is ignored when zero.
func (c *Client) PressKeyCode(keycode, metastate int) error {
	return c.withSession(func(sessionID string) error {
		data := map[string]interface{}{
			"keycode": keycode,
		}
		if metastate != 0 {
			data["metastate"] = metastate
		}

		_, err := c.PostEndpoint(fmt.Sprintf("session/%s/appium/device/press_keycode", sessionID), data)
		if err != nil {
			return fmt.Errorf("failed to press keycode %d: %v", keycode, err)
		}
		return nil
	})
}
