package driver

import (
	"fmt"
)

// ExecuteScript runs a synchronous JavaScript snippet in the current
// browsing context and returns its value
func (c *Client) ExecuteScript(script string, args []interface{}) (interface{}, error) {
	return c.executeScript("execute/sync", script, args)
}

// ExecuteAsyncScript runs a snippet that signals completion by invoking the
// callback the driver appends to args
func (c *Client) ExecuteAsyncScript(script string, args []interface{}) (interface{}, error) {
	return c.executeScript("execute/async", script, args)
}

func (c *Client) executeScript(endpoint, script string, args []interface{}) (interface{}, error) {
	if args == nil {
		args = []interface{}{}
	}

	var result interface{}
	err := c.withSession(func(sessionID string) error {
		response, err := c.PostEndpoint(fmt.Sprintf("session/%s/%s", sessionID, endpoint), map[string]interface{}{
			"script": script,
			"args":   args,
		})
		if err != nil {
			return fmt.Errorf("failed to execute script: %v", err)
		}

		result = response["value"]
		return nil
	})

	return result, err
}
