package driver

import (
	"encoding/json"
	"fmt"
)

// Cookie is a browser cookie as carried on the wire
type Cookie struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Path     string `json:"path,omitempty"`
	Domain   string `json:"domain,omitempty"`
	Secure   bool   `json:"secure,omitempty"`
	HTTPOnly bool   `json:"httpOnly,omitempty"`
	Expiry   int64  `json:"expiry,omitempty"`
}

// GetCookies returns all cookies visible to the current session
func (c *Client) GetCookies() ([]Cookie, error) {
	var cookies []Cookie
	err := c.withSession(func(sessionID string) error {
		response, err := c.GetEndpoint(fmt.Sprintf("session/%s/cookie", sessionID))
		if err != nil {
			return fmt.Errorf("failed to get cookies: %v", err)
		}
		return decodeValue(response, &cookies)
	})
	if err != nil {
		return nil, err
	}
	return cookies, nil
}

// GetCookie returns the cookie with the given name
func (c *Client) GetCookie(name string) (*Cookie, error) {
	var cookie Cookie
	err := c.withSession(func(sessionID string) error {
		response, err := c.GetEndpoint(fmt.Sprintf("session/%s/cookie/%s", sessionID, name))
		if err != nil {
			return fmt.Errorf("failed to get cookie %s: %v", name, err)
		}
		return decodeValue(response, &cookie)
	})
	if err != nil {
		return nil, err
	}
	return &cookie, nil
}

func (c *Client) AddCookie(cookie Cookie) error {
	return c.withSession(func(sessionID string) error {
		_, err := c.PostEndpoint(fmt.Sprintf("session/%s/cookie", sessionID), map[string]interface{}{
			"cookie": cookie,
		})
		if err != nil {
			return fmt.Errorf("failed to add cookie: %v", err)
		}
		return nil
	})
}

func (c *Client) DeleteCookie(name string) error {
	return c.withSession(func(sessionID string) error {
		_, err := c.DeleteEndpoint(fmt.Sprintf("session/%s/cookie/%s", sessionID, name))
		if err != nil {
			return fmt.Errorf("failed to delete cookie %s: %v", name, err)
		}
		return nil
	})
}

func (c *Client) DeleteAllCookies() error {
	return c.withSession(func(sessionID string) error {
		_, err := c.DeleteEndpoint(fmt.Sprintf("session/%s/cookie", sessionID))
		if err != nil {
			return fmt.Errorf("failed to delete cookies: %v", err)
		}
		return nil
	})
}

// decodeValue re-decodes a wire response's "value" field into out
func decodeValue(response map[string]interface{}, out interface{}) error {
	raw, err := json.Marshal(response["value"])
	if err != nil {
		return fmt.Errorf("invalid response value: %v", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("invalid response value: %v", err)
	}
	return nil
}
