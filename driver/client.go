package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

const requestTimeout = 5 * time.Second

// Client talks the WebDriver wire protocol (plus the Appium extensions) to a
// remote automation endpoint such as an Appium server, a Selenium grid, or
// WebDriverAgent.
type Client struct {
	baseURL    string
	httpClient *http.Client
	platform   string
	username   string
	password   string
	sessionID  string
	mu         sync.Mutex
}

func NewClient(hostPort string) *Client {
	baseURL := hostPort
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	return &Client{
		baseURL:  baseURL,
		platform: "android",
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// SetPlatform sets the platformName capability used when creating sessions
func (c *Client) SetPlatform(platform string) {
	c.platform = platform
}

// SetBasicAuth attaches credentials to every request, as cloud grids require
func (c *Client) SetBasicAuth(username, password string) {
	c.username = username
	c.password = password
}

func (c *Client) GetEndpoint(endpoint string) (map[string]interface{}, error) {
	return c.doRequest(http.MethodGet, endpoint, nil)
}

func (c *Client) PostEndpoint(endpoint string, data interface{}) (map[string]interface{}, error) {
	return c.doRequest(http.MethodPost, endpoint, data)
}

func (c *Client) DeleteEndpoint(endpoint string) (map[string]interface{}, error) {
	return c.doRequest(http.MethodDelete, endpoint, nil)
}

func (c *Client) doRequest(method, endpoint string, data interface{}) (map[string]interface{}, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, endpoint)

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal data: %v", err)
		}
		body = bytes.NewBuffer(jsonData)
	} else if method == http.MethodPost {
		// WebDriver servers reject POSTs without a body
		body = bytes.NewBufferString("{}")
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to %s endpoint %s: %v", strings.ToLower(method), endpoint, err)
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("invalid JSON response: %v", err)
	}

	if resp.StatusCode >= 400 {
		return nil, wireError(resp.StatusCode, result)
	}

	return result, nil
}

// wireError converts a W3C WebDriver error payload into a Go error
func wireError(statusCode int, response map[string]interface{}) error {
	value, ok := response["value"].(map[string]interface{})
	if !ok {
		return fmt.Errorf("request failed with status %d", statusCode)
	}

	code, _ := value["error"].(string)
	message, _ := value["message"].(string)
	if code == "" {
		return fmt.Errorf("request failed with status %d", statusCode)
	}
	if message == "" {
		return fmt.Errorf("%s", code)
	}

	return fmt.Errorf("%s: %s", code, message)
}

// valueString extracts a string "value" field from a wire response
func valueString(response map[string]interface{}) (string, error) {
	value, ok := response["value"].(string)
	if !ok {
		return "", fmt.Errorf("invalid response format: expected string value")
	}
	return value, nil
}
