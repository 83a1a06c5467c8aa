package commands

import (
	"fmt"
	"strings"
)

// URLRequest represents the parameters for opening a URL
type URLRequest struct {
	Remote string `json:"remote,omitempty"`
	URL    string `json:"url"`
}

// OpenURLCommand navigates the current browsing context to the given URL
func OpenURLCommand(req URLRequest) *CommandResponse {
	if req.URL == "" {
		return NewErrorResponse(fmt.Errorf("url is required"))
	}
	if !strings.Contains(req.URL, "://") {
		return NewErrorResponse(fmt.Errorf("url must include a scheme, got '%s'", req.URL))
	}

	p, err := FindPage(req.Remote)
	if err != nil {
		return NewErrorResponse(err)
	}

	if err := p.Open(req.URL); err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(nil)
}
