package commands

import (
	"fmt"
)

// ContextRequest represents the parameters for context commands
type ContextRequest struct {
	Remote string `json:"remote,omitempty"`

	// Target selects where to switch: "native", "webview", or "flutter"
	Target string `json:"target,omitempty"`

	// Name pins an explicit WebView context instead of auto-resolving
	Name string `json:"name,omitempty"`
}

// ContextResponse carries the current and available contexts
type ContextResponse struct {
	Current   string   `json:"current"`
	Available []string `json:"available,omitempty"`
}

// ContextGetCommand returns the current context and the available ones
func ContextGetCommand(req ContextRequest) *CommandResponse {
	p, err := FindPage(req.Remote)
	if err != nil {
		return NewErrorResponse(err)
	}

	current, err := p.CurrentContext()
	if err != nil {
		return NewErrorResponse(err)
	}

	available, err := p.Contexts()
	if err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(ContextResponse{Current: current, Available: available})
}

// ContextSetCommand switches to the requested context
func ContextSetCommand(req ContextRequest) *CommandResponse {
	p, err := FindPage(req.Remote)
	if err != nil {
		return NewErrorResponse(err)
	}

	switch req.Target {
	case "native":
		err = p.SwitchToNative()
	case "webview":
		err = p.SwitchToWebView(req.Name)
	case "flutter":
		err = p.SwitchToFlutter()
	default:
		return NewErrorResponse(fmt.Errorf("invalid context target '%s', must be 'native', 'webview' or 'flutter'", req.Target))
	}
	if err != nil {
		return NewErrorResponse(err)
	}

	current, err := p.CurrentContext()
	if err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(ContextResponse{Current: current})
}
