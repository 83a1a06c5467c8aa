package commands

import (
	"fmt"
)

// ScriptRequest represents the parameters for a script execution command
type ScriptRequest struct {
	Remote string        `json:"remote,omitempty"`
	Script string        `json:"script"`
	Args   []interface{} `json:"args,omitempty"`
}

// ScriptResponse carries the script's return value
type ScriptResponse struct {
	Value interface{} `json:"value"`
}

// ScrollRequest represents the parameters for a window scroll command
type ScrollRequest struct {
	Remote string `json:"remote,omitempty"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// PageInfoResponse carries the current page title and URL
type PageInfoResponse struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ScriptCommand executes a JavaScript snippet in the current browsing context
func ScriptCommand(req ScriptRequest) *CommandResponse {
	p, err := FindPage(req.Remote)
	if err != nil {
		return NewErrorResponse(err)
	}

	value, err := p.ExecuteScript(req.Script, req.Args...)
	if err != nil {
		return NewErrorResponse(fmt.Errorf("failed to execute script: %v", err))
	}

	return NewSuccessResponse(ScriptResponse{Value: value})
}

// ScrollCommand scrolls the window to the given offsets
func ScrollCommand(req ScrollRequest) *CommandResponse {
	p, err := FindPage(req.Remote)
	if err != nil {
		return NewErrorResponse(err)
	}

	if err := p.WindowScroll(req.Width, req.Height); err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(nil)
}

// PageInfoCommand returns the current page title and URL
func PageInfoCommand(remote string) *CommandResponse {
	p, err := FindPage(remote)
	if err != nil {
		return NewErrorResponse(err)
	}

	title, err := p.Title()
	if err != nil {
		return NewErrorResponse(err)
	}

	url, err := p.URL()
	if err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(PageInfoResponse{Title: title, URL: url})
}
