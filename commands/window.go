package commands

import (
	"fmt"
)

// WindowSwitchRequest represents the parameters for switching windows
type WindowSwitchRequest struct {
	Remote string `json:"remote,omitempty"`
	Index  int    `json:"index"`
}

// WindowSizeRequest represents the parameters for resizing the window.
// Zero dimensions maximize the window.
type WindowSizeRequest struct {
	Remote string `json:"remote,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// FrameRequest represents the parameters for frame switching
type FrameRequest struct {
	Remote string `json:"remote,omitempty"`
	Index  *int   `json:"index,omitempty"` // nil switches to the parent frame
}

// WindowSwitchCommand switches focus to the window at the given index
func WindowSwitchCommand(req WindowSwitchRequest) *CommandResponse {
	if req.Index < 0 {
		return NewErrorResponse(fmt.Errorf("window index must be non-negative, got %d", req.Index))
	}

	p, err := FindPage(req.Remote)
	if err != nil {
		return NewErrorResponse(err)
	}

	if err := p.SwitchToWindow(req.Index); err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(nil)
}

// WindowSizeCommand resizes or maximizes the current window
func WindowSizeCommand(req WindowSizeRequest) *CommandResponse {
	p, err := FindPage(req.Remote)
	if err != nil {
		return NewErrorResponse(err)
	}

	if err := p.SetWindowSize(req.Width, req.Height); err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(nil)
}

// FrameCommand switches to the frame at the given index, or to the parent
// frame when no index is given
func FrameCommand(req FrameRequest) *CommandResponse {
	p, err := FindPage(req.Remote)
	if err != nil {
		return NewErrorResponse(err)
	}

	if req.Index == nil {
		err = p.SwitchToParentFrame()
	} else {
		err = p.SwitchToFrame(*req.Index)
	}
	if err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(nil)
}
