package commands

import (
	"fmt"
	"strings"
	"time"
)

// TapRequest represents the parameters for a tap command
type TapRequest struct {
	Remote string `json:"remote,omitempty"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

// SwipeRequest represents the parameters for a swipe command
type SwipeRequest struct {
	Remote     string `json:"remote,omitempty"`
	X1         int    `json:"x1"`
	Y1         int    `json:"y1"`
	X2         int    `json:"x2"`
	Y2         int    `json:"y2"`
	DurationMs int    `json:"durationMs,omitempty"`
}

// TextRequest represents the parameters for a text input command
type TextRequest struct {
	Remote  string `json:"remote,omitempty"`
	Text    string `json:"text"`
	Capital bool   `json:"capital,omitempty"`
}

// ButtonRequest represents the parameters for a button press command
type ButtonRequest struct {
	Remote string `json:"remote,omitempty"`
	Button string `json:"button"`
}

// TapCommand performs a tap at the given screen coordinates
func TapCommand(req TapRequest) *CommandResponse {
	if req.X < 0 || req.Y < 0 {
		return NewErrorResponse(fmt.Errorf("x and y coordinates must be non-negative, got x=%d, y=%d", req.X, req.Y))
	}

	p, err := FindPage(req.Remote)
	if err != nil {
		return NewErrorResponse(err)
	}

	if err := p.Tap(req.X, req.Y); err != nil {
		return NewErrorResponse(fmt.Errorf("failed to tap: %v", err))
	}

	return NewSuccessResponse(nil)
}

// SwipeCommand performs a swipe between two points
func SwipeCommand(req SwipeRequest) *CommandResponse {
	if req.X1 < 0 || req.Y1 < 0 || req.X2 < 0 || req.Y2 < 0 {
		return NewErrorResponse(fmt.Errorf("coordinates must be non-negative"))
	}

	p, err := FindPage(req.Remote)
	if err != nil {
		return NewErrorResponse(err)
	}

	duration := time.Duration(req.DurationMs) * time.Millisecond
	if err := p.Swipe(req.X1, req.Y1, req.X2, req.Y2, duration); err != nil {
		return NewErrorResponse(fmt.Errorf("failed to swipe: %v", err))
	}

	return NewSuccessResponse(nil)
}

// TextCommand types text through key events
func TextCommand(req TextRequest) *CommandResponse {
	if req.Text == "" {
		return NewErrorResponse(fmt.Errorf("text is required"))
	}

	p, err := FindPage(req.Remote)
	if err != nil {
		return NewErrorResponse(err)
	}

	if req.Capital {
		err = p.KeyTextCapital(req.Text)
	} else {
		err = p.KeyText(req.Text)
	}
	if err != nil {
		return NewErrorResponse(fmt.Errorf("failed to send text: %v", err))
	}

	return NewSuccessResponse(nil)
}

// ButtonCommand presses a device button. Button names are case-insensitive.
func ButtonCommand(req ButtonRequest) *CommandResponse {
	p, err := FindPage(req.Remote)
	if err != nil {
		return NewErrorResponse(err)
	}

	switch strings.ToUpper(req.Button) {
	case "HOME":
		err = p.Home()
	case "BACK":
		err = p.Back()
	default:
		return NewErrorResponse(fmt.Errorf("unsupported button: %s", req.Button))
	}
	if err != nil {
		return NewErrorResponse(fmt.Errorf("failed to press button: %v", err))
	}

	return NewSuccessResponse(nil)
}
