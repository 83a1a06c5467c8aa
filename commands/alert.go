package commands

import (
	"fmt"
)

// AlertRequest represents the parameters for alert commands
type AlertRequest struct {
	Remote string `json:"remote,omitempty"`
	Action string `json:"action"` // "accept", "dismiss", or "text"
}

// AlertResponse carries alert state for the "text" action
type AlertResponse struct {
	Present bool   `json:"present"`
	Text    string `json:"text,omitempty"`
}

// AlertCommand accepts or dismisses the open alert, or reads its text
func AlertCommand(req AlertRequest) *CommandResponse {
	p, err := FindPage(req.Remote)
	if err != nil {
		return NewErrorResponse(err)
	}

	switch req.Action {
	case "accept":
		if err := p.AcceptAlert(); err != nil {
			return NewErrorResponse(err)
		}
		return NewSuccessResponse(nil)

	case "dismiss":
		if err := p.DismissAlert(); err != nil {
			return NewErrorResponse(err)
		}
		return NewSuccessResponse(nil)

	case "text":
		text, err := p.AlertText()
		if err != nil {
			// no alert is a state, not a failure
			return NewSuccessResponse(AlertResponse{Present: false})
		}
		return NewSuccessResponse(AlertResponse{Present: true, Text: text})

	default:
		return NewErrorResponse(fmt.Errorf("invalid alert action '%s', must be 'accept', 'dismiss' or 'text'", req.Action))
	}
}
