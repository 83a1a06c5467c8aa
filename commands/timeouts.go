package commands

import (
	"fmt"
	"time"
)

// TimeoutsRequest represents the parameters for setting session timeouts.
// All values are in seconds; zero values are left untouched.
type TimeoutsRequest struct {
	Remote   string `json:"remote,omitempty"`
	Implicit int    `json:"implicit,omitempty"`
	Script   int    `json:"script,omitempty"`
	PageLoad int    `json:"pageLoad,omitempty"`
}

// TimeoutsCommand applies the requested session timeouts
func TimeoutsCommand(req TimeoutsRequest) *CommandResponse {
	if req.Implicit == 0 && req.Script == 0 && req.PageLoad == 0 {
		return NewErrorResponse(fmt.Errorf("at least one timeout is required"))
	}

	p, err := FindPage(req.Remote)
	if err != nil {
		return NewErrorResponse(err)
	}

	if req.Implicit > 0 {
		if err := p.SetImplicitWait(time.Duration(req.Implicit) * time.Second); err != nil {
			return NewErrorResponse(err)
		}
	}
	if req.Script > 0 {
		if err := p.SetScriptTimeout(time.Duration(req.Script) * time.Second); err != nil {
			return NewErrorResponse(err)
		}
	}
	if req.PageLoad > 0 {
		if err := p.SetPageLoadTimeout(time.Duration(req.PageLoad) * time.Second); err != nil {
			return NewErrorResponse(err)
		}
	}

	return NewSuccessResponse(nil)
}
