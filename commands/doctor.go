package commands

import (
	"fmt"

	"github.com/rrosajp/poium/driver"
)

// StatusRequest represents the parameters for a driver status check
type StatusRequest struct {
	Remote string `json:"remote,omitempty"`
}

// StatusResponse reports the health of the remote driver endpoint
type StatusResponse struct {
	Address string      `json:"address"`
	Ready   bool        `json:"ready"`
	Details interface{} `json:"details,omitempty"`
}

// StatusCommand checks whether the remote driver endpoint is reachable and
// ready to accept new sessions
func StatusCommand(req StatusRequest) *CommandResponse {
	cfg := defaultRemote
	if req.Remote != "" {
		cfg.Address = req.Remote
	}
	if cfg.Address == "" {
		return NewErrorResponse(fmt.Errorf("no remote driver address configured"))
	}

	client := driver.NewClient(cfg.Address)
	if cfg.Username != "" {
		client.SetBasicAuth(cfg.Username, cfg.Password)
	}

	status, err := client.GetStatus()
	if err != nil {
		return NewSuccessResponse(StatusResponse{Address: cfg.Address, Ready: false})
	}

	return NewSuccessResponse(StatusResponse{
		Address: cfg.Address,
		Ready:   true,
		Details: status["value"],
	})
}
