package driver

import (
	"fmt"

	"github.com/google/uuid"
)

// PointerAction is a single step in a W3C input action sequence. X and Y
// always serialize; 0 is a valid screen coordinate.
type PointerAction struct {
	Type     string `json:"type"`
	Duration int    `json:"duration,omitempty"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Button   int    `json:"button,omitempty"`
	Origin   string `json:"origin,omitempty"`
}

type PointerParameters struct {
	PointerType string `json:"pointerType"`
}

type Pointer struct {
	Type       string            `json:"type"`
	ID         string            `json:"id"`
	Parameters PointerParameters `json:"parameters"`
	Actions    []PointerAction   `json:"actions"`
}

type ActionsRequest struct {
	Actions []Pointer `json:"actions"`
}

// PerformActions dispatches a single-pointer action sequence. pointerType is
// "touch" for gestures and "mouse" for cursor movement.
func (c *Client) PerformActions(pointerType string, actions []PointerAction) error {
	return c.withSession(func(sessionID string) error {
		data := ActionsRequest{
			Actions: []Pointer{
				{
					Type: "pointer",
					ID:   uuid.NewString(),
					Parameters: PointerParameters{
						PointerType: pointerType,
					},
					Actions: actions,
				},
			},
		}

		_, err := c.PostEndpoint(fmt.Sprintf("session/%s/actions", sessionID), data)
		return err
	})
}

// ReleaseActions releases all held pointers and keys of the session
func (c *Client) ReleaseActions() error {
	return c.withSession(func(sessionID string) error {
		_, err := c.DeleteEndpoint(fmt.Sprintf("session/%s/actions", sessionID))
		return err
	})
}
