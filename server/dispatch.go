package server

import (
	"encoding/json"
	"fmt"

	"github.com/rrosajp/poium/commands"
)

// HandlerFunc is the signature for JSON-RPC method handlers
type HandlerFunc func(params json.RawMessage) (interface{}, error)

// GetMethodRegistry returns a map of method names to handler functions.
// This is used by both the HTTP server and the WebSocket endpoint.
func GetMethodRegistry() map[string]HandlerFunc {
	return map[string]HandlerFunc{
		"script_execute": handleScript,
		"window_scroll":  handleScroll,
		"page_info":      handlePageInfo,
		"url":            handleURL,
		"cookies_list":   handleCookiesList,
		"cookie_get":     handleCookieGet,
		"cookies_add":    handleCookiesAdd,
		"cookie_delete":  handleCookieDelete,
		"context_get":    handleContextGet,
		"context_set":    handleContextSet,
		"io_tap":         handleIoTap,
		"io_swipe":       handleIoSwipe,
		"io_text":        handleIoText,
		"io_button":      handleIoButton,
		"screenshot":     handleScreenshot,
		"window_switch":  handleWindowSwitch,
		"window_size":    handleWindowSize,
		"frame":          handleFrame,
		"alert":          handleAlert,
		"timeouts_set":   handleTimeouts,
		"status":         handleStatus,
	}
}

// Execute dispatches a method call using the registry.
// This is the entry point for embedded clients.
func Execute(method string, params json.RawMessage) (interface{}, error) {
	registry := GetMethodRegistry()

	handler, exists := registry[method]
	if !exists {
		return nil, fmt.Errorf("method not found: %s", method)
	}

	return handler(params)
}

// commandResult converts a CommandResponse into a JSON-RPC result or error
func commandResult(response *commands.CommandResponse) (interface{}, error) {
	if response.Status == "error" {
		return nil, fmt.Errorf("%s", response.Error)
	}
	if response.Data == nil {
		return okResponse, nil
	}
	return response.Data, nil
}

func decodeParams(params json.RawMessage, out interface{}) error {
	if len(params) == 0 {
		return nil
	}
	if err := json.Unmarshal(params, out); err != nil {
		return fmt.Errorf("invalid parameters: %v", err)
	}
	return nil
}

func handleScript(params json.RawMessage) (interface{}, error) {
	var req commands.ScriptRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return commandResult(commands.ScriptCommand(req))
}

func handleScroll(params json.RawMessage) (interface{}, error) {
	var req commands.ScrollRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return commandResult(commands.ScrollCommand(req))
}

func handlePageInfo(params json.RawMessage) (interface{}, error) {
	var req struct {
		Remote string `json:"remote,omitempty"`
	}
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return commandResult(commands.PageInfoCommand(req.Remote))
}

func handleURL(params json.RawMessage) (interface{}, error) {
	var req commands.URLRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return commandResult(commands.OpenURLCommand(req))
}

func handleCookiesList(params json.RawMessage) (interface{}, error) {
	var req commands.CookieRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return commandResult(commands.CookiesListCommand(req))
}

func handleCookieGet(params json.RawMessage) (interface{}, error) {
	var req commands.CookieRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return commandResult(commands.CookieGetCommand(req))
}

func handleCookiesAdd(params json.RawMessage) (interface{}, error) {
	var req commands.CookieAddRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return commandResult(commands.CookieAddCommand(req))
}

func handleCookieDelete(params json.RawMessage) (interface{}, error) {
	var req commands.CookieRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return commandResult(commands.CookieDeleteCommand(req))
}

func handleContextGet(params json.RawMessage) (interface{}, error) {
	var req commands.ContextRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return commandResult(commands.ContextGetCommand(req))
}

func handleContextSet(params json.RawMessage) (interface{}, error) {
	var req commands.ContextRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return commandResult(commands.ContextSetCommand(req))
}

func handleIoTap(params json.RawMessage) (interface{}, error) {
	var req commands.TapRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return commandResult(commands.TapCommand(req))
}

func handleIoSwipe(params json.RawMessage) (interface{}, error) {
	var req commands.SwipeRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return commandResult(commands.SwipeCommand(req))
}

func handleIoText(params json.RawMessage) (interface{}, error) {
	var req commands.TextRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return commandResult(commands.TextCommand(req))
}

func handleIoButton(params json.RawMessage) (interface{}, error) {
	var req commands.ButtonRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return commandResult(commands.ButtonCommand(req))
}

func handleScreenshot(params json.RawMessage) (interface{}, error) {
	var req commands.ScreenshotRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	// the server never writes to its own disk; always return base64 data
	req.OutputPath = "-"
	return commandResult(commands.ScreenshotCommand(req))
}

func handleWindowSwitch(params json.RawMessage) (interface{}, error) {
	var req commands.WindowSwitchRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return commandResult(commands.WindowSwitchCommand(req))
}

func handleWindowSize(params json.RawMessage) (interface{}, error) {
	var req commands.WindowSizeRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return commandResult(commands.WindowSizeCommand(req))
}

func handleFrame(params json.RawMessage) (interface{}, error) {
	var req commands.FrameRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return commandResult(commands.FrameCommand(req))
}

func handleAlert(params json.RawMessage) (interface{}, error) {
	var req commands.AlertRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return commandResult(commands.AlertCommand(req))
}

func handleStatus(params json.RawMessage) (interface{}, error) {
	var req commands.StatusRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return commandResult(commands.StatusCommand(req))
}

func handleTimeouts(params json.RawMessage) (interface{}, error) {
	var req commands.TimeoutsRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return commandResult(commands.TimeoutsCommand(req))
}
