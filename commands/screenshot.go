package commands

import (
	"encoding/base64"
	"fmt"
	"path/filepath"
)

// ScreenshotRequest represents the parameters for taking a screenshot
type ScreenshotRequest struct {
	Remote     string `json:"remote,omitempty"`
	OutputPath string `json:"outputPath,omitempty"` // file path, or empty for default naming
}

// ScreenshotResponse represents the response for a screenshot command
type ScreenshotResponse struct {
	Data     string `json:"data,omitempty"`     // base64 encoded PNG data
	FilePath string `json:"filePath,omitempty"` // path where the file was saved
}

// ScreenshotCommand captures the current window as a PNG. With OutputPath
// "-" the image is returned base64-encoded instead of written to disk.
func ScreenshotCommand(req ScreenshotRequest) *CommandResponse {
	p, err := FindPage(req.Remote)
	if err != nil {
		return NewErrorResponse(err)
	}

	if req.OutputPath == "-" {
		data, err := p.Driver().TakeScreenshot()
		if err != nil {
			return NewErrorResponse(fmt.Errorf("failed to take screenshot: %v", err))
		}
		return NewSuccessResponse(ScreenshotResponse{
			Data: base64.StdEncoding.EncodeToString(data),
		})
	}

	dir, filename := filepath.Split(req.OutputPath)
	path, err := p.Screenshot(dir, filename)
	if err != nil {
		return NewErrorResponse(fmt.Errorf("failed to take screenshot: %v", err))
	}

	return NewSuccessResponse(ScreenshotResponse{FilePath: path})
}
