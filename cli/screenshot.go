package cli

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rrosajp/poium/commands"
)

var screenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Take a screenshot of the current window",
	Long:  `Captures the current window as a PNG. By default the file is named after the current unix timestamp; use --output to pick a path, or "-" to write the raw image to stdout.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		response := commands.ScreenshotCommand(commands.ScreenshotRequest{
			Remote:     remoteAddr,
			OutputPath: screenshotOutputPath,
		})

		// Handle stdout output for binary data
		if screenshotOutputPath == "-" && response.Status == "ok" {
			if screenshotResp, ok := response.Data.(commands.ScreenshotResponse); ok && screenshotResp.Data != "" {
				imageBytes, err := base64.StdEncoding.DecodeString(screenshotResp.Data)
				if err != nil {
					return fmt.Errorf("failed to decode image data: %v", err)
				}
				if _, err := os.Stdout.Write(imageBytes); err != nil {
					return fmt.Errorf("failed to write to stdout: %v", err)
				}
				return nil
			}
		}

		return run(response)
	},
}

func init() {
	rootCmd.AddCommand(screenshotCmd)

	screenshotCmd.Flags().StringVarP(&screenshotOutputPath, "output", "o", "", "output file path, or '-' for stdout")
}
