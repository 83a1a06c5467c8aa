package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rrosajp/poium/commands"
)

var ioCmd = &cobra.Command{
	Use:   "io",
	Short: "Input operations against the remote session",
	Long:  `Send taps, swipes, text and button presses to the remote session.`,
}

var ioTapCmd = &cobra.Command{
	Use:   "tap [x,y]",
	Short: "Tap the screen at the given coordinates",
	Long:  `Sends a tap to the remote session at the given x,y coordinates. Coordinates should be provided as a single string "x,y".`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, y, err := parseCoordinates(args[0])
		if err != nil {
			return run(commands.NewErrorResponse(err))
		}

		return run(commands.TapCommand(commands.TapRequest{
			Remote: remoteAddr,
			X:      x,
			Y:      y,
		}))
	},
}

var ioSwipeCmd = &cobra.Command{
	Use:   "swipe [x1,y1] [x2,y2]",
	Short: "Swipe from one point to another",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x1, y1, err := parseCoordinates(args[0])
		if err != nil {
			return run(commands.NewErrorResponse(err))
		}
		x2, y2, err := parseCoordinates(args[1])
		if err != nil {
			return run(commands.NewErrorResponse(err))
		}

		return run(commands.SwipeCommand(commands.SwipeRequest{
			Remote:     remoteAddr,
			X1:         x1,
			Y1:         y1,
			X2:         x2,
			Y2:         y2,
			DurationMs: swipeDurationMs,
		}))
	},
}

var ioTextCmd = &cobra.Command{
	Use:   "text [text]",
	Short: "Type text through key events",
	Long:  `Types text into the focused element through per-character key events. Only letters, digits and spaces are supported.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(commands.TextCommand(commands.TextRequest{
			Remote:  remoteAddr,
			Text:    args[0],
			Capital: textCapital,
		}))
	},
}

var ioButtonCmd = &cobra.Command{
	Use:   "button [button_name]",
	Short: "Press a device button (HOME or BACK)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(commands.ButtonCommand(commands.ButtonRequest{
			Remote: remoteAddr,
			Button: args[0],
		}))
	},
}

// parseCoordinates splits an "x,y" argument into its two integers
func parseCoordinates(coordsStr string) (int, int, error) {
	parts := strings.Split(coordsStr, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid coordinate format. Expected 'x,y', got '%s'", coordsStr)
	}

	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil {
		return 0, 0, fmt.Errorf("invalid coordinate values. x and y must be integers. Got x='%s', y='%s'", parts[0], parts[1])
	}

	return x, y, nil
}

func init() {
	rootCmd.AddCommand(ioCmd)

	ioCmd.AddCommand(ioTapCmd)
	ioCmd.AddCommand(ioSwipeCmd)
	ioCmd.AddCommand(ioTextCmd)
	ioCmd.AddCommand(ioButtonCmd)

	ioSwipeCmd.Flags().IntVar(&swipeDurationMs, "duration", 0, "swipe duration in milliseconds")
	ioTextCmd.Flags().BoolVar(&textCapital, "capital", false, "type with shift held, producing uppercase")
}
