package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rrosajp/poium/commands"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Window and frame operations",
}

var windowSwitchCmd = &cobra.Command{
	Use:   "switch [index]",
	Short: "Switch focus to the window at the given index",
	Long:  `Switches focus to an open window by its position in the handle list: 0 is the first window, 1 a newly opened one.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return run(commands.NewErrorResponse(err))
		}

		return run(commands.WindowSwitchCommand(commands.WindowSwitchRequest{
			Remote: remoteAddr,
			Index:  index,
		}))
	},
}

var windowSizeCmd = &cobra.Command{
	Use:   "size [width,height]",
	Short: "Resize the current window, or maximize it with 0,0",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		width, height, err := parseCoordinates(args[0])
		if err != nil {
			return run(commands.NewErrorResponse(err))
		}

		return run(commands.WindowSizeCommand(commands.WindowSizeRequest{
			Remote: remoteAddr,
			Width:  width,
			Height: height,
		}))
	},
}

var frameCmd = &cobra.Command{
	Use:   "frame [index]",
	Short: "Switch to a frame by index, or to the parent frame",
	Long:  `Switches command focus to the frame at the given index. Without an index the focus moves back to the parent context.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := commands.FrameRequest{Remote: remoteAddr}
		if len(args) == 1 {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return run(commands.NewErrorResponse(err))
			}
			req.Index = &index
		}

		return run(commands.FrameCommand(req))
	},
}

var timeoutsCmd = &cobra.Command{
	Use:   "timeouts",
	Short: "Set session timeouts",
	Long:  `Sets the implicit wait, script and page-load timeouts of the session, in seconds. Only the flags you pass are applied.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(commands.TimeoutsCommand(commands.TimeoutsRequest{
			Remote:   remoteAddr,
			Implicit: timeoutImplicit,
			Script:   timeoutScript,
			PageLoad: timeoutPageLoad,
		}))
	},
}

func init() {
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(frameCmd)
	rootCmd.AddCommand(timeoutsCmd)

	windowCmd.AddCommand(windowSwitchCmd)
	windowCmd.AddCommand(windowSizeCmd)

	timeoutsCmd.Flags().IntVar(&timeoutImplicit, "implicit", 0, "implicit wait in seconds")
	timeoutsCmd.Flags().IntVar(&timeoutScript, "script", 0, "async script timeout in seconds")
	timeoutsCmd.Flags().IntVar(&timeoutPageLoad, "page-load", 0, "page load timeout in seconds")
}
