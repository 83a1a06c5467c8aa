package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/rrosajp/poium/commands"
)

var scriptCmd = &cobra.Command{
	Use:   "script [javascript]",
	Short: "Execute JavaScript in the current browsing context",
	Long:  `Runs a JavaScript snippet in the remote session and prints its return value. Extra arguments are available to the script as the "arguments" array; values that parse as JSON are passed typed, everything else as a string.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := commands.ScriptRequest{
			Remote: remoteAddr,
			Script: args[0],
		}
		for _, arg := range scriptArgs {
			var value interface{}
			if err := json.Unmarshal([]byte(arg), &value); err != nil {
				value = arg
			}
			req.Args = append(req.Args, value)
		}

		return run(commands.ScriptCommand(req))
	},
}

var scrollCmd = &cobra.Command{
	Use:   "scroll [width,height]",
	Short: "Scroll the window to the given offsets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, y, err := parseCoordinates(args[0])
		if err != nil {
			return run(commands.NewErrorResponse(err))
		}

		return run(commands.ScrollCommand(commands.ScrollRequest{
			Remote: remoteAddr,
			Width:  x,
			Height: y,
		}))
	},
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the current page title and URL",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(commands.PageInfoCommand(remoteAddr))
	},
}

func init() {
	rootCmd.AddCommand(scriptCmd)
	rootCmd.AddCommand(scrollCmd)
	rootCmd.AddCommand(infoCmd)

	scriptCmd.Flags().StringArrayVar(&scriptArgs, "arg", nil, "argument passed to the script, repeatable")
}
