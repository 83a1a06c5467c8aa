package cli

import (
	"github.com/spf13/cobra"

	"github.com/rrosajp/poium/commands"
)

var urlCmd = &cobra.Command{
	Use:   "url [url]",
	Short: "Navigate the current browsing context to a URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(commands.OpenURLCommand(commands.URLRequest{
			Remote: remoteAddr,
			URL:    args[0],
		}))
	},
}

var alertCmd = &cobra.Command{
	Use:   "alert [accept|dismiss|text]",
	Short: "Accept or dismiss the open alert, or read its text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(commands.AlertCommand(commands.AlertRequest{
			Remote: remoteAddr,
			Action: args[0],
		}))
	},
}

func init() {
	rootCmd.AddCommand(urlCmd)
	rootCmd.AddCommand(alertCmd)
}
