package cli

import (
	"github.com/spf13/cobra"

	"github.com/rrosajp/poium/commands"
)

var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Inspect and switch mobile automation contexts",
	Long:  `Shows the current context and the available ones, or switches between the native app, WebView and Flutter layers.`,
}

var contextGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current and available contexts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(commands.ContextGetCommand(commands.ContextRequest{Remote: remoteAddr}))
	},
}

var contextSetCmd = &cobra.Command{
	Use:   "set [native|webview|flutter]",
	Short: "Switch to the given context",
	Long:  `Switches to the native app, a WebView, or the Flutter context. For webview, --name pins an explicit context; without it the first available WebView is used.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(commands.ContextSetCommand(commands.ContextRequest{
			Remote: remoteAddr,
			Target: args[0],
			Name:   contextName,
		}))
	},
}

func init() {
	rootCmd.AddCommand(contextCmd)

	contextCmd.AddCommand(contextGetCmd)
	contextCmd.AddCommand(contextSetCmd)

	contextSetCmd.Flags().StringVar(&contextName, "name", "", "explicit WebView context name")
}
