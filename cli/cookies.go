package cli

import (
	"github.com/spf13/cobra"

	"github.com/rrosajp/poium/commands"
	"github.com/rrosajp/poium/driver"
)

var cookiesCmd = &cobra.Command{
	Use:   "cookies",
	Short: "Manage cookies of the current session",
}

var cookiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cookies visible in the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(commands.CookiesListCommand(commands.CookieRequest{Remote: remoteAddr}))
	},
}

var cookiesGetCmd = &cobra.Command{
	Use:   "get [name]",
	Short: "Print the cookie with the given name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(commands.CookieGetCommand(commands.CookieRequest{
			Remote: remoteAddr,
			Name:   args[0],
		}))
	},
}

var cookiesAddCmd = &cobra.Command{
	Use:   "add [name] [value]",
	Short: "Add a cookie to the current session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(commands.CookieAddCommand(commands.CookieAddRequest{
			Remote: remoteAddr,
			Cookies: []driver.Cookie{
				{
					Name:   args[0],
					Value:  args[1],
					Path:   cookiePath,
					Domain: cookieDomain,
					Secure: cookieSecure,
				},
			},
		}))
	},
}

var cookiesDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete the named cookie, or all cookies when no name is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := commands.CookieRequest{Remote: remoteAddr}
		if len(args) == 1 {
			req.Name = args[0]
		}
		return run(commands.CookieDeleteCommand(req))
	},
}

func init() {
	rootCmd.AddCommand(cookiesCmd)

	cookiesCmd.AddCommand(cookiesListCmd)
	cookiesCmd.AddCommand(cookiesGetCmd)
	cookiesCmd.AddCommand(cookiesAddCmd)
	cookiesCmd.AddCommand(cookiesDeleteCmd)

	cookiesAddCmd.Flags().StringVar(&cookiePath, "path", "", "cookie path")
	cookiesAddCmd.Flags().StringVar(&cookieDomain, "domain", "", "cookie domain")
	cookiesAddCmd.Flags().BoolVar(&cookieSecure, "secure", false, "mark the cookie secure")
}
