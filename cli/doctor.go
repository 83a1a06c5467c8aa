package cli

import (
	"github.com/spf13/cobra"

	"github.com/rrosajp/poium/commands"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check connectivity to the remote driver",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(commands.StatusCommand(commands.StatusRequest{
			Remote: remoteAddr,
		}))
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
