package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"
)

const keyringService = "poium"
const keyringUser = "remote-driver"

// loadCredentials reads stored remote driver credentials from the system
// keyring. Cloud grids authenticate sessions with basic auth.
func loadCredentials() (string, string, error) {
	stored, err := keyring.Get(keyringService, keyringUser)
	if err != nil {
		return "", "", err
	}

	parts := strings.SplitN(stored, ":", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("stored credentials are malformed")
	}

	return parts[0], parts[1], nil
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage credentials for the remote driver",
	Long:  `Stores the username and access key used to authenticate against a cloud grid in the system keyring.`,
}

var authSetCmd = &cobra.Command{
	Use:   "set [username] [access-key]",
	Short: "Store remote driver credentials in the system keyring",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]
		if strings.Contains(username, ":") {
			return fmt.Errorf("username must not contain ':'")
		}

		if err := keyring.Set(keyringService, keyringUser, username+":"+args[1]); err != nil {
			return fmt.Errorf("failed to store credentials: %v", err)
		}

		fmt.Println("Credentials stored")
		return nil
	},
}

var authClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove stored remote driver credentials",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := keyring.Delete(keyringService, keyringUser)
		if err == keyring.ErrNotFound {
			fmt.Println("No credentials stored")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to remove credentials: %v", err)
		}

		fmt.Println("Credentials removed")
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether remote driver credentials are stored",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _, err := loadCredentials()
		if err != nil {
			fmt.Println("No credentials stored")
			return nil
		}

		fmt.Printf("Credentials stored for user %s\n", username)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(authCmd)

	authCmd.AddCommand(authSetCmd)
	authCmd.AddCommand(authClearCmd)
	authCmd.AddCommand(authStatusCmd)
}
