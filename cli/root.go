package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rrosajp/poium/commands"
	"github.com/rrosajp/poium/utils"
)

const version = "dev"

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "poium",
	Short: "A page-object helper for remote WebDriver/Appium sessions",
	Long:  `Drive browser and mobile automation sessions: run scripts, manage cookies, switch contexts, and send gestures through a remote WebDriver endpoint.`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func initConfig() {
	utils.SetVerbose(verbose)

	cfg, err := utils.LoadConfig(utils.ConfigPath())
	if err != nil {
		utils.Warn("ignoring config file: %v", err)
		cfg = utils.DefaultConfig()
	}

	remote := commands.RemoteConfig{
		Address:  cfg.RemoteAddress,
		Platform: cfg.Platform,
	}
	if remoteAddr != "" {
		remote.Address = remoteAddr
	}
	if platform != "" {
		remote.Platform = platform
	}

	if username, password, err := loadCredentials(); err == nil {
		remote.Username = username
		remote.Password = password
	}

	commands.SetDefaultRemote(remote)
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&remoteAddr, "remote", "r", "", "remote driver address (e.g. 'localhost:4723')")
	rootCmd.PersistentFlags().StringVar(&platform, "platform", "", "platformName capability for new sessions")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// printJson is a helper function to print JSON responses
func printJson(data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(string(jsonData))
}

// run prints the command response and converts failures into exit errors
func run(response *commands.CommandResponse) error {
	printJson(response)
	if response.Status == "error" {
		return fmt.Errorf("%s", response.Error)
	}
	return nil
}
