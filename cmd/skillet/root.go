// cmd/skillet/root.go
package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	hostFlag       string
	usernameFlag   string
	passwordFlag   string
	portFlag       string
	configFileFlag string
)

var rootCmd = &cobra.Command{
	Use:   "skillet",
	Short: "Render and preview configuration skillets against network appliances",
	Long:  "Skillet loads bundles of parameterized configuration snippets and resolves them against a live device session or an offline configuration snapshot.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Credentials may live in a .env next to the skillet; missing file is fine
		godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&hostFlag, "host", "", "appliance hostname for online mode")
	rootCmd.PersistentFlags().StringVar(&usernameFlag, "username", "", "API username for online mode")
	rootCmd.PersistentFlags().StringVar(&passwordFlag, "password", "", "API password for online mode")
	rootCmd.PersistentFlags().StringVar(&portFlag, "port", "", "API port (default 443)")
	rootCmd.PersistentFlags().StringVar(&configFileFlag, "config-file", "", "configuration snapshot for offline mode")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print skillet version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("skillet", version)
	},
}
