package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "sysplash",
	Short: "System information splash with colored percentage bars",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	addShowFlags(rootCmd)
}

func initConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "get home dir:", err)
		return
	}

	configFile := filepath.Join(home, ".config", "sysplash", "config.yaml")
	viper.SetConfigFile(configFile)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return
		}
		if os.IsNotExist(err) {
			return
		}
		fmt.Fprintln(os.Stderr, "read config:", err)
	}
}
