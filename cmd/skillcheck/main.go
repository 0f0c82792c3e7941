package main

import (
	"fmt"
	"os"

	"github.com/smy-101/skillcheck/pkg/cmd"
	"github.com/spf13/viper"
)

func main() {
	initViper()
	cmd.Execute()
}

// initViper loads optional settings from .skillcheck.yaml in the working
// directory or the home directory, then from SKILLCHECK_* environment variables.
// Nothing is written to disk.
func initViper() {
	viper.SetConfigName(".skillcheck")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}

	viper.SetEnvPrefix("skillcheck")
	viper.AutomaticEnv()
	// GitHub Actions sets GITHUB_ACTIONS=true on every runner.
	if err := viper.BindEnv("github", "SKILLCHECK_GITHUB", "GITHUB_ACTIONS"); err != nil {
		fmt.Printf("Error binding environment: %v\n", err)
		os.Exit(1)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("Error reading config file: %v\n", err)
			os.Exit(1)
		}
	}
}
