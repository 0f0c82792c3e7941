package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configKeys lists the settings shown by `skillcheck config`.
var configKeys = []string{"strict", "github", "summary", "verbose", "workers", "check_links", "link_timeout"}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		executeConfig(cmd.OutOrStdout())
	},
}

func executeConfig(out io.Writer) {
	file := viper.ConfigFileUsed()
	if file == "" {
		file = "(none)"
	}
	fmt.Fprintln(out, "config file:", file)
	for _, key := range configKeys {
		fmt.Fprintf(out, "%s: %v\n", key, viper.Get(key))
	}
}
