package cmd

import (
	"fmt"
	"os"

	"github.com/BitcoinHQ/ethereum/cli"
	"github.com/BitcoinHQ/ethereum/cmd/rlpdump/cmd/archive"
	"github.com/BitcoinHQ/ethereum/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rlpdump",
	Short: "Swiss-army knife for the recursive length prefix wire format.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadConfig reads the config file from the home directory. Commands that
// work without an initialized home directory fall back to the defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	homeDir := cli.GetHomeDir(cmd)
	exists, err := config.HomeDirExists(homeDir)
	if err != nil {
		return nil, err
	}
	if !exists {
		cfg := config.DefaultConfig
		return &cfg, nil
	}
	return config.ReadConfigFile(homeDir)
}

func init() {
	rootCmd.PersistentFlags().String(cli.FlagHome, "~/.rlpdump", "Home directory for rlpdump's config and record archive.")
	archive.AddCmd(rootCmd)
}
