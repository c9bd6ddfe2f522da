package archive

import (
	"github.com/BitcoinHQ/ethereum/cli"
	"github.com/BitcoinHQ/ethereum/config"
	"github.com/BitcoinHQ/ethereum/log"
	"github.com/BitcoinHQ/ethereum/store"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/syndtr/goleveldb/leveldb"
)

var (
	homeDir string
	cfg     *config.Config
)

var cmd = &cobra.Command{
	Use:   "archive",
	Short: "Manages the local record archive.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		homeDir = cli.GetHomeDir(cmd)
		if err := config.EnsureHomeDir(homeDir); err != nil {
			return errors.Wrap(err, "error ensuring home directory")
		}
		c, err := config.ReadConfigFile(homeDir)
		if err != nil {
			return errors.Wrap(err, "error reading config file")
		}
		logLevel, err := log.NewLevel(c.LogLevel)
		if err != nil {
			return errors.Wrap(err, "error parsing log level")
		}
		log.SetLevel(logLevel)
		cfg = c
		return nil
	},
}

func AddCmd(root *cobra.Command) {
	root.AddCommand(cmd)
}

func openDB() (*leveldb.DB, error) {
	db, err := store.Open(config.ExpandDBPath(homeDir))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open store")
	}
	return db, nil
}

func init() {
	cmd.PersistentFlags().String(cli.FlagFormat, "text", "Output format")
}
