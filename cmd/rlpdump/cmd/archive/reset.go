package archive

import (
	"fmt"

	"github.com/BitcoinHQ/ethereum/store"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipes the record archive directly on disk.",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		if err := store.TruncateRecordStore(db); err != nil {
			return errors.Wrap(err, "error truncating record store")
		}
		if err := db.Close(); err != nil {
			return errors.Wrap(err, "error closing DB")
		}
		fmt.Println("Record archive wiped.")
		return nil
	},
}

func init() {
	cmd.AddCommand(resetCmd)
}
