package archive

import (
	"fmt"

	"github.com/BitcoinHQ/ethereum/cli"
	"github.com/BitcoinHQ/ethereum/crypto"
	"github.com/BitcoinHQ/ethereum/store"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/syndtr/goleveldb/leveldb"
)

var putHex bool

var putCmd = &cobra.Command{
	Use:   "put <file>",
	Short: "Stores an encoded record and prints its digest.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var arg string
		if len(args) == 1 {
			arg = args[0]
		}
		encoded, err := cli.ReadEncodedInput(arg, putHex)
		if err != nil {
			return err
		}
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		var digest crypto.Hash
		err = store.WithTx(db, func(tx *leveldb.Transaction) error {
			d, err := store.PutRecordTx(tx, encoded)
			if err != nil {
				return err
			}
			digest = d
			return nil
		})
		if err != nil {
			return errors.Wrap(err, "error storing record")
		}
		fmt.Println(digest)
		return nil
	},
}

func init() {
	putCmd.Flags().BoolVar(&putHex, "hex", false, "Interpret the argument as a hex string.")
	cmd.AddCommand(putCmd)
}
