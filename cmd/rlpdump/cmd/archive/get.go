package archive

import (
	"fmt"

	"github.com/BitcoinHQ/ethereum/crypto"
	"github.com/BitcoinHQ/ethereum/rlp"
	"github.com/BitcoinHQ/ethereum/store"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var getDump bool

var getCmd = &cobra.Command{
	Use:   "get <digest>",
	Short: "Fetches a record by digest and prints its encoding as hex.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		digest, err := crypto.NewHashFromHex(args[0])
		if err != nil {
			return errors.Wrap(err, "invalid digest")
		}
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		encoded, err := store.GetRecord(db, digest)
		if err != nil {
			return err
		}
		if cfg.Archive.VerifyReads && crypto.Blake2B256(encoded) != digest {
			return errors.Errorf("record %s failed digest verification", digest)
		}
		if getDump {
			fmt.Println(rlp.NewNode(encoded).String())
			return nil
		}
		fmt.Printf("%x\n", encoded)
		return nil
	},
}

func init() {
	getCmd.Flags().BoolVar(&getDump, "dump", false, "Pretty-print the record instead of printing hex.")
	cmd.AddCommand(getCmd)
}
