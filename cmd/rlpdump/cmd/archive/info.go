package archive

import (
	"os"
	"strconv"

	"github.com/BitcoinHQ/ethereum/crypto"
	"github.com/BitcoinHQ/ethereum/store"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <digest>",
	Short: "Returns metadata about an archived record.",
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
		res, err := store.GetRecordInfo(db, digest)
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Append([]string{
			"Digest", res.Digest.String(),
		})
		table.Append([]string{
			"Size", strconv.Itoa(res.Size),
		})
		table.Append([]string{
			"Kind", res.Kind,
		})
		table.Append([]string{
			"Item Count", strconv.Itoa(res.ItemCount),
		})
		table.Append([]string{
			"String Size", strconv.Itoa(res.StringSize),
		})
		table.Append([]string{
			"Received At", res.ReceivedAt.String(),
		})
		table.Render()
		return nil
	},
}

func init() {
	cmd.AddCommand(infoCmd)
}
