package archive

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/BitcoinHQ/ethereum/cli"
	"github.com/BitcoinHQ/ethereum/crypto"
	"github.com/BitcoinHQ/ethereum/store"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <start?> <limit?>",
	Short: "Lists archived records in digest order.",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var start crypto.Hash
		if len(args) >= 1 {
			digest, err := crypto.NewHashFromHex(args[0])
			if err != nil {
				return errors.Wrap(err, "invalid start digest")
			}
			start = digest
		}
		lim := cfg.Archive.ListPageSize
		if len(args) == 2 {
			limit, err := strconv.ParseInt(args[1], 10, 32)
			if err != nil {
				return err
			}
			lim = int(limit)
		}
		format, _ := cmd.Flags().GetString(cli.FlagFormat)

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		stream, err := store.StreamRecordInfos(db, start)
		if err != nil {
			return err
		}
		defer stream.Close()

		var infos []*store.RecordInfo
		for len(infos) < lim {
			info, err := stream.Next()
			if err != nil {
				return err
			}
			if info == nil {
				break
			}
			infos = append(infos, info)
		}

		if format == "json" {
			encoder := json.NewEncoder(os.Stdout)
			for _, info := range infos {
				if err := encoder.Encode(info); err != nil {
					return err
				}
			}
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{
			"Digest",
			"Size",
			"Kind",
			"Received At",
		})
		for _, info := range infos {
			table.Append([]string{
				info.Digest.String(),
				strconv.Itoa(info.Size),
				info.Kind,
				info.ReceivedAt.String(),
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	cmd.AddCommand(listCmd)
}
