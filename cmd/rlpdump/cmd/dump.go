package cmd

import (
	"fmt"

	"github.com/BitcoinHQ/ethereum/cli"
	"github.com/BitcoinHQ/ethereum/rlp"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var dumpHex bool

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Pretty-prints an encoded value.",
	Long: `Decodes the input and prints it as a readable tree. The input is a file,
or stdin when the argument is "-" or omitted. With --hex the argument is
interpreted as a hex string instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var arg string
		if len(args) == 1 {
			arg = args[0]
		}
		encoded, err := cli.ReadEncodedInput(arg, dumpHex)
		if err != nil {
			return err
		}
		node := rlp.NewNode(encoded)
		if err := node.Validate(); err != nil {
			return errors.Wrap(err, "error validating input")
		}
		fmt.Println(node.String())
		return nil
	},
}

func init() {
	dumpCmd.Flags().BoolVar(&dumpHex, "hex", false, "Interpret the argument as a hex string.")
	rootCmd.AddCommand(dumpCmd)
}
