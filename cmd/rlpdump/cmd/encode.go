package cmd

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/BitcoinHQ/ethereum/rlp"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <item>...",
	Short: "Encodes integers, strings, and lists given as arguments.",
	Long: `Builds an encoded value from command-line literals. Decimal and 0x-prefixed
hex tokens encode as integers, "[" and "]" tokens open and close lists, and
everything else encodes as a string. Multiple top-level items are wrapped in
a list. Prints the encoding as hex.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := parseItems(args)
		if err != nil {
			return err
		}
		var encoded []byte
		if len(items) == 1 {
			encoded, err = rlp.Encode(items[0])
		} else {
			encoded, err = rlp.EncodeList(items...)
		}
		if err != nil {
			return err
		}
		fmt.Printf("%x\n", encoded)
		return nil
	},
}

func parseItems(args []string) ([]interface{}, error) {
	items := []interface{}{}
	var stack [][]interface{}
	for _, arg := range args {
		switch arg {
		case "[":
			stack = append(stack, items)
			items = []interface{}{}
		case "]":
			if len(stack) == 0 {
				return nil, errors.New(`unbalanced "]"`)
			}
			closed := items
			items = append(stack[len(stack)-1], closed)
			stack = stack[:len(stack)-1]
		default:
			item, err := parseLiteral(arg)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	}
	if len(stack) != 0 {
		return nil, errors.New(`unclosed "["`)
	}
	return items, nil
}

func parseLiteral(tok string) (interface{}, error) {
	if strings.HasPrefix(tok, "0x") {
		v, ok := new(big.Int).SetString(tok[2:], 16)
		if !ok {
			return nil, errors.Errorf("invalid hex integer %q", tok)
		}
		return v, nil
	}
	if isDecimal(tok) {
		v, _ := new(big.Int).SetString(tok, 10)
		return v, nil
	}
	if len(tok) >= 2 && strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`) {
		return tok[1 : len(tok)-1], nil
	}
	return tok, nil
}

func isDecimal(tok string) bool {
	if tok == "" {
		return false
	}
	for _, c := range tok {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
