package cli

import (
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// ReadEncodedInput resolves a command-line argument into raw encoded bytes.
// In hex mode the argument is decoded as a hex string, with or without a
// 0x prefix. Otherwise the argument names a file to read, with "-" or an
// empty argument selecting stdin.
func ReadEncodedInput(arg string, hexMode bool) ([]byte, error) {
	if hexMode {
		data, err := hex.DecodeString(strings.TrimPrefix(arg, "0x"))
		if err != nil {
			return nil, errors.Wrap(err, "error decoding hex input")
		}
		return data, nil
	}
	if arg == "" || arg == "-" {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			return nil, errors.New("no input: pass a file or pipe data on stdin")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(err, "error reading stdin")
		}
		return data, nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, errors.Wrap(err, "error reading input file")
	}
	return data, nil
}
