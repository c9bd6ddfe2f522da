package cmd

import (
	"fmt"
	"os"

	"github.com/BitcoinHQ/ethereum/rlp"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validates encoded files and reports per-file results.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return errors.Wrap(err, "error reading config file")
		}

		results := make([]error, len(args))
		var eg errgroup.Group
		// A config file without a [check] section decodes to zero
		// workers, and errgroup treats SetLimit(0) as a zero-capacity
		// pool that blocks the first Go call.
		if cfg.Check.Workers > 0 {
			eg.SetLimit(cfg.Check.Workers)
		}
		for i, path := range args {
			i, path := i, path
			eg.Go(func() error {
				results[i] = checkFile(path)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}

		var failed int
		for i, path := range args {
			if results[i] == nil {
				fmt.Printf("%s: ok\n", path)
				continue
			}
			failed++
			fmt.Printf("%s: %s\n", path, results[i])
		}
		if failed > 0 {
			return errors.Errorf("%d of %d files failed validation", failed, len(args))
		}
		return nil
	},
}

func checkFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return rlp.NewNode(data).Validate()
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
