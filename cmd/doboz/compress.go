package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nullstride/doboz"
)

var (
	compressForce   bool
	compressVerbose bool
)

var compressCmd = &cobra.Command{
	Use:   "compress <in> <out>",
	Short: "Compress a file into a doboz container",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, out := args[0], args[1]

		if !compressForce {
			if _, err := os.Stat(out); err == nil {
				return fmt.Errorf("%s already exists (use -f to overwrite)", out)
			}
		}

		source, err := os.ReadFile(in)
		if err != nil {
			return err
		}

		c := doboz.NewCompressor()
		defer c.Release()

		if compressVerbose {
			log, err := newLogger(true)
			if err != nil {
				return err
			}
			c.SetLogger(log)
		}

		destination := make([]byte, doboz.MaxCompressedSize(len(source)))
		n, err := c.Compress(source, destination)
		if err != nil {
			return err
		}

		if err := os.WriteFile(out, destination[:n], 0o644); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d -> %d bytes (%.1f%%)\n",
			out, len(source), n, ratio(len(source), n))
		return nil
	},
}

func ratio(uncompressed, compressed int) float64 {
	if uncompressed == 0 {
		return 0
	}
	return 100 * float64(compressed) / float64(uncompressed)
}

func init() {
	compressCmd.Flags().BoolVarP(&compressForce, "force", "f", false, "overwrite the output file if it exists")
	compressCmd.Flags().BoolVarP(&compressVerbose, "verbose", "v", false, "log dictionary rebase and stored-fallback events")
	RootCmd.AddCommand(compressCmd)
}
