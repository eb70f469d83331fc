package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nullstride/doboz"
)

var (
	decompressForce   bool
	decompressVerbose bool
)

var decompressCmd = &cobra.Command{
	Use:   "decompress <in> <out>",
	Short: "Decompress a doboz container",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, out := args[0], args[1]

		if !decompressForce {
			if _, err := os.Stat(out); err == nil {
				return fmt.Errorf("%s already exists (use -f to overwrite)", out)
			}
		}

		source, err := os.ReadFile(in)
		if err != nil {
			return err
		}

		info, err := doboz.CompressionInfo(source)
		if err != nil {
			return err
		}

		if decompressVerbose {
			cmd.Printf("decompressing %s: version %d, %d -> %d bytes\n",
				in, info.Version, info.CompressedSize, info.UncompressedSize)
		}

		destination := make([]byte, info.UncompressedSize)
		if err := doboz.Decompress(source, destination); err != nil {
			return err
		}

		if err := os.WriteFile(out, destination, 0o644); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d -> %d bytes\n", out, len(source), len(destination))
		return nil
	},
}

func init() {
	decompressCmd.Flags().BoolVarP(&decompressForce, "force", "f", false, "overwrite the output file if it exists")
	decompressCmd.Flags().BoolVarP(&decompressVerbose, "verbose", "v", false, "print header details before decompressing")
	RootCmd.AddCommand(decompressCmd)
}
