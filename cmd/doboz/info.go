package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nullstride/doboz"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Print a doboz container's header fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		info, err := doboz.CompressionInfo(source)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "version:           %d\n", info.Version)
		fmt.Fprintf(w, "uncompressed size: %d\n", info.UncompressedSize)
		fmt.Fprintf(w, "compressed size:   %d\n", info.CompressedSize)
		if info.UncompressedSize > 0 {
			fmt.Fprintf(w, "ratio:             %.1f%%\n",
				100*float64(info.CompressedSize)/float64(info.UncompressedSize))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(infoCmd)
}
