// Command doboz-bench times Compress/Decompress against synthetic and
// file-backed corpora and reports throughput and compression ratio. It is
// deliberately kept outside the doboz package: elapsed-time measurement is
// an external collaborator, never a dependency of the core algorithm.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nullstride/doboz"
	"github.com/nullstride/doboz/internal/bench"
)

const megabyte = 1024.0 * 1024.0

type corpus struct {
	name string
	data []byte
}

func syntheticCorpora(size int) []corpus {
	rng := bench.NewLCG(1)
	random := make([]byte, size)
	rng.Fill(random)

	return []corpus{
		{name: "repeating-pattern", data: bench.Repeating("abcabcabcabc", size)},
		{name: "pseudorandom", data: random},
		{name: "zeros", data: make([]byte, size)},
	}
}

func fileCorpora(paths []string) ([]corpus, error) {
	corpora := make([]corpus, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		corpora = append(corpora, corpus{name: p, data: data})
	}
	return corpora, nil
}

func runBenchmark(c corpus, iterations int) {
	dst := make([]byte, doboz.MaxCompressedSize(len(c.data)))
	out := make([]byte, len(c.data))

	comp := doboz.NewCompressor()
	defer comp.Release()

	var compressedSize int
	start := time.Now()
	for i := 0; i < iterations; i++ {
		n, err := comp.Compress(c.data, dst)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: compress failed: %v\n", c.name, err)
			return
		}
		compressedSize = n
	}
	compressElapsed := time.Since(start)

	compressed := dst[:compressedSize]

	start = time.Now()
	for i := 0; i < iterations; i++ {
		if err := doboz.Decompress(compressed, out); err != nil {
			fmt.Fprintf(os.Stderr, "%s: decompress failed: %v\n", c.name, err)
			return
		}
	}
	decompressElapsed := time.Since(start)

	compressMBps := throughputMBps(len(c.data), iterations, compressElapsed)
	decompressMBps := throughputMBps(len(c.data), iterations, decompressElapsed)
	ratio := 100 * float64(compressedSize) / float64(max(len(c.data), 1))

	fmt.Printf("%-20s %10d -> %10d bytes (%.1f%%)  compress %8.2f MiB/s  decompress %8.2f MiB/s\n",
		c.name, len(c.data), compressedSize, ratio, compressMBps, decompressMBps)
}

func throughputMBps(size, iterations int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(size) * float64(iterations) / megabyte / elapsed.Seconds()
}

func main() {
	size := flag.Int("size", 1<<20, "synthetic corpus size in bytes")
	iterations := flag.Int("iterations", 10, "iterations per corpus")
	flag.Parse()

	var corpora []corpus
	if flag.NArg() > 0 {
		var err error
		corpora, err = fileCorpora(flag.Args())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	} else {
		corpora = syntheticCorpora(*size)
	}

	for _, c := range corpora {
		runBenchmark(c, *iterations)
	}
}
