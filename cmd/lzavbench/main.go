// SPDX-License-Identifier: MIT

// Command lzavbench compresses or decompresses a file with the lzav
// codec and reports timing and ratio statistics, mirroring the
// retrieval pack's small single-purpose codec CLIs (e.g.
// golang-snappy's cmd/snappytool) rather than implementing a
// general-purpose archive tool.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/avaneev/lzav"
)

var (
	mode    = flag.String("mode", "roundtrip", "compress, decompress, or roundtrip")
	inPath  = flag.String("in", "", "input file path (required)")
	outPath = flag.String("out", "", "output file path (optional; stats-only when empty)")
	outLen  = flag.Int("outlen", 0, "expected decompressed length (required for -mode=decompress)")
)

func run(log *zap.Logger) error {
	flag.Parse()

	if *inPath == "" {
		return fmt.Errorf("lzavbench: -in is required")
	}

	src, err := os.ReadFile(*inPath)
	if err != nil {
		return fmt.Errorf("lzavbench: read input: %w", err)
	}

	switch *mode {
	case "compress":
		return runCompress(log, src)
	case "decompress":
		if *outLen <= 0 {
			return fmt.Errorf("lzavbench: -outlen is required for -mode=decompress")
		}
		return runDecompress(log, src, *outLen)
	case "roundtrip":
		return runRoundTrip(log, src)
	default:
		return fmt.Errorf("lzavbench: unknown -mode %q", *mode)
	}
}

func runCompress(log *zap.Logger, src []byte) error {
	start := time.Now()
	enc, err := lzav.Compress(src, nil)
	if err != nil {
		return fmt.Errorf("lzavbench: compress: %w", err)
	}
	elapsed := time.Since(start)

	log.Info("compressed",
		zap.String("in_size", humanize.Bytes(uint64(len(src)))),
		zap.String("out_size", humanize.Bytes(uint64(len(enc)))),
		zap.Float64("ratio", float64(len(enc))/float64(max(len(src), 1))),
		zap.Duration("elapsed", elapsed),
		zap.String("throughput", humanize.Bytes(uint64(float64(len(src))/elapsed.Seconds()))+"/s"),
	)

	if *outPath != "" {
		if err := os.WriteFile(*outPath, enc, 0o644); err != nil {
			return fmt.Errorf("lzavbench: write output: %w", err)
		}
	}
	return nil
}

func runDecompress(log *zap.Logger, src []byte, outLen int) error {
	start := time.Now()
	dec, err := lzav.Decompress(src, lzav.DefaultDecompressOptions(outLen))
	if err != nil {
		return fmt.Errorf("lzavbench: decompress: %w", err)
	}
	elapsed := time.Since(start)

	log.Info("decompressed",
		zap.String("in_size", humanize.Bytes(uint64(len(src)))),
		zap.String("out_size", humanize.Bytes(uint64(len(dec)))),
		zap.Duration("elapsed", elapsed),
	)

	if *outPath != "" {
		if err := os.WriteFile(*outPath, dec, 0o644); err != nil {
			return fmt.Errorf("lzavbench: write output: %w", err)
		}
	}
	return nil
}

func runRoundTrip(log *zap.Logger, src []byte) error {
	encStart := time.Now()
	enc, err := lzav.Compress(src, nil)
	if err != nil {
		return fmt.Errorf("lzavbench: compress: %w", err)
	}
	encElapsed := time.Since(encStart)

	decStart := time.Now()
	dec, err := lzav.Decompress(enc, lzav.DefaultDecompressOptions(len(src)))
	if err != nil {
		return fmt.Errorf("lzavbench: decompress: %w", err)
	}
	decElapsed := time.Since(decStart)

	if string(dec) != string(src) {
		return fmt.Errorf("lzavbench: round trip mismatch: decompressed output does not match input")
	}

	log.Info("round trip ok",
		zap.String("in_size", humanize.Bytes(uint64(len(src)))),
		zap.String("compressed_size", humanize.Bytes(uint64(len(enc)))),
		zap.Float64("ratio", float64(len(enc))/float64(max(len(src), 1))),
		zap.Duration("compress_elapsed", encElapsed),
		zap.Duration("decompress_elapsed", decElapsed),
	)
	return nil
}

func main() {
	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log); err != nil {
		log.Error("lzavbench failed", zap.Error(err))
		os.Exit(1)
	}
}
