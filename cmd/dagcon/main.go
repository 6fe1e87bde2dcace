// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dagcon builds consensus sequences from long-read-on-long-read
// alignments by threading each target's alignments into a partial
// order alignment graph and walking its strong-weight backbone.
//
// Input is an M5 pairwise alignment stream, sorted by either
// reference or query identifier; output is one or more fasta records
// per covered target, named "target/start_end".
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kortschak/dagcon/internal/dagconlog"
	"github.com/kortschak/dagcon/internal/pipeline"
)

var (
	minCoverage = flag.Int("min-coverage", 8, "minimum number of alignments spanning a target to attempt consensus")
	minLength   = flag.Int("min-length", 500, "minimum aligned length of both input alignments and output segments")
	trim        = flag.Int("trim", 50, "columns trimmed from each end of every alignment before threading")
	threads     = flag.Int("threads", 0, "number of consensus worker goroutines (0 runs the sequential degenerate mode)")
	rbuf        = flag.Int("rbuf", 30, "capacity of the alignment-batch queue between reader and workers")
	wbuf        = flag.Int("wbuf", 30, "capacity of the record queue between workers and writer")
	align       = flag.Bool("align", false, "re-align each alignment with banded Needleman-Wunsch before threading")
	band        = flag.Int("band", 50, "band width used when -align is set")
	verbose     = flag.Bool("verbose", false, "log debug-level detail per pipeline stage")

	out = flag.String("out", "", "output fasta file name (default stdout)")
)

func main() {
	flag.Parse()
	dagconlog.ConfigureFlags()
	logger := dagconlog.New(dagconlog.Pipeline, *verbose)

	path := "-"
	if args := flag.Args(); len(args) > 0 {
		path = args[0]
	}

	in := os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			logger.Fatalf("failed to open input %q: %v", path, err)
		}
		defer f.Close()
		in = f
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			logger.Fatalf("failed to create output %q: %v", *out, err)
		}
		defer f.Close()
		w = f
	}

	cfg := pipeline.Config{
		MinCoverage: *minCoverage,
		MinLength:   *minLength,
		Trim:        *trim,
		Threads:     *threads,
		RBuf:        *rbuf,
		WBuf:        *wbuf,
		Align:       *align,
		Band:        *band,
		Verbose:     *verbose,
	}

	err := pipeline.Run(in, path, w, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dagcon: %v\n", err)
		os.Exit(1)
	}
}
