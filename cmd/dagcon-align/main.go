// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dagcon-align runs blasr in M5 output mode, producing the pairwise
// alignment stream cmd/dagcon consumes. It is a thin front end over
// the blasr package: all of the option handling lives there, this
// program only ever asks for format 5.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kortschak/dagcon/blasr"
)

var (
	reads = flag.String("reads", "", "input reads file name, reads.{bam|fasta|bax.h5|fofn} (required)")
	ref   = flag.String("reference", "", "input reference fasta file name (required)")
	suff  = flag.String("suff", "", "input reference suffix array path")

	blasrPath = flag.String("blasr", "", "path to blasr if not in $PATH")
	procs     = flag.Int("procs", 1, "number of blasr threads")
	bestN     = flag.Int("bestn", 10, "number of best alignments to report per read")
	minLength = flag.Int("min-length", 0, "minimum alignment length, passed to blasr as -minAlnLength")

	out = flag.String("out", "", "output M5 file name (default stdout)")
)

func main() {
	flag.Parse()
	if *reads == "" || *ref == "" {
		fmt.Fprintln(os.Stderr, "dagcon-align: -reads and -reference are required")
		flag.Usage()
		os.Exit(1)
	}

	b := blasr.BLASR{
		Cmd: *blasrPath,

		Reads: *reads, Genome: *ref, SuffixArray: *suff,

		Format:             5,
		BestN:              *bestN,
		MinAlignmentLength: *minLength,
		Procs:              *procs,
	}
	if *out != "" {
		b.Aligned = *out
	}

	cmd, err := b.BuildCommand()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dagcon-align: %v\n", err)
		os.Exit(1)
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "dagcon-align: blasr failed: %v\n", err)
		os.Exit(1)
	}
}
