// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dedup-ccs reports, for each target cmd/dagcon produced consensus
// records for, whether it yielded exactly one strong segment or
// whether its backbone broke into several ("target/start_end" names
// sharing the same target are siblings: a weak region between two
// strong runs splits one target into more than one record).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

var (
	in = flag.String("in", "", "specify input dagcon consensus fasta file (required)")
)

func main() {
	flag.Parse()
	if *in == "" {
		flag.Usage()
		os.Exit(1)
	}

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("failed to open %q: %v", *in, err)
	}
	defer f.Close()

	segments := make(map[string][]string)

	sc := seqio.NewScanner(fasta.NewReader(f, linear.NewSeq("", nil, alphabet.DNAgapped)))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		idx := strings.LastIndex(s.ID, "/")
		if idx < 0 {
			log.Printf("skipping record with no target/start_end suffix: %q", s.ID)
			continue
		}
		target := s.ID[:idx]
		coords := s.ID[idx+1:]
		segments[target] = append(segments[target], coords)
	}
	if err := sc.Error(); err != nil {
		log.Fatalf("error during fasta read: %v", err)
	}
	f.Close()

	base := filepath.Base(*in)
	single, err := os.Create(base + ".single-segment.text")
	if err != nil {
		log.Fatalf("failed to create %q: %v", base+".single-segment.text", err)
	}
	defer single.Close()
	multi, err := os.Create(base + ".multi-segment.text")
	if err != nil {
		log.Fatalf("failed to create %q: %v", base+".multi-segment.text", err)
	}
	defer multi.Close()
	for target, coords := range segments {
		switch len(coords) {
		case 0:
		case 1:
			fmt.Fprintln(single, target)
		default:
			fmt.Fprintf(multi, "%s\t%v\n", target, coords)
		}
	}
}
