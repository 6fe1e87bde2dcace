// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// bundle splits an M5 pairwise alignment stream into a number of
// shard files no greater in total aligned target length than a
// defined threshold, without ever splitting one target's (or, in
// query-sorted input, one query's) alignments across two shards, so
// each shard can be fed to cmd/dagcon independently. A single batch
// larger than the threshold is written to a shard of its own, which
// then exceeds it.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/biogo/biogo/seq"

	"github.com/kortschak/dagcon/internal/aln"
)

var (
	in     = flag.String("in", "", "specifies the input M5 filename (required)")
	cut    = flag.Int("cut", 0, "specifies the minimum per-batch coverage for inclusion")
	bundle = flag.Int("bundle", 100e6, "specifies the sum of aligned target length in a bundle")
)

func main() {
	flag.Parse()
	if *in == "" {
		flag.Usage()
		os.Exit(1)
	}

	inFile, err := os.Open(*in)
	if err != nil {
		log.Fatalf("failed to open input: %v", err)
	}
	defer inFile.Close()
	base := filepath.Base(*in)

	var warned int
	rdr := aln.NewReader(inFile, *in, func(err error) {
		warned++
		log.Printf("skipping malformed record: %v", err)
	})

	var i, size int
	out, err := os.Create(fmt.Sprintf("%s-%d.m5", base, i))
	if err != nil {
		log.Fatalf("failed to open file bundle %d: %v", i, err)
	}
	w := bufio.NewWriter(out)

	for {
		b, err := rdr.Next()
		if err != nil {
			break
		}
		if len(b.Alns) < *cut {
			continue
		}

		batchSize := 0
		for _, a := range b.Alns {
			batchSize += a.TargetEnd - a.TargetStart
		}

		if size != 0 && size+batchSize > *bundle {
			if err := w.Flush(); err != nil {
				log.Fatalf("failed to flush file bundle %d: %v", i, err)
			}
			if err := out.Close(); err != nil {
				log.Fatalf("failed to close file bundle %d: %v", i, err)
			}
			i++
			size = 0
			out, err = os.Create(fmt.Sprintf("%s-%d.m5", base, i))
			if err != nil {
				log.Fatalf("failed to open file bundle %d: %v", i, err)
			}
			w = bufio.NewWriter(out)
		}
		size += batchSize

		for _, a := range b.Alns {
			if _, err := fmt.Fprintln(w, encodeM5(a)); err != nil {
				log.Fatalf("failed to write to file bundle %d: %v", i, err)
			}
		}
	}

	if err := w.Flush(); err != nil {
		log.Fatalf("failed to flush file bundle %d: %v", i, err)
	}
	if err := out.Close(); err != nil {
		log.Fatalf("failed to close file bundle %d: %v", i, err)
	}
	if warned > 0 {
		log.Printf("dropped %d malformed record(s)", warned)
	}
}

// encodeM5 reconstructs an M5 record from a. The score and base-count
// fields blasr itself reports are not retained by aln.Alignment, so
// they are written as zero; cmd/dagcon's parser does not read them.
func encodeM5(a aln.Alignment) string {
	return strings.Join([]string{
		a.QueryID, strconv.Itoa(a.QueryLen), strconv.Itoa(a.QueryStart), strconv.Itoa(a.QueryEnd), strandSym(a.QueryStrand),
		a.TargetID, strconv.Itoa(a.TargetLen), strconv.Itoa(a.TargetStart), strconv.Itoa(a.TargetEnd), strandSym(a.TargetStrand),
		"0", "0", "0", "0", "0", "0",
		a.AlignedQuery, matchPattern(a.AlignedTarget, a.AlignedQuery), a.AlignedTarget,
	}, " ")
}

func strandSym(s seq.Strand) string {
	if s == seq.Minus {
		return "-"
	}
	return "+"
}

// matchPattern rebuilds the cosmetic blasr match line: '|' where the
// aligned bases agree, ' ' everywhere else.
func matchPattern(t, q string) string {
	p := make([]byte, len(t))
	for i := range p {
		if t[i] == q[i] && t[i] != '-' {
			p[i] = '|'
		} else {
			p[i] = ' '
		}
	}
	return string(p)
}
