// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// m5Line builds one well-formed M5 record for a full-length,
// ungapped, perfect match of seq against target tname.
func m5Line(qname, tname, seq string) string {
	n := strconv.Itoa(len(seq))
	pattern := strings.Repeat("|", len(seq))
	return strings.Join([]string{
		qname, n, "0", n, "+",
		tname, n, "0", n, "+",
		"100", n, "0", "0", "0", "254",
		seq, pattern, seq,
	}, " ")
}

func repeatLines(tname, seq string, n int) []string {
	lines := make([]string, n)
	for i := 0; i < n; i++ {
		lines[i] = m5Line("q"+strconv.Itoa(i), tname, seq)
	}
	return lines
}

func TestRunSequential(t *testing.T) {
	seq := "ACGTACGTAC"
	var lines []string
	lines = append(lines, repeatLines("t1", seq, 5)...)
	input := strings.Join(lines, "\n") + "\n"

	var out strings.Builder
	cfg := Config{MinCoverage: 3, MinLength: 5, Trim: 0, Threads: 0, RBuf: 4, WBuf: 4}
	if err := Run(strings.NewReader(input), "-", &out, cfg); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := ">t1/0_10\n" + seq + "\n"
	if out.String() != want {
		t.Errorf("Run() output = %q, want %q", out.String(), want)
	}
}

func TestRunSequentialBelowCoverage(t *testing.T) {
	seq := "ACGTACGTAC"
	lines := repeatLines("t1", seq, 2)
	input := strings.Join(lines, "\n") + "\n"

	var out strings.Builder
	cfg := Config{MinCoverage: 3, MinLength: 5, Trim: 0, Threads: 0, RBuf: 4, WBuf: 4}
	if err := Run(strings.NewReader(input), "-", &out, cfg); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.String() != "" {
		t.Errorf("Run() output = %q, want empty (below min-coverage)", out.String())
	}
}

func TestRunConcurrentMatchesSequential(t *testing.T) {
	seqA := "ACGTACGTACGTACGT"
	seqB := "TTTTGGGGCCCCAAAA"
	var lines []string
	lines = append(lines, repeatLines("t1", seqA, 4)...)
	lines = append(lines, repeatLines("t2", seqB, 4)...)
	input := strings.Join(lines, "\n") + "\n"

	cfg := Config{MinCoverage: 3, MinLength: 5, Trim: 0, RBuf: 2, WBuf: 2}

	var seqOut strings.Builder
	cfg.Threads = 0
	if err := Run(strings.NewReader(input), "-", &seqOut, cfg); err != nil {
		t.Fatalf("sequential Run: %v", err)
	}

	var conOut strings.Builder
	cfg.Threads = 3
	if err := Run(strings.NewReader(input), "-", &conOut, cfg); err != nil {
		t.Fatalf("concurrent Run: %v", err)
	}

	got := splitRecords(conOut.String())
	want := splitRecords(seqOut.String())
	sort.Strings(got)
	sort.Strings(want)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("concurrent output differs from sequential (order-independent) (-want +got):\n%s", diff)
	}
}

// splitRecords splits a concatenated record stream back into whole
// ">id\nseq\n" records for order-independent comparison.
func splitRecords(s string) []string {
	var recs []string
	for _, part := range strings.Split(s, ">") {
		if part == "" {
			continue
		}
		recs = append(recs, ">"+part)
	}
	return recs
}
