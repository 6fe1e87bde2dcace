// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package record formats and writes consensus results, component G
// of the consensus pipeline (spec.md §4.G). It deliberately does not
// route through biogo's fasta writer, which wraps sequence at a fixed
// column width; the output format is a single unwrapped record per
// segment, the same shape loopy.go's writeResults builds with a plain
// Fprintf rather than a structured writer.
package record

import (
	"fmt"
	"io"

	"github.com/kortschak/dagcon/internal/dagraph"
)

// Format renders one strong segment as a FASTA-like record named
// "<target>/<start>_<end>", matching the pbdagcon driver's
// boost::format("%s/%d_%d") naming so that downstream tools (notably
// cmd/dedup-ccs) can parse it back apart.
func Format(target string, r dagraph.Result) string {
	return fmt.Sprintf(">%s/%d_%d\n%s\n", target, r.Start, r.End, r.Subsequence)
}

// Write formats and writes every result for target to w, in the order
// given. It stops at the first write error.
func Write(w io.Writer, target string, results []dagraph.Result) error {
	for _, r := range results {
		if _, err := io.WriteString(w, Format(target, r)); err != nil {
			return err
		}
	}
	return nil
}
