// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"strings"
	"testing"

	"github.com/kortschak/dagcon/internal/dagraph"
)

func TestFormat(t *testing.T) {
	got := Format("m64001_190803/12345", dagraph.Result{Subsequence: "ACGT", Start: 10, End: 14})
	want := ">m64001_190803/12345/10_14\nACGT\n"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestWrite(t *testing.T) {
	results := []dagraph.Result{
		{Subsequence: "ACGT", Start: 0, End: 4},
		{Subsequence: "TTTT", Start: 10, End: 14},
	}
	var buf strings.Builder
	if err := Write(&buf, "tgt1", results); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := ">tgt1/0_4\nACGT\n>tgt1/10_14\nTTTT\n"
	if buf.String() != want {
		t.Errorf("Write() = %q, want %q", buf.String(), want)
	}
}
