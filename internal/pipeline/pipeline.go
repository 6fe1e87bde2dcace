// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"io"
	"sync"

	"github.com/kortschak/dagcon/internal/aln"
	"github.com/kortschak/dagcon/internal/dagconlog"
	"github.com/kortschak/dagcon/internal/dagraph"
	"github.com/kortschak/dagcon/internal/gapnorm"
	"github.com/kortschak/dagcon/internal/realign"
	"github.com/kortschak/dagcon/internal/record"
)

// Config holds the pipeline's tunables, all sourced from cmd/dagcon's
// flags (spec.md §6). It is built once by the caller and never
// mutated afterward, so it can be shared by every worker goroutine
// without synchronization — the "global option struct, built once
// and read-only thereafter" resolution of spec.md §9's configuration
// open question.
type Config struct {
	MinCoverage int // batches, and graph edges, below this weight are dropped
	MinLength   int // filters both input alignments and emitted segments
	Trim        int // columns removed from each end of every alignment
	Threads     int // consensus workers; 0 selects the sequential degenerate mode
	RBuf, WBuf  int // aln-channel and cns-channel capacities
	Align       bool
	Band        int // realign.Aligner band width, used only when Align is true
	Verbose     bool
}

// Run drives the full pipeline: parses r as an M5 stream, threads
// each sufficiently-covered target's alignments into a DAG, extracts
// its strong consensus segments, and writes the resulting records to
// w. path is used only to annotate parse errors.
func Run(r io.Reader, path string, w io.Writer, cfg Config) error {
	logger := dagconlog.New(dagconlog.Reader, cfg.Verbose)
	rdr := aln.NewReader(r, path, func(err error) { logger.Errorf("%v", err) })

	var aligner *realign.Aligner
	if cfg.Align {
		aligner = realign.New(cfg.Band)
	}

	if cfg.Threads <= 0 {
		return runSequential(rdr, w, cfg, aligner)
	}
	return runConcurrent(rdr, w, cfg, aligner)
}

// processBatch builds one target's DAG from its batch of alignments
// and returns its strong consensus segments (spec.md §4.C/§4.D),
// re-checking the batch's own coverage (the "double coverage check"
// the original driver performs in both its Reader and Consensus
// classes), re-aligning the whole batch first when aligner is non-nil,
// and filtering out individual alignments shorter than MinLength.
func processBatch(b aln.Batch, cfg Config, aligner *realign.Aligner) []dagraph.Result {
	if len(b.Alns) < cfg.MinCoverage {
		return nil
	}

	alns := b.Alns
	if aligner != nil {
		alns = aligner.AlignBatch(alns, 0)
	}

	g := dagraph.New(alns[0].TargetLen)
	for _, a := range alns {
		if a.QueryAlignedLen() < cfg.MinLength {
			continue
		}
		a = gapnorm.Normalize(a)
		trimmed, ok := gapnorm.Trim(a, cfg.Trim)
		if !ok {
			continue
		}
		g.AddAlignment(trimmed)
	}
	g.MergeNodes()
	return g.Consensus(cfg.MinCoverage, cfg.MinLength)
}

// runSequential threads the three stages through the same Queue types
// the concurrent path uses, honoring their capacities, but drives them
// from a single goroutine one batch at a time: reader -> worker ->
// writer, in lockstep, so the queues never hold more than one
// in-flight batch or record. Running the stages genuinely
// independently here — the literal translation of the original
// driver's single-thread mode — pushes to an alnBuf that nothing
// drains until the (not-yet-started) consensus stage runs, which
// deadlocks once the input has more distinct targets than rbuf;
// per-batch interleaving is spec.md §5's documented fix ("ordering is
// reader -> worker -> writer per batch").
func runSequential(rdr *aln.Reader, w io.Writer, cfg Config, aligner *realign.Aligner) error {
	alnQ := NewQueue[aln.Batch](cfg.RBuf)
	cnsQ := NewQueue[string](cfg.WBuf)
	logger := dagconlog.New(dagconlog.Pipeline, cfg.Verbose)

	for {
		batch, err := rdr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			logger.Errorf("%v", err)
			return nil
		}
		if len(batch.Alns) < cfg.MinCoverage {
			logger.Debugf("coverage requirement not met for %s: %d alignments", batch.ID, len(batch.Alns))
			continue
		}

		alnQ.Push(batch)
		b := alnQ.Pop()
		for _, res := range processBatch(b, cfg, aligner) {
			cnsQ.Push(record.Format(b.ID, res))
			if err := writeString(w, cnsQ.Pop()); err != nil {
				return err
			}
		}
	}
}

// runConcurrent runs one reader goroutine, cfg.Threads worker
// goroutines, and one writer goroutine, joined in the same order the
// original driver joins its boost::threads: writer, then workers,
// then reader.
func runConcurrent(rdr *aln.Reader, w io.Writer, cfg Config, aligner *realign.Aligner) error {
	n := cfg.Threads
	alnQ := NewQueue[aln.Batch](cfg.RBuf)
	cnsQ := NewQueue[string](cfg.WBuf)
	logger := dagconlog.New(dagconlog.Pipeline, cfg.Verbose)

	var workers sync.WaitGroup
	workers.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer workers.Done()
			for {
				b := alnQ.Pop()
				if len(b.Alns) == 0 {
					cnsQ.Push("")
					return
				}
				for _, res := range processBatch(b, cfg, aligner) {
					cnsQ.Push(record.Format(b.ID, res))
				}
			}
		}()
	}

	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		for {
			batch, err := rdr.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				logger.Errorf("%v", err)
				break
			}
			if len(batch.Alns) < cfg.MinCoverage {
				logger.Debugf("coverage requirement not met for %s: %d alignments", batch.ID, len(batch.Alns))
				continue
			}
			alnQ.Push(batch)
		}
		for i := 0; i < n; i++ {
			alnQ.Push(aln.Batch{})
		}
	}()

	var writeErr error
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		seen := 0
		for seen < n {
			rec := cnsQ.Pop()
			if rec == "" {
				seen++
				continue
			}
			if err := writeString(w, rec); err != nil && writeErr == nil {
				writeErr = err
			}
		}
	}()

	<-writerDone
	workers.Wait()
	<-readerDone
	return writeErr
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
