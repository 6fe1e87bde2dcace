// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dagconlog tags log output by pipeline stage, wrapping
// github.com/grailbio/base/log the way grailbio-bio's markduplicates
// and fusion packages use its leveled Debug/Info/Error loggers
// directly, and configures the package's flags the way bio-bam-sort
// and bio-pamtool do in their main functions. It exists only to
// prefix every line with the emitting component and to gate Debug
// output on dagcon's own -verbose flag, which plain log.Info/
// log.Debug would not do on their own.
package dagconlog

import "github.com/grailbio/base/log"

// Category names a pipeline stage for log prefixing.
type Category string

const (
	Parse    Category = "parse"
	Align    Category = "align"
	Graph    Category = "graph"
	Reader   Category = "reader"
	Writer   Category = "writer"
	Pipeline Category = "pipeline"
)

// ConfigureFlags sets the date/time log flags bio-bam-sort and
// bio-pamtool both set at startup.
func ConfigureFlags() {
	log.SetFlags(log.Ldate | log.Ltime)
}

// Logger emits lines tagged with a fixed category. verbose gates
// Debugf: dagcon has no way to change grailbio/base/log's own global
// verbosity threshold from the outside, so -verbose is implemented by
// simply skipping Debugf calls when it is false.
type Logger struct {
	cat     Category
	verbose bool
}

// New returns a Logger that prefixes every line with cat. Debugf is a
// no-op unless verbose is true.
func New(cat Category, verbose bool) Logger {
	return Logger{cat: cat, verbose: verbose}
}

func (l Logger) Debugf(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	log.Debug.Printf("["+string(l.cat)+"] "+format, args...)
}

func (l Logger) Infof(format string, args ...interface{}) {
	log.Info.Printf("["+string(l.cat)+"] "+format, args...)
}

func (l Logger) Errorf(format string, args ...interface{}) {
	log.Error.Printf("["+string(l.cat)+"] "+format, args...)
}

func (l Logger) Fatalf(format string, args ...interface{}) {
	log.Fatalf("["+string(l.cat)+"] "+format, args...)
}
