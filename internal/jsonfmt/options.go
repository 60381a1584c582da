// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonfmt

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
)

const (
	flagIndent    = "indent"
	flagCompact   = "compact"
	flagOutput    = "output"
	flagConfig    = "config"
	flagVerbose   = "verbose"
	flagLogFormat = "log-format"

	consoleFormat = "console"
	jsonFormat    = "json"
)

// Options holds the settings of a single jsonfmt invocation.
// Each field may come from a flag, an environment variable,
// or a config file, in that order of precedence.
type Options struct {
	Indent    int    `mapstructure:"indent"`
	Compact   bool   `mapstructure:"compact"`
	Output    string `mapstructure:"output"`
	Verbose   bool   `mapstructure:"verbose"`
	LogFormat string `mapstructure:"log-format"`
}

// NewOptions returns the default options.
func NewOptions() *Options {
	return &Options{
		Indent:    2,
		LogFormat: jsonFormat,
	}
}

// AddFlags registers a flag for every option on fs.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&o.Indent, flagIndent, "i", o.Indent, "Number of spaces per indent level. Zero produces compact output.")
	fs.BoolVarP(&o.Compact, flagCompact, "c", o.Compact, "Produce compact output, overriding --indent.")
	fs.StringVarP(&o.Output, flagOutput, "o", o.Output, "Write output to this file instead of standard output.")
	fs.BoolVarP(&o.Verbose, flagVerbose, "v", o.Verbose, "Log debug diagnostics to standard error.")
	fs.StringVar(&o.LogFormat, flagLogFormat, o.LogFormat, "Diagnostic log format, either console or json.")
}

// Validate reports the first invalid option.
func (o *Options) Validate() error {
	if o.Indent < 0 {
		return fmt.Errorf("--%s must not be negative, got %d", flagIndent, o.Indent)
	}
	switch strings.ToLower(o.LogFormat) {
	case consoleFormat, jsonFormat:
	default:
		return fmt.Errorf("--%s must be %s or %s, got %q", flagLogFormat, consoleFormat, jsonFormat, o.LogFormat)
	}
	return nil
}

// PrettyIndent reports the indent to serialize with.
func (o *Options) PrettyIndent() int {
	if o.Compact {
		return 0
	}
	return o.Indent
}

// Level reports the minimum level of diagnostics to log.
func (o *Options) Level() zapcore.Level {
	if o.Verbose {
		return zapcore.DebugLevel
	}
	return zapcore.WarnLevel
}
