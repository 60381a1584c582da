// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonfmt implements the jsonfmt command,
// which reformats JSON documents with jsontree.
package jsonfmt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/go-json-experiment/jsontree"
)

const (
	basename  = "jsonfmt"
	envPrefix = "JSONFMT"
	stdinName = "-"
)

const example = `  # Indent a file with two spaces
  jsonfmt config.json

  # Compact several files into one stream
  jsonfmt --compact a.json b.json -o out.json

  # Read from standard input with four spaces of indent
  cat data.json | JSONFMT_INDENT=4 jsonfmt`

// NewCommand returns the jsonfmt command, which reads from stdin and
// writes to stdout and stderr unless redirected by its flags.
func NewCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := NewOptions()
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   basename + " [flags] [file...]",
		Short: "Reformat JSON documents",
		Long: `jsonfmt parses each named file, or standard input if none are named,
and writes every document back out either indented or compact.
Object members keep their order and number literals keep their text.`,
		Example:       example,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(v, cmd.Flags(), cfgFile); err != nil {
				return err
			}
			if err := v.Unmarshal(opts); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			logger := newLogger(stderr, opts)
			defer logger.Sync() //nolint:errcheck
			logger.Debug("configuration loaded",
				zap.Int("indent", opts.PrettyIndent()),
				zap.String("config", v.ConfigFileUsed()))

			a := &app{opts: opts, log: logger, stdin: stdin, stdout: stdout}
			return a.run(args)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fs := cmd.Flags()
	opts.AddFlags(fs)
	fs.StringVar(&cfgFile, flagConfig, "", "Read options from this file. Supports JSON, TOML, and YAML.")
	return cmd
}

// loadConfig binds flags, environment variables, and an optional config file to v.
func loadConfig(v *viper.Viper, fs *pflag.FlagSet, cfgFile string) error {
	if err := v.BindPFlags(fs); err != nil {
		return err
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if cfgFile == "" {
		return nil
	}
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", cfgFile, err)
	}
	return nil
}

func newLogger(w io.Writer, opts *Options) *zap.Logger {
	var enc zapcore.Encoder
	if strings.ToLower(opts.LogFormat) == consoleFormat {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), opts.Level())
	return zap.New(core).Named(basename)
}

type app struct {
	opts   *Options
	log    *zap.Logger
	stdin  io.Reader
	stdout io.Writer
}

// run formats each input in order. A malformed input is reported and
// skipped so that the remaining inputs are still formatted.
func (a *app) run(args []string) (err error) {
	if len(args) == 0 {
		args = []string{stdinName}
	}

	out := a.stdout
	if a.opts.Output != "" {
		// An input may be the output file itself, so the output is
		// replaced only after every input has been formatted.
		tmp, terr := os.CreateTemp(filepath.Dir(a.opts.Output), "."+filepath.Base(a.opts.Output)+".*")
		if terr != nil {
			return terr
		}
		defer os.Remove(tmp.Name())
		defer tmp.Close()
		defer func() {
			if err == nil {
				err = replaceFile(tmp, a.opts.Output)
			}
		}()
		out = tmp
	}
	enc := jsontree.NewEncoder(out, a.opts.PrettyIndent())

	var failed int
	for _, name := range args {
		if err := a.format(enc, name); err != nil {
			a.log.Error("failed to format input", zap.String("file", name), zap.Error(err))
			var serr *jsontree.SyntacticError
			if !errors.As(err, &serr) {
				return err
			}
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs are not valid JSON", failed, len(args))
	}
	return nil
}

// replaceFile moves the fully written tmp over dst.
// The mode of an existing dst is kept.
func replaceFile(tmp *os.File, dst string) error {
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(dst); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}

func (a *app) format(enc *jsontree.Encoder, name string) error {
	var b []byte
	var err error
	if name == stdinName {
		b, err = io.ReadAll(a.stdin)
	} else {
		b, err = os.ReadFile(name)
	}
	if err != nil {
		return err
	}

	v, err := jsontree.Parse(b)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	a.log.Debug("parsed input",
		zap.String("file", name),
		zap.Int("bytes", len(b)),
		zap.Stringer("kind", v.Kind()))
	return enc.Encode(v)
}
