// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// multidiff merges any number of files line by line and prints the merged lines together with the
// files they appear in.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"znkr.io/multidiff"
	"znkr.io/multidiff/internal/cmd/multidiff/internal/git"
	"znkr.io/multidiff/textmerge"
)

type config struct {
	format  string
	color   string
	linear  bool
	verify  bool
	verbose bool
	repo    string
	revs    []string
	history int
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	var cfg config
	cmd := &cobra.Command{
		Use:   "multidiff [flags] FILE...",
		Short: "Merge files line by line",
		Long: `multidiff merges any number of files line by line. Every line of the output appears in
one or more of the inputs, filtering the output for the lines of one input yields that input again.

Use - to read one of the inputs from stdin. With --rev or --history, multidiff merges the versions
of a single FILE from a git repository instead.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&cfg, args, stdin, stdout)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.format, "format", "combined", "output format, one of combined or table")
	flags.StringVar(&cfg.color, "color", "auto", "color the combined output, one of auto, always or never")
	flags.BoolVar(&cfg.linear, "linear", false, "align in linear memory even where a table would fit")
	flags.BoolVar(&cfg.verify, "verify", false, "verify that every input can be reconstructed from the merge")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "log progress to stderr")
	flags.StringVar(&cfg.repo, "repo", ".", "git repository used with --rev and --history")
	flags.StringSliceVar(&cfg.revs, "rev", nil, "merge FILE at these git revisions, FILE is relative to --repo")
	flags.IntVar(&cfg.history, "history", 0, "merge the last N versions of FILE in git, oldest first")
	cmd.MarkFlagsMutuallyExclusive("rev", "history")
	return cmd
}

func run(cfg *config, args []string, stdin io.Reader, stdout io.Writer) error {
	var opts []multidiff.Option
	if cfg.linear {
		opts = append(opts, multidiff.Linear())
	}

	var render func(lines []textmerge.Line[string], k int) string
	switch cfg.format {
	case "combined":
		color, err := colorEnabled(cfg.color, stdout)
		if err != nil {
			return err
		}
		var copts []multidiff.Option
		if color {
			copts = append(copts, textmerge.TerminalColors())
		}
		render = func(lines []textmerge.Line[string], k int) string {
			return textmerge.CombinedLines(lines, k, copts...)
		}
	case "table":
		render = textmerge.TableLines[string]
	default:
		return fmt.Errorf("unknown format %q, want combined or table", cfg.format)
	}
	if cfg.history < 0 {
		return fmt.Errorf("--history must not be negative, got %d", cfg.history)
	}

	texts, err := load(cfg, args, stdin)
	if err != nil {
		return err
	}

	start := time.Now()
	lines := textmerge.Lines(texts, opts...)
	if cfg.verbose {
		log.Printf("merged %d inputs in %v", len(texts), time.Since(start))
	}

	if cfg.verify {
		if err := verify(texts, lines); err != nil {
			return fmt.Errorf("verifying merge: %v", err)
		}
		if cfg.verbose {
			log.Printf("verified merge of %d inputs", len(texts))
		}
	}

	out := render(lines, len(texts))
	if _, err := io.WriteString(stdout, out); err != nil {
		return fmt.Errorf("writing output: %v", err)
	}
	return nil
}

func load(cfg *config, args []string, stdin io.Reader) ([]string, error) {
	if len(cfg.revs) > 0 || cfg.history > 0 {
		if len(args) != 1 {
			return nil, fmt.Errorf("--rev and --history need exactly one file, got %d", len(args))
		}
		return loadRevisions(cfg, args[0])
	}

	texts := make([]string, len(args))
	stdinUsed := false
	for i, name := range args {
		var b []byte
		var err error
		if name == "-" {
			if stdinUsed {
				return nil, errors.New("stdin can only be read once")
			}
			stdinUsed = true
			b, err = io.ReadAll(stdin)
		} else {
			b, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, fmt.Errorf("reading input: %v", err)
		}
		texts[i] = string(b)
		if cfg.verbose {
			log.Printf("read %s (%d bytes)", name, len(b))
		}
	}
	return texts, nil
}

func loadRevisions(cfg *config, path string) ([]string, error) {
	repo, err := git.Open(cfg.repo)
	if err != nil {
		return nil, fmt.Errorf("opening git repository: %v", err)
	}

	revs := cfg.revs
	if cfg.history > 0 {
		revs, err = repo.Log(path, cfg.history)
		if err != nil {
			return nil, fmt.Errorf("reading history of %s: %v", path, err)
		}
		if len(revs) == 0 {
			return nil, fmt.Errorf("no history for %s", path)
		}
		slices.Reverse(revs)
	}

	texts := make([]string, len(revs))
	for i, rev := range revs {
		texts[i], err = repo.Show(rev, path)
		if err != nil {
			return nil, fmt.Errorf("reading %s at %s: %v", path, rev, err)
		}
		if cfg.verbose {
			log.Printf("read %s at %s (%d bytes)", path, rev, len(texts[i]))
		}
	}
	return texts, nil
}

func colorEnabled(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := w.(*os.File)
		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())), nil
	default:
		return false, fmt.Errorf("unknown color mode %q, want auto, always or never", mode)
	}
}
