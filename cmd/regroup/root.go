// Copyright 2025 walteh LLC
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

package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/regroup/pkg/config"
	"github.com/walteh/regroup/pkg/fileops"
	"github.com/walteh/regroup/pkg/status"
)

// newRootCmd creates the regroup command writing results to stdout and
// diagnostics to stderr
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := config.Default()
	var format string

	cmd := &cobra.Command{
		Use:   "regroup",
		Short: "Sort files into numbered folders by regular expression",
		Long: `regroup scans a source directory and puts every file into one group per
matching expression. Each group is written to <output>/<prefix><n>, where n is
the 1-based position of the expression. A file matching several expressions is
written to every one of those groups.

Expressions are unanchored and match the whole scanned path (the source
directory included) with forward slashes as separators.`,
		Example: `  regroup -s photos -e '\.jpe?g$' -e '\.png$' -o sorted -p img
  regroup -s photos -e '\.raw$' -t --format yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Format = status.Format(format)
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx := setupLogging(cmd.Context(), stderr, cfg.Debug)
			return run(ctx, cfg, afero.NewOsFs(), fileops.NewOS(), stdout, stderr)
		},
	}

	addRootFlags(cmd, cfg, &format)
	cmd.AddCommand(newVersionCmd(stdout))

	return cmd
}

// addRootFlags binds the command line to cfg
func addRootFlags(cmd *cobra.Command, cfg *config.Config, format *string) {
	flags := cmd.Flags()
	flags.StringVarP(&cfg.Source, "source", "s", "", "source folder path")
	flags.StringArrayVarP(&cfg.Expressions, "expr", "e", nil, "regular expression, repeat for more groups (one folder per expression)")
	flags.StringVarP(&cfg.Output, "output", "o", "", "output path")
	flags.StringVarP(&cfg.Prefix, "prefix", "p", "", "prefix of the group folders (default: 1, 2, 3, ...)")
	flags.BoolVarP(&cfg.Flatten, "flat", "f", false, "flatten the structure, only file names are kept")
	flags.BoolVarP(&cfg.Move, "move", "m", false, "move files instead of copying them")
	flags.BoolVarP(&cfg.DryRun, "tree", "t", false, "print each group and its files without doing anything")
	flags.StringArrayVarP(&cfg.Ignore, "ignore", "i", nil, "glob of paths to skip while scanning, relative to the source (repeatable)")
	flags.StringVar(format, "format", string(status.FormatText), "output format of --tree: text, tree, yaml or json")

	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("expr")

	cmd.PersistentFlags().BoolVarP(&cfg.Debug, "debug", "d", false, "enable debug logging")
}

// setupLogging installs a console zerolog logger into ctx. Every line of a
// run carries the same run id.
func setupLogging(ctx context.Context, w io.Writer, debug bool) context.Context {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: !isTerminal(w)}).
		Level(level).
		With().
		Timestamp().
		Str("run", uuid.NewString()).
		Logger()
	return logger.WithContext(ctx)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
