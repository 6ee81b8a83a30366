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
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/regroup/pkg/classify"
	"github.com/walteh/regroup/pkg/config"
	"github.com/walteh/regroup/pkg/fileops"
	"github.com/walteh/regroup/pkg/log"
	"github.com/walteh/regroup/pkg/operation"
	"github.com/walteh/regroup/pkg/pattern"
	"github.com/walteh/regroup/pkg/scan"
	"github.com/walteh/regroup/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// run scans, classifies and then either prints or materializes the groups
func run(ctx context.Context, cfg *config.Config, fs afero.Fs, h fileops.Handler, stdout, stderr io.Writer) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Object("config", cfg).Msg("starting run")

	// machine readable listings keep stdout clean
	notices := stdout
	if cfg.DryRun && (cfg.Format == status.FormatYAML || cfg.Format == status.FormatJSON) {
		notices = stderr
	}
	console := log.New(notices, *logger)

	files, err := scan.Scan(ctx, fs, cfg.Source, scan.WithIgnore(cfg.Ignore...))
	if err != nil {
		return errors.Errorf("getting file list: %w", err)
	}
	fmt.Fprintf(notices, "Found %d files.\n", len(files))

	patterns, err := pattern.Compile(cfg.Expressions)
	if err != nil {
		return errors.Errorf("parsing expressions: %w", err)
	}

	groups := classify.Classify(patterns, files, cfg.Source, cfg.Flatten)
	warnCollisions(console, groups)

	opts := operation.Options{
		Handler: h,
		Output:  cfg.Output,
		Prefix:  cfg.Prefix,
		Move:    cfg.Move,
	}
	runner := operation.NewRunner(logger)

	if cfg.DryRun {
		report, err := runner.Run(ctx, operation.NewPlanOperation(opts), groups)
		if err != nil {
			return err
		}
		return status.Render(stdout, report, cfg.Format)
	}

	opts.Console = console
	op, err := operation.NewTransferOperation(opts)
	if err != nil {
		return errors.Errorf("creating operation: %w", err)
	}

	console.Header(fmt.Sprintf("%s %d groups into %s", op.Name(), len(groups), cfg.Output))
	report, err := runner.Run(ctx, op, groups)
	if err != nil {
		return errors.Errorf("finalizing: %w", err)
	}

	console.Success(status.FormatSummary(report))
	return nil
}

// warnCollisions reports flattened files that will overwrite each other
func warnCollisions(console *log.Logger, groups []*classify.Group) {
	for _, g := range groups {
		for _, name := range g.Collisions() {
			console.Warningf("group %d: several files are named %q, the last one transferred wins", g.Number(), name)
		}
	}
}
