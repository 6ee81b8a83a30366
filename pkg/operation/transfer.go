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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/regroup/pkg/classify"
	"github.com/walteh/regroup/pkg/errs"
	"github.com/walteh/regroup/pkg/log"
	"github.com/walteh/regroup/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🚚 Execute materializes every group in order. A group's directories are all
// created before its first transfer, and a group completes before the next
// one starts. The first failure aborts the run; nothing already transferred is
// rolled back.
func Execute(ctx context.Context, opts Options, groups []*classify.Group) (*status.Report, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	report := status.NewReport(opts.Output, false)
	for _, g := range groups {
		if err := executeGroup(ctx, opts, g, report); err != nil {
			return report, errors.Errorf("group %d: %w", g.Number(), err)
		}
	}
	return report, nil
}

func executeGroup(ctx context.Context, opts Options, g *classify.Group, report *status.Report) error {
	folder := g.Folder(opts.Prefix)
	rg := report.StartGroup(g.Number(), g.Pattern.Expr, folder)

	if opts.Console != nil {
		opts.Console.StartGroup(log.GroupOperation{
			Number:  g.Number(),
			Pattern: g.Pattern.Expr,
			Folder:  folder,
			Files:   len(g.Entries),
		})
		defer opts.Console.EndGroup()
	}

	if err := EnsureDirectories(ctx, opts.Handler, g, opts.Output, opts.Prefix); err != nil {
		return err
	}

	for _, e := range g.Entries {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("interrupted: %w", err)
		}

		target := g.Target(opts.Output, opts.Prefix, e)
		outcome, err := transfer(ctx, opts, e.Source, target)
		if err != nil {
			return err
		}

		t := status.Transfer{Source: e.Source, Target: target, Outcome: outcome}
		rg.Track(t)
		if opts.Console != nil {
			opts.Console.LogTransfer(t)
		}
	}

	return nil
}

// transfer copies src to dst, or moves it when opts.Move is set. A failed
// rename of any kind falls back to copy then remove. If that remove fails the
// file is left in both places and the error says so.
func transfer(ctx context.Context, opts Options, src, dst string) (status.Outcome, error) {
	h := opts.Handler

	if !opts.Move {
		if _, err := h.Copy(src, dst); err != nil {
			return status.OutcomeUnknown, &errs.IOError{Op: "copy", Path: src, Dest: dst, Err: err}
		}
		return status.OutcomeCopied, nil
	}

	renameErr := h.Rename(src, dst)
	if renameErr == nil {
		return status.OutcomeMoved, nil
	}

	zerolog.Ctx(ctx).Debug().
		Err(renameErr).
		Str("source", src).
		Str("target", dst).
		Bool("cross_device", isCrossDevice(renameErr)).
		Msg("rename failed, falling back to copy and remove")

	if _, err := h.Copy(src, dst); err != nil {
		return status.OutcomeUnknown, &errs.IOError{
			Op:   "move",
			Path: src,
			Dest: dst,
			Err:  errors.Errorf("rename failed (%v) and copy fallback failed: %w", renameErr, err),
		}
	}

	if err := h.Remove(src); err != nil {
		return status.OutcomeUnknown, &errs.IOError{
			Op:   "remove",
			Path: src,
			Err:  errors.Errorf("copied to %q but the source could not be removed, the file now exists in both places: %w", dst, err),
		}
	}

	return status.OutcomeMovedByCopy, nil
}
