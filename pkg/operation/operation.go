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
	"os"

	"github.com/walteh/regroup/pkg/classify"
	"github.com/walteh/regroup/pkg/fileops"
	"github.com/walteh/regroup/pkg/log"
	"github.com/walteh/regroup/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// DirPerm is the mode of every directory created under the output root
const DirPerm os.FileMode = 0o755

// 🎯 Operation turns classified groups into a report
type Operation interface {
	// Name identifies the operation in logs
	Name() string
	// Execute runs the operation over every group in order
	Execute(ctx context.Context, groups []*classify.Group) (*status.Report, error)
}

// 🔧 Options configures an operation
type Options struct {
	// Handler performs every filesystem mutation
	Handler fileops.Handler
	// Output is the root the group folders are created in
	Output string
	// Prefix is prepended to the 1-based group number to name group folders
	Prefix string
	// Move renames files instead of copying them
	Move bool
	// Console receives one line per transfer, optional
	Console *log.Logger
}

func (o Options) validate() error {
	if o.Handler == nil {
		return errors.New("file handler is required")
	}
	return nil
}

// 🏭 NewTransferOperation creates the operation that copies or moves files
func NewTransferOperation(opts Options) (Operation, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &transferOperation{opts: opts}, nil
}

// 🏭 NewPlanOperation creates the dry run operation. It computes every
// target without touching the filesystem.
func NewPlanOperation(opts Options) Operation {
	return &planOperation{opts: opts}
}

type transferOperation struct {
	opts Options
}

func (op *transferOperation) Name() string {
	if op.opts.Move {
		return "move"
	}
	return "copy"
}

func (op *transferOperation) Execute(ctx context.Context, groups []*classify.Group) (*status.Report, error) {
	return Execute(ctx, op.opts, groups)
}

type planOperation struct {
	opts Options
}

func (op *planOperation) Name() string {
	return "plan"
}

func (op *planOperation) Execute(ctx context.Context, groups []*classify.Group) (*status.Report, error) {
	report := status.NewReport(op.opts.Output, true)
	for _, g := range groups {
		rg := report.StartGroup(g.Number(), g.Pattern.Expr, g.Folder(op.opts.Prefix))
		for _, e := range g.Entries {
			rg.Track(status.Transfer{
				Source:  e.Source,
				Target:  g.Target(op.opts.Output, op.opts.Prefix, e),
				Outcome: status.OutcomePlanned,
			})
		}
	}
	return report, nil
}
