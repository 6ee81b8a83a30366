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

package log

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/regroup/pkg/status"
)

// 📦 GroupOperation describes the group being materialized
type GroupOperation struct {
	Number  int    // 1-based group number
	Pattern string // Expression that defines the group
	Folder  string // Group folder under the output root
	Files   int    // Number of entries in the group
}

// 🎯 Logger prints transfers to the console and mirrors them to zerolog
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	mu        sync.Mutex
	currentOp *GroupOperation
	transfers int
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 📝 StartGroup prints the group header
func (l *Logger) StartGroup(op GroupOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentOp = &op
	l.transfers = 0

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprintf("group %d", op.Number),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(op.Pattern))

	l.zlog.Info().
		Int("group", op.Number).
		Str("pattern", op.Pattern).
		Str("folder", op.Folder).
		Int("files", op.Files).
		Msg("starting group")
}

// 📝 LogTransfer prints one transfer
func (l *Logger) LogTransfer(t status.Transfer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.transfers++
	fmt.Fprintln(l.console, status.FormatTransfer(t))

	l.zlog.Debug().
		Str("source", t.Source).
		Str("target", t.Target).
		Stringer("outcome", t.Outcome).
		Msg("file transferred")
}

// 📝 EndGroup closes the current group
func (l *Logger) EndGroup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentOp == nil {
		return
	}

	l.zlog.Info().
		Int("group", l.currentOp.Number).
		Int("files", l.transfers).
		Msg("group complete")

	l.currentOp = nil
	l.transfers = 0
}

// 📝 Header announces what the run is about to do
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("regroup")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}


