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

package config

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/regroup/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Config is everything one regroup run needs, taken from the command line
type Config struct {
	Source      string        // Root directory to scan
	Expressions []string      // Ordered regular expressions, one group each
	Output      string        // Root the group folders are created in
	Prefix      string        // Prepended to the 1-based group number
	Flatten     bool          // Keep base names only
	Move        bool          // Move instead of copy
	DryRun      bool          // Print the groups and stop
	Ignore      []string      // Doublestar globs skipped while scanning
	Format      status.Format // Dry run output format
	Debug       bool          // Verbose logging
}

// 🏭 Default returns a Config with defaults applied
func Default() *Config {
	return &Config{
		Format: status.FormatText,
	}
}

// ✅ Validate checks the combination of values. It does not touch the
// filesystem.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Source) == "" {
		return errors.New("source path is required")
	}
	if len(c.Expressions) == 0 {
		return errors.New("at least one expression is required")
	}
	if !c.DryRun && strings.TrimSpace(c.Output) == "" {
		return errors.New("output path is required unless printing the tree")
	}

	format, err := status.ParseFormat(string(c.Format))
	if err != nil {
		return errors.Errorf("validating format: %w", err)
	}
	c.Format = format

	return nil
}

// MarshalZerologObject logs the config as a structured object
func (c *Config) MarshalZerologObject(e *zerolog.Event) {
	e.Str("source", c.Source).
		Strs("expressions", c.Expressions).
		Str("output", c.Output).
		Str("prefix", c.Prefix).
		Bool("flatten", c.Flatten).
		Bool("move", c.Move).
		Bool("dry_run", c.DryRun).
		Strs("ignore", c.Ignore).
		Str("format", string(c.Format))
}
