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

// Package errs defines the error kinds a regroup run can fail with.
package errs

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// 🔍 NotFoundError reports a missing source root
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("source %q does not exist", e.Path)
}

// 🧩 PatternError reports an expression that failed to compile.
// Index is 0-based; -1 means the expression list itself was invalid.
type PatternError struct {
	Index int
	Expr  string
	Err   error
}

func (e *PatternError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid expressions: %v", e.Err)
	}
	return fmt.Sprintf("invalid expression #%d %q: %v", e.Index+1, e.Expr, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// 💾 IOError reports a failed filesystem operation.
// Dest is only set for two-path operations (copy, rename).
type IOError struct {
	Op   string
	Path string
	Dest string
	Err  error
}

func (e *IOError) Error() string {
	if e.Dest != "" {
		return fmt.Sprintf("%s %q -> %q: %v", e.Op, e.Path, e.Dest, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// IsNotFound reports whether err carries a NotFoundError
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsPattern reports whether err carries a PatternError
func IsPattern(err error) bool {
	var e *PatternError
	return errors.As(err, &e)
}

// IsIO reports whether err carries an IOError
func IsIO(err error) bool {
	var e *IOError
	return errors.As(err, &e)
}
