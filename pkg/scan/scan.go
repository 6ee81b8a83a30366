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

// Package scan discovers the files under a source root.
package scan

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/regroup/pkg/errs"
	"gitlab.com/tozd/go/errors"
)

// 📄 Entry is a discovered file path, rooted at the scan origin the way the
// root was given (a leading "./" is dropped).
type Entry = string

// 🔧 Option configures a scan
type Option func(*scanner)

// WithIgnore skips files and directories whose root-relative, slash-separated
// path matches any of the doublestar globs.
func WithIgnore(globs ...string) Option {
	return func(s *scanner) {
		s.ignore = append(s.ignore, globs...)
	}
}

type scanner struct {
	fs     afero.Fs
	root   string
	ignore []string
	logger *zerolog.Logger
}

// 🔍 Scan walks root depth-first and returns every regular file below it.
//
// A directory that cannot be read, and a symlink that cannot be resolved
// (dangling or cyclic), is returned as if it were a file instead of failing the
// scan. Empty directories contribute nothing. When root itself is
// not a directory it is returned as the only entry.
func Scan(ctx context.Context, fs afero.Fs, root string, opts ...Option) ([]Entry, error) {
	s := &scanner{
		fs:     fs,
		root:   root,
		logger: zerolog.Ctx(ctx),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, g := range s.ignore {
		if !doublestar.ValidatePattern(g) {
			return nil, errors.Errorf("invalid ignore pattern %q", g)
		}
	}

	info, err := fs.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &errs.NotFoundError{Path: root}
		}
		return nil, &errs.IOError{Op: "stat", Path: root, Err: err}
	}

	files := make([]Entry, 0, 64)
	if !info.IsDir() {
		return append(files, normalize(root)), nil
	}

	if err := s.walk(ctx, root, &files); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("root", root).Int("files", len(files)).Msg("scan complete")
	return files, nil
}

func (s *scanner) walk(ctx context.Context, dir string, files *[]Entry) error {
	if err := ctx.Err(); err != nil {
		return errors.Errorf("scan cancelled: %w", err)
	}

	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		// unreadable directories become opaque leaves
		s.logger.Debug().Str("dir", dir).Err(err).Msg("directory unreadable, keeping it as an entry")
		*files = append(*files, normalize(dir))
		return nil
	}

	for _, info := range entries {
		path := normalize(filepath.Join(dir, info.Name()))

		if s.ignored(path) {
			s.logger.Trace().Str("path", path).Msg("ignored")
			continue
		}

		isDir := info.IsDir()
		if info.Mode()&os.ModeSymlink != 0 {
			// dangling links and link cycles stay leaves
			if target, err := s.fs.Stat(path); err == nil {
				isDir = target.IsDir()
			} else {
				s.logger.Debug().Str("path", path).Err(err).Msg("symlink unresolvable, keeping it as an entry")
			}
		}

		if !isDir {
			*files = append(*files, path)
			continue
		}

		if err := s.walk(ctx, path, files); err != nil {
			return err
		}
	}

	return nil
}

func (s *scanner) ignored(path string) bool {
	if len(s.ignore) == 0 {
		return false
	}
	rel := filepath.ToSlash(relative(s.root, path))
	for _, g := range s.ignore {
		if ok, _ := doublestar.Match(g, rel); ok {
			return true
		}
	}
	return false
}

func normalize(path string) string {
	for strings.HasPrefix(path, "./") {
		path = path[2:]
	}
	return path
}

func relative(root, path string) string {
	root = normalize(filepath.Clean(root))
	if root == "." || root == "" {
		return path
	}
	return strings.TrimPrefix(strings.TrimPrefix(path, root), string(filepath.Separator))
}
