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
package scan_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/regroup/pkg/errs"
	"github.com/walteh/regroup/pkg/scan"
)

// 🧪 deniedFs fails to open one directory, like a permission-denied read
type deniedFs struct {
	afero.Fs
	denied string
}

func (d *deniedFs) Open(name string) (afero.File, error) {
	if filepath.Clean(name) == d.denied {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return d.Fs.Open(name)
}

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.TraceLevel)
	return logger.WithContext(context.Background())
}

func writeTree(t *testing.T, fs afero.Fs, files ...string) {
	t.Helper()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, f, []byte(f), 0o644))
	}
}

func TestScan(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, fs afero.Fs)
		root  string
		opts  []scan.Option
		want  []string
	}{
		{
			name: "nested_tree",
			setup: func(t *testing.T, fs afero.Fs) {
				writeTree(t, fs, "src/a.bin", "src/sub/b.bin", "src/c.d")
			},
			root: "src",
			want: []string{"src/a.bin", "src/c.d", "src/sub/b.bin"},
		},
		{
			name: "leading_dot_slash_is_dropped",
			setup: func(t *testing.T, fs afero.Fs) {
				writeTree(t, fs, "src/a.bin")
			},
			root: "./src",
			want: []string{"src/a.bin"},
		},
		{
			name: "empty_directories_are_skipped",
			setup: func(t *testing.T, fs afero.Fs) {
				writeTree(t, fs, "src/a.bin")
				require.NoError(t, fs.MkdirAll("src/empty/deeper", 0o755))
			},
			root: "src",
			want: []string{"src/a.bin"},
		},
		{
			name: "file_root_is_its_own_entry",
			setup: func(t *testing.T, fs afero.Fs) {
				writeTree(t, fs, "src/a.bin")
			},
			root: "src/a.bin",
			want: []string{"src/a.bin"},
		},
		{
			name: "ignore_globs",
			setup: func(t *testing.T, fs afero.Fs) {
				writeTree(t, fs, "src/a.bin", "src/.git/HEAD", "src/sub/b.tmp", "src/sub/c.bin")
			},
			root: "src",
			opts: []scan.Option{scan.WithIgnore(".git", "**/*.tmp")},
			want: []string{"src/a.bin", "src/sub/c.bin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			tt.setup(t, fs)

			got, err := scan.Scan(testContext(t), fs, tt.root, tt.opts...)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestScanUnreadableDirectoryBecomesEntry(t *testing.T) {
	base := afero.NewMemMapFs()
	writeTree(t, base, "src/a.bin", "src/locked/secret.bin", "src/open/b.bin")

	fs := &deniedFs{Fs: base, denied: filepath.Join("src", "locked")}

	got, err := scan.Scan(testContext(t), fs, "src")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"src/a.bin", "src/locked", "src/open/b.bin"}, got)
}

func TestScanMissingRoot(t *testing.T) {
	_, err := scan.Scan(testContext(t), afero.NewMemMapFs(), "nowhere")
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestScanInvalidIgnore(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTree(t, fs, "src/a.bin")

	_, err := scan.Scan(testContext(t), fs, "src", scan.WithIgnore("[unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ignore pattern")
}

func TestScanCancelled(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTree(t, fs, "src/a.bin")

	ctx, cancel := context.WithCancel(testContext(t))
	cancel()

	_, err := scan.Scan(ctx, fs, "src")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScanOS(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.bin"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b.bin"), nil, 0o644))
	require.NoError(t, os.Symlink(filepath.Join(dir, "sub"), filepath.Join(dir, "link")))

	got, err := scan.Scan(testContext(t), afero.NewOsFs(), dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.bin"),
		filepath.Join(dir, "link", "b.bin"),
		filepath.Join(dir, "sub", "b.bin"),
	}, got)
}

func TestScanOSSymlinks(t *testing.T) {
	tests := []struct {
		name     string
		link     func(dir string) (target, name string)
		validate func(t *testing.T, dir string, got []string)
	}{
		{
			name: "dangling_link_is_an_entry",
			link: func(dir string) (string, string) {
				return filepath.Join(dir, "missing"), filepath.Join(dir, "dangling")
			},
			validate: func(t *testing.T, dir string, got []string) {
				assert.ElementsMatch(t, []string{filepath.Join(dir, "a.bin"), filepath.Join(dir, "dangling")}, got)
			},
		},
		{
			name: "self_referencing_link_does_not_abort",
			link: func(dir string) (string, string) {
				return ".", filepath.Join(dir, "self")
			},
			validate: func(t *testing.T, dir string, got []string) {
				assert.Contains(t, got, filepath.Join(dir, "a.bin"))
				assert.Contains(t, got, filepath.Join(dir, "self", "a.bin"))

				leaf := false
				for _, p := range got {
					if filepath.Base(p) == "self" {
						leaf = true
					}
				}
				assert.True(t, leaf, "the link that can no longer be followed is kept as an entry")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "a.bin"), nil, 0o644))
			target, name := tt.link(dir)
			require.NoError(t, os.Symlink(target, name))

			got, err := scan.Scan(testContext(t), afero.NewOsFs(), dir)
			require.NoError(t, err)
			tt.validate(t, dir, got)
		})
	}
}
