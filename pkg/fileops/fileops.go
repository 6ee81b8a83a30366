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

// Package fileops is the single seam through which regroup mutates the
// filesystem. Everything that creates directories, renames, copies or removes
// files goes through a Handler so tests can swap in a recording double.
package fileops

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// 🗂️ Handler performs filesystem mutations
type Handler interface {
	// MkdirAll creates path and any missing parents; existing directories are not an error
	MkdirAll(path string, perm os.FileMode) error
	// Rename moves from to to in a single step
	Rename(from, to string) error
	// Copy writes the content of from to to, replacing to if it exists.
	// Copying a file onto itself is an error.
	Copy(from, to string) (int64, error)
	// Remove deletes a single file
	Remove(path string) error
}

// 🏭 New returns a Handler backed by fs
func New(fs afero.Fs) Handler {
	return &aferoHandler{fs: fs}
}

// 🏭 NewOS returns a Handler backed by the real filesystem
func NewOS() Handler {
	return New(afero.NewOsFs())
}

type aferoHandler struct {
	fs afero.Fs
}

func (h *aferoHandler) MkdirAll(path string, perm os.FileMode) error {
	return h.fs.MkdirAll(path, perm)
}

func (h *aferoHandler) Rename(from, to string) error {
	return h.fs.Rename(from, to)
}

func (h *aferoHandler) Remove(path string) error {
	return h.fs.Remove(path)
}

func (h *aferoHandler) Copy(from, to string) (int64, error) {
	if filepath.Clean(from) == filepath.Clean(to) {
		return 0, errors.Errorf("source and destination are the same file")
	}

	src, err := h.fs.Open(from)
	if err != nil {
		return 0, errors.Errorf("opening source: %w", err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return 0, errors.Errorf("reading source info: %w", err)
	}
	if info.IsDir() {
		return 0, errors.Errorf("source is a directory")
	}

	// opening the destination truncates it, which would empty a shared source
	if existing, err := h.fs.Stat(to); err == nil && os.SameFile(info, existing) {
		return 0, errors.Errorf("source and destination are the same file")
	}

	dst, err := h.fs.OpenFile(to, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return 0, errors.Errorf("creating destination: %w", err)
	}

	n, err := io.Copy(dst, src)
	if err != nil {
		dst.Close()
		return n, errors.Errorf("copying content: %w", err)
	}

	if err := dst.Close(); err != nil {
		return n, errors.Errorf("closing destination: %w", err)
	}

	return n, nil
}
