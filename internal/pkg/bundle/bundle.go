// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package bundle assembles the source bundle deployed to the managed environment.
package bundle

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/spf13/afero"
)

const (
	// The Go platform runs the executable named by the Procfile from the bundle root.
	binaryName   = "application"
	procfileName = "Procfile"
	procfile     = "web: ./application\n"
)

// File is a named file belonging to the source bundle.
type File struct {
	name    string
	content []byte
}

// NewFile returns a File with the given name and content.
func NewFile(name string, content []byte) *File {
	return &File{
		name:    name,
		content: content,
	}
}

// Name returns the file's name within the bundle.
func (f *File) Name() string {
	return f.name
}

// Content returns the file's bytes.
func (f *File) Content() []byte {
	return f.content
}

// Bundle builds source bundles out of compiled server binaries.
type Bundle struct {
	fs afero.Fs
}

// New returns a Bundle that reads binaries from the given filesystem.
func New(fs afero.Fs) *Bundle {
	return &Bundle{
		fs: fs,
	}
}

// Build reads the compiled server binary and returns the files of the source
// bundle: the binary renamed to "application" and a Procfile that starts it.
func (b *Bundle) Build(binPath string) ([]*File, error) {
	data, err := afero.ReadFile(b.fs, binPath)
	if err != nil {
		return nil, fmt.Errorf("read binary %s: %w", binPath, err)
	}
	return []*File{
		NewFile(binaryName, data),
		NewFile(procfileName, []byte(procfile)),
	}, nil
}

// Zip writes the files as a zip archive to w.
func Zip(w io.Writer, files ...*File) error {
	zw := zip.NewWriter(w)
	for _, file := range files {
		f, err := zw.Create(file.Name())
		if err != nil {
			return fmt.Errorf("create zip file %s: %w", file.Name(), err)
		}
		if _, err := f.Write(file.Content()); err != nil {
			return fmt.Errorf("write zip file %s: %w", file.Name(), err)
		}
	}
	return zw.Close()
}

// Size returns the total size in bytes of the bundle's files before compression.
func Size(files []*File) int64 {
	var total int64
	for _, file := range files {
		total += int64(len(file.Content()))
	}
	return total
}
