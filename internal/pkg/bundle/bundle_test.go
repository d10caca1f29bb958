// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package bundle

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestBundle_Build(t *testing.T) {
	testCases := map[string]struct {
		inBinPath string
		setupFs   func(fs afero.Fs)

		wantedNames []string
		wantedErr   string
	}{
		"returns the binary and a Procfile": {
			inBinPath: "bin/helloworld",
			setupFs: func(fs afero.Fs) {
				require.NoError(t, afero.WriteFile(fs, "bin/helloworld", []byte("binary"), 0755))
			},

			wantedNames: []string{"application", "Procfile"},
		},
		"wraps the error when the binary is missing": {
			inBinPath: "bin/helloworld",
			setupFs:   func(fs afero.Fs) {},

			wantedErr: "read binary bin/helloworld",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			fs := afero.NewMemMapFs()
			tc.setupFs(fs)
			b := New(fs)

			// WHEN
			files, err := b.Build(tc.inBinPath)

			// THEN
			if tc.wantedErr != "" {
				require.ErrorContains(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
			var names []string
			for _, f := range files {
				names = append(names, f.Name())
			}
			require.Equal(t, tc.wantedNames, names)
		})
	}
}

func TestZip(t *testing.T) {
	// GIVEN
	files := []*File{
		{name: "application", content: []byte("binary")},
		{name: "Procfile", content: []byte("web: ./application\n")},
	}
	buf := new(bytes.Buffer)

	// WHEN
	err := Zip(buf, files...)

	// THEN
	require.NoError(t, err)
	r, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, r.File, 2)
	require.Equal(t, "application", r.File[0].Name)
	require.Equal(t, "Procfile", r.File[1].Name)
}

func TestSize(t *testing.T) {
	files := []*File{
		{name: "application", content: []byte("binary")},
		{name: "Procfile", content: []byte("web\n")},
	}
	require.Equal(t, int64(10), Size(files))
}
