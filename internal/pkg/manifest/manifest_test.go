// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	testCases := map[string]struct {
		manifest string

		wantedManifest *Manifest
		wantedErr      string
	}{
		"returns the defaults when no manifest exists": {
			wantedManifest: &Manifest{
				Application:   "hello-world",
				Environment:   "hello-world-env",
				SolutionStack: "64bit Amazon Linux 2 v3.8.4 running Go 1",
				Port:          8080,
			},
		},
		"fills unset fields from the defaults": {
			manifest: `application: demo
cname_prefix: demo-hello
`,
			wantedManifest: &Manifest{
				Application:   "demo",
				Environment:   "hello-world-env",
				CNAMEPrefix:   "demo-hello",
				SolutionStack: "64bit Amazon Linux 2 v3.8.4 running Go 1",
				Port:          8080,
			},
		},
		"keeps every field set in the manifest": {
			manifest: `application: demo
environment: demo-prod
solution_stack: 64bit Amazon Linux 2 v3.9.0 running Go 1
port: 9090
`,
			wantedManifest: &Manifest{
				Application:   "demo",
				Environment:   "demo-prod",
				SolutionStack: "64bit Amazon Linux 2 v3.9.0 running Go 1",
				Port:          9090,
			},
		},
		"returns a wrapped error for malformed yaml": {
			manifest:  `application: [`,
			wantedErr: "unmarshal manifest ebhello.yml",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			fs := afero.NewMemMapFs()
			if tc.manifest != "" {
				require.NoError(t, afero.WriteFile(fs, ManifestName, []byte(tc.manifest), 0644))
			}

			// WHEN
			m, err := Read(fs)

			// THEN
			if tc.wantedErr != "" {
				require.ErrorContains(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantedManifest, m)
		})
	}
}
