// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateAppName(t *testing.T) {
	testCases := map[string]struct {
		input interface{}

		wantedErrContains string
	}{
		"valid name":           {input: "hello-world"},
		"single char is valid": {input: "a"},
		"empty string":         {input: "", wantedErrContains: "value must not be empty"},
		"not a string":         {input: 42, wantedErrContains: "must be a string"},
		"leading hyphen":       {input: "-hello", wantedErrContains: "must not begin or end with a hyphen"},
		"illegal characters":   {input: "hello world", wantedErrContains: "must contain only letters"},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			err := validateAppName(tc.input)
			if tc.wantedErrContains != "" {
				require.ErrorContains(t, err, tc.wantedErrContains)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateEnvName(t *testing.T) {
	testCases := map[string]struct {
		input interface{}

		wantedErrContains string
	}{
		"valid name":      {input: "hello-world-env"},
		"too short":       {input: "abc", wantedErrContains: "must be 4-40 letters"},
		"empty string":    {input: "", wantedErrContains: "value must not be empty"},
		"trailing hyphen": {input: "hello-", wantedErrContains: "must be 4-40 letters"},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			err := validateEnvName(tc.input)
			if tc.wantedErrContains != "" {
				require.ErrorContains(t, err, tc.wantedErrContains)
				return
			}
			require.NoError(t, err)
		})
	}
}
