// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/ebhello/ebhello/internal/pkg/aws/elasticbeanstalk"
	"github.com/ebhello/ebhello/internal/pkg/cli/mocks"
)

func TestStatusOpts_Execute(t *testing.T) {
	mockEnv := &elasticbeanstalk.Environment{
		Name:          "hello-world-env",
		AppName:       "hello-world",
		VersionLabel:  "ebhello-deadbeef",
		SolutionStack: "64bit Amazon Linux 2 v3.8.4 running Go 1",
		CNAME:         "hello-world.us-west-2.elasticbeanstalk.com",
		Status:        "Ready",
		Health:        "Green",
		DateUpdated:   time.Date(2022, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	testCases := map[string]struct {
		shouldOutputJSON bool
		setupMocks       func(m *mocks.MockenvironmentDescriber)

		wantedContent string
		wantedErr     error
	}{
		"renders the environment as a table": {
			setupMocks: func(m *mocks.MockenvironmentDescriber) {
				m.EXPECT().Environment("hello-world", "hello-world-env").Return(mockEnv, nil)
			},
			wantedContent: "hello-world-env",
		},
		"renders the environment as JSON": {
			shouldOutputJSON: true,
			setupMocks: func(m *mocks.MockenvironmentDescriber) {
				m.EXPECT().Environment("hello-world", "hello-world-env").Return(mockEnv, nil)
			},
			wantedContent: `{"application":"hello-world","environment":"hello-world-env","status":"Ready","health":"Green","version":"ebhello-deadbeef","solutionStack":"64bit Amazon Linux 2 v3.8.4 running Go 1","url":"http://hello-world.us-west-2.elasticbeanstalk.com","updated":"2022-08-01T12:00:00Z"}` + "\n",
		},
		"returns the error if the environment does not exist": {
			setupMocks: func(m *mocks.MockenvironmentDescriber) {
				m.EXPECT().Environment("hello-world", "hello-world-env").
					Return(nil, &elasticbeanstalk.ErrEnvironmentNotFound{App: "hello-world", Env: "hello-world-env"})
			},
			wantedErr: errors.New("environment hello-world-env not found in application hello-world"),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDescriber := mocks.NewMockenvironmentDescriber(ctrl)
			tc.setupMocks(mockDescriber)

			buf := &bytes.Buffer{}
			opts := &statusOpts{
				statusVars: statusVars{
					appName:          "hello-world",
					envName:          "hello-world-env",
					shouldOutputJSON: tc.shouldOutputJSON,
				},
				describer: mockDescriber,
				w:         buf,
			}

			// WHEN
			err := opts.Execute()

			// THEN
			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				return
			}
			require.NoError(t, err)
			if tc.shouldOutputJSON {
				require.Equal(t, tc.wantedContent, buf.String())
				return
			}
			require.Contains(t, buf.String(), tc.wantedContent)
		})
	}
}
