// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/ebhello/ebhello/internal/pkg/aws/elasticbeanstalk"
	"github.com/ebhello/ebhello/internal/pkg/bundle"
	"github.com/ebhello/ebhello/internal/pkg/cli/mocks"
)

func TestDeployOpts_Validate(t *testing.T) {
	testCases := map[string]struct {
		inAppName string
		inEnvName string
		inBinPath string

		wantedErrContains string
	}{
		"valid configuration": {
			inAppName: "hello-world",
			inEnvName: "hello-world-env",
			inBinPath: "bin/helloworld",
		},
		"invalid application name": {
			inAppName: "hello world",
			inEnvName: "hello-world-env",
			inBinPath: "bin/helloworld",

			wantedErrContains: "must contain only letters",
		},
		"invalid environment name": {
			inAppName: "hello-world",
			inEnvName: "abc",
			inBinPath: "bin/helloworld",

			wantedErrContains: "must be 4-40 letters",
		},
		"missing binary": {
			inAppName: "hello-world",
			inEnvName: "hello-world-env",
			inBinPath: "bin/missing",

			wantedErrContains: "stat binary bin/missing",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "bin/helloworld", []byte("binary"), 0755))
			opts := &deployOpts{
				deployVars: deployVars{
					appName: tc.inAppName,
					envName: tc.inEnvName,
					binPath: tc.inBinPath,
				},
				fs: fs,
			}

			// WHEN
			err := opts.Validate()

			// THEN
			if tc.wantedErrContains != "" {
				require.ErrorContains(t, err, tc.wantedErrContains)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDeployOpts_Execute(t *testing.T) {
	mockFiles := []*bundle.File{
		bundle.NewFile("application", []byte("binary")),
		bundle.NewFile("Procfile", []byte("web: ./application\n")),
	}
	mockEnv := &elasticbeanstalk.Environment{
		Name:   "hello-world-env",
		CNAME:  "hello-world.us-west-2.elasticbeanstalk.com",
		Status: "Ready",
		Health: "Green",
	}

	testCases := map[string]struct {
		setupMocks func(m deployMocks)

		wantedErr error
	}{
		"deploys a new environment end to end": {
			setupMocks: func(m deployMocks) {
				m.builder.EXPECT().Build("bin/helloworld").Return(mockFiles, nil)
				m.deployer.EXPECT().StorageBucket().Return("elasticbeanstalk-us-west-2-1111", nil)
				m.uploader.EXPECT().
					ZipAndUpload("elasticbeanstalk-us-west-2-1111", gomock.Any(), gomock.Any(), gomock.Any()).
					Return("url", nil)
				m.deployer.EXPECT().EnsureApplication("hello-world", appDescription).Return(nil)
				m.deployer.EXPECT().CreateVersion("hello-world", gomock.Any(), "elasticbeanstalk-us-west-2-1111", gomock.Any()).Return(nil)
				m.deployer.EXPECT().DeployEnvironment(gomock.Any()).Return(true, nil)
				m.deployer.EXPECT().WaitForEnvironment(gomock.Any(), "hello-world", "hello-world-env").Return(mockEnv, nil)
				m.checker.EXPECT().Wait(gomock.Any(), mockEnv.URL()).Return(nil)
			},
		},
		"returns a wrapped error if the build fails": {
			setupMocks: func(m deployMocks) {
				m.builder.EXPECT().Build("bin/helloworld").Return(nil, errors.New("some error"))
			},
			wantedErr: errors.New("some error"),
		},
		"returns the error if the upload fails": {
			setupMocks: func(m deployMocks) {
				m.builder.EXPECT().Build("bin/helloworld").Return(mockFiles, nil)
				m.deployer.EXPECT().StorageBucket().Return("bucket", nil)
				m.uploader.EXPECT().
					ZipAndUpload("bucket", gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("upload bundle.zip to bucket bucket: some error"))
			},
			wantedErr: errors.New("upload bundle.zip to bucket bucket: some error"),
		},
		"returns the error if the environment does not stabilize": {
			setupMocks: func(m deployMocks) {
				m.builder.EXPECT().Build("bin/helloworld").Return(mockFiles, nil)
				m.deployer.EXPECT().StorageBucket().Return("bucket", nil)
				m.uploader.EXPECT().
					ZipAndUpload("bucket", gomock.Any(), gomock.Any(), gomock.Any()).
					Return("url", nil)
				m.deployer.EXPECT().EnsureApplication("hello-world", appDescription).Return(nil)
				m.deployer.EXPECT().CreateVersion("hello-world", gomock.Any(), "bucket", gomock.Any()).Return(nil)
				m.deployer.EXPECT().DeployEnvironment(gomock.Any()).Return(false, nil)
				m.deployer.EXPECT().WaitForEnvironment(gomock.Any(), "hello-world", "hello-world-env").
					Return(nil, errors.New("environment hello-world-env is in state Terminated"))
			},
			wantedErr: errors.New("environment hello-world-env is in state Terminated"),
		},
		"returns the error if the endpoint never answers": {
			setupMocks: func(m deployMocks) {
				m.builder.EXPECT().Build("bin/helloworld").Return(mockFiles, nil)
				m.deployer.EXPECT().StorageBucket().Return("bucket", nil)
				m.uploader.EXPECT().
					ZipAndUpload("bucket", gomock.Any(), gomock.Any(), gomock.Any()).
					Return("url", nil)
				m.deployer.EXPECT().EnsureApplication("hello-world", appDescription).Return(nil)
				m.deployer.EXPECT().CreateVersion("hello-world", gomock.Any(), "bucket", gomock.Any()).Return(nil)
				m.deployer.EXPECT().DeployEnvironment(gomock.Any()).Return(true, nil)
				m.deployer.EXPECT().WaitForEnvironment(gomock.Any(), "hello-world", "hello-world-env").Return(mockEnv, nil)
				m.checker.EXPECT().Wait(gomock.Any(), mockEnv.URL()).Return(errors.New("some error"))
			},
			wantedErr: errors.New("some error"),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := deployMocks{
				builder:  mocks.NewMockbundleBuilder(ctrl),
				uploader: mocks.NewMockbundleUploader(ctrl),
				deployer: mocks.NewMockenvironmentDeployer(ctrl),
				checker:  mocks.NewMockhealthChecker(ctrl),
				prog:     mocks.NewMockprogress(ctrl),
			}
			m.prog.EXPECT().Start(gomock.Any()).AnyTimes()
			m.prog.EXPECT().Stop(gomock.Any()).AnyTimes()
			tc.setupMocks(m)

			opts := &deployOpts{
				deployVars: deployVars{
					appName: "hello-world",
					envName: "hello-world-env",
					binPath: "bin/helloworld",
				},
				solutionStack: "64bit Amazon Linux 2 v3.8.4 running Go 1",
				port:          8080,

				builder:  m.builder,
				uploader: m.uploader,
				deployer: m.deployer,
				checker:  m.checker,
				prog:     m.prog,
			}

			// WHEN
			err := opts.Execute()

			// THEN
			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}

type deployMocks struct {
	builder  *mocks.MockbundleBuilder
	uploader *mocks.MockbundleUploader
	deployer *mocks.MockenvironmentDeployer
	checker  *mocks.MockhealthChecker
	prog     *mocks.Mockprogress
}
