// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"

	"github.com/ebhello/ebhello/internal/pkg/aws/elasticbeanstalk"
	"github.com/ebhello/ebhello/internal/pkg/aws/s3"
	"github.com/ebhello/ebhello/internal/pkg/bundle"
	"github.com/ebhello/ebhello/internal/pkg/term/prompt"
)

type progress interface {
	Start(label string)
	Stop(label string)
}

type prompter interface {
	Get(message, help string, validator prompt.ValidatorFunc) (string, error)
	Confirm(message, help string) (bool, error)
}

type bundleBuilder interface {
	Build(binPath string) ([]*bundle.File, error)
}

type bundleUploader interface {
	ZipAndUpload(bucket, key string, files ...s3.NamedBinary) (string, error)
}

type bucketEmptier interface {
	EmptyBucket(bucket, prefix string) error
}

type healthChecker interface {
	Wait(ctx context.Context, url string) error
}

type environmentDeployer interface {
	EnsureApplication(name, description string) error
	StorageBucket() (string, error)
	CreateVersion(app, label, bucket, key string) error
	DeployEnvironment(in elasticbeanstalk.DeployEnvironmentInput) (bool, error)
	WaitForEnvironment(ctx context.Context, app, env string) (*elasticbeanstalk.Environment, error)
}

type environmentDescriber interface {
	Environment(app, env string) (*elasticbeanstalk.Environment, error)
}

type environmentTerminator interface {
	environmentDescriber
	ApplicationExists(name string) (bool, error)
	TerminateEnvironment(env string) error
	WaitForTermination(ctx context.Context, app, env string) error
	DeleteApplication(name string) error
	StorageBucket() (string, error)
}
