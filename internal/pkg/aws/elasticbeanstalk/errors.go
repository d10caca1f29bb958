// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package elasticbeanstalk

import "fmt"

// ErrEnvironmentNotFound occurs when no environment with the given name exists
// in the application.
type ErrEnvironmentNotFound struct {
	App string
	Env string
}

func (e *ErrEnvironmentNotFound) Error() string {
	return fmt.Sprintf("environment %s not found in application %s", e.Env, e.App)
}

// ErrEnvironmentFailed occurs when an environment being waited on transitions
// to a terminal status instead of becoming ready.
type ErrEnvironmentFailed struct {
	Env    string
	Status string
}

func (e *ErrEnvironmentFailed) Error() string {
	return fmt.Sprintf("environment %s reached status %s while waiting for it to become ready", e.Env, e.Status)
}
