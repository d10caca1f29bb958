// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cli contains the ebhello subcommands.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws/session"

	"github.com/ebhello/ebhello/internal/pkg/aws/profile"
	"github.com/ebhello/ebhello/internal/pkg/aws/sessions"
	"github.com/ebhello/ebhello/internal/pkg/term/log"
)

// appDescription is attached to the Elastic Beanstalk application on creation.
const appDescription = "Hello world demo application deployed with ebhello."

// Polling deadlines for environment state changes and the endpoint health check.
const (
	waitForEnvironmentTimeout = 25 * time.Minute
	waitForHealthTimeout      = 5 * time.Minute
)

func sessionFromProfile(name string) (*session.Session, error) {
	provider := sessions.NewProvider()
	if name == "" {
		return provider.Default()
	}
	sess, err := provider.FromProfile(name)
	if err != nil {
		return nil, err
	}
	// The default credential chain resolves environment variables before
	// the shared config file, silently shadowing the requested profile.
	if ok, err := sessions.AreCredsFromEnvVars(sess); err == nil && ok {
		log.Warningln(fmt.Sprintf("Credentials from environment variables take priority over profile %s.", name))
	}
	return sess, nil
}

func validateProfile(name string) error {
	if name == "" {
		return nil
	}
	conf, err := profile.NewConfig()
	if err != nil {
		return err
	}
	names := conf.Names()
	for _, n := range names {
		if n == name {
			return nil
		}
	}
	return fmt.Errorf("profile %s not found in the AWS config file; available profiles: %s", name, strings.Join(names, ", "))
}
