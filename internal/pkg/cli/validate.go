// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	errValueEmpty = errors.New("value must not be empty")

	// Elastic Beanstalk environment names are 4-40 characters of letters,
	// digits, and hyphens, and cannot begin or end with a hyphen.
	envNameRegexp = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{2,38}[a-zA-Z0-9]$`)
	appNameRegexp = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,98}[a-zA-Z0-9])?$`)
)

func validateAppName(val interface{}) error {
	name, ok := val.(string)
	if !ok {
		return fmt.Errorf("value %v must be a string", val)
	}
	if name == "" {
		return errValueEmpty
	}
	if !appNameRegexp.MatchString(name) {
		return fmt.Errorf("application name %s must contain only letters, digits, and hyphens, and must not begin or end with a hyphen", name)
	}
	return nil
}

func validateEnvName(val interface{}) error {
	name, ok := val.(string)
	if !ok {
		return fmt.Errorf("value %v must be a string", val)
	}
	if name == "" {
		return errValueEmpty
	}
	if !envNameRegexp.MatchString(name) {
		return fmt.Errorf("environment name %s must be 4-40 letters, digits, or hyphens, and must not begin or end with a hyphen", name)
	}
	return nil
}
