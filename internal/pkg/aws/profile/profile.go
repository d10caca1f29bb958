// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package profile lists the AWS named profiles from a local config file.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

const (
	awsConfigFileEnvVar  = "AWS_CONFIG_FILE"
	defaultConfigPath    = ".aws/config"
	sectionProfilePrefix = "profile "
)

type sectionsLister interface {
	Sections() []string
}

type iniFile struct {
	f *ini.File
}

func (i *iniFile) Sections() []string {
	return i.f.SectionStrings()
}

// Config represents the local AWS config file.
type Config struct {
	f sectionsLister
}

// NewConfig returns the parsed AWS config file.
// The path to the file is looked up from the AWS_CONFIG_FILE environment
// variable, and falls back to $HOME/.aws/config.
func NewConfig() (*Config, error) {
	path := os.Getenv(awsConfigFileEnvVar)
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		path = filepath.Join(home, defaultConfigPath)
	}
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("read AWS config file %s: %w", path, err)
	}
	return &Config{
		f: &iniFile{f: f},
	}, nil
}

// Names returns a list of profile names available in the user's config file.
// An empty slice is returned if there are no profiles.
func (c *Config) Names() []string {
	var profiles []string
	for _, section := range c.f.Sections() {
		if section == ini.DefaultSection {
			continue
		}
		// Named profiles in the config file are declared as "[profile test]".
		profiles = append(profiles, strings.TrimPrefix(section, sectionProfilePrefix))
	}
	return profiles
}
