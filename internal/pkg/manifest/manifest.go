// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package manifest reads the workspace configuration for ebhello deployments.
package manifest

import (
	"fmt"
	"os"

	"github.com/imdario/mergo"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ManifestName is the file name of the workspace manifest.
const ManifestName = "ebhello.yml"

// Manifest holds the deployment configuration of the hello world application.
type Manifest struct {
	Application   string `yaml:"application"`
	Environment   string `yaml:"environment"`
	CNAMEPrefix   string `yaml:"cname_prefix,omitempty"`
	SolutionStack string `yaml:"solution_stack"`
	Port          int    `yaml:"port"`
}

func defaultManifest() *Manifest {
	return &Manifest{
		Application:   "hello-world",
		Environment:   "hello-world-env",
		SolutionStack: "64bit Amazon Linux 2 v3.8.4 running Go 1",
		Port:          8080,
	}
}

// Write marshals the manifest and writes it to ManifestName in the
// workspace root, replacing any existing file.
func Write(fs afero.Fs, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := afero.WriteFile(fs, ManifestName, data, 0644); err != nil {
		return fmt.Errorf("write manifest %s: %w", ManifestName, err)
	}
	return nil
}

// Read loads ManifestName from the workspace root and merges it over the
// defaults. A missing manifest is not an error: the defaults are returned.
func Read(fs afero.Fs) (*Manifest, error) {
	data, err := afero.ReadFile(fs, ManifestName)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultManifest(), nil
		}
		return nil, fmt.Errorf("read manifest %s: %w", ManifestName, err)
	}
	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest %s: %w", ManifestName, err)
	}
	if err := mergo.Merge(m, defaultManifest()); err != nil {
		return nil, fmt.Errorf("apply default manifest values: %w", err)
	}
	return m, nil
}
