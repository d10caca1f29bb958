// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ebhello/ebhello/internal/pkg/manifest"
	"github.com/ebhello/ebhello/internal/pkg/term/color"
	"github.com/ebhello/ebhello/internal/pkg/term/log"
	"github.com/ebhello/ebhello/internal/pkg/term/prompt"
)

const (
	initAppPrompt     = "What do you want to name the application?"
	initAppPromptHelp = "The name of the Elastic Beanstalk application that holds the deployed versions."

	initEnvPrompt     = "What do you want to name the environment?"
	initEnvPromptHelp = "The name of the environment the hello world server runs in. Must be 4-40 characters."
)

type initVars struct {
	appName string
	envName string
}

type initOpts struct {
	initVars

	fs     afero.Fs
	prompt prompter

	manifestWriter func(fs afero.Fs, m *manifest.Manifest) error
}

// Validate returns an error if the flag values passed by the user are invalid.
func (o *initOpts) Validate() error {
	if o.appName != "" {
		if err := validateAppName(o.appName); err != nil {
			return err
		}
	}
	if o.envName != "" {
		if err := validateEnvName(o.envName); err != nil {
			return err
		}
	}
	return nil
}

// Ask prompts for the names that were not passed as flags.
func (o *initOpts) Ask() error {
	if o.appName == "" {
		name, err := o.prompt.Get(initAppPrompt, initAppPromptHelp, validateAppName)
		if err != nil {
			return fmt.Errorf("get application name: %w", err)
		}
		o.appName = name
	}
	if o.envName == "" {
		name, err := o.prompt.Get(initEnvPrompt, initEnvPromptHelp, validateEnvName)
		if err != nil {
			return fmt.Errorf("get environment name: %w", err)
		}
		o.envName = name
	}
	return nil
}

// Execute writes the workspace manifest.
func (o *initOpts) Execute() error {
	m, err := manifest.Read(o.fs)
	if err != nil {
		return err
	}
	m.Application = o.appName
	m.Environment = o.envName
	if err := o.manifestWriter(o.fs, m); err != nil {
		return err
	}
	log.Successf("Wrote the manifest for application %s to %s.\n",
		color.HighlightUserInput(o.appName), color.HighlightResource(manifest.ManifestName))
	log.Infoln("Run `ebhello deploy` to create the environment.")
	return nil
}

// BuildInitCmd builds the command to create the workspace manifest.
func BuildInitCmd() *cobra.Command {
	vars := initVars{}
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the workspace manifest for a new application.",
		Long: `Create the workspace manifest for a new application.

Asks for the application and environment names and writes them to ` + manifest.ManifestName + `
in the current directory. The other deployment settings start out with defaults
and can be edited in place.`,
		Example: `
  Create a manifest, answering the prompts.
  /code $ ebhello init

  Create a manifest without prompts.
  /code $ ebhello init --app hello-world --env hello-world-env`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &initOpts{
				initVars: vars,

				fs:             afero.NewOsFs(),
				prompt:         prompt.New(),
				manifestWriter: manifest.Write,
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			if err := opts.Ask(); err != nil {
				return err
			}
			return opts.Execute()
		},
	}
	cmd.Flags().StringVarP(&vars.appName, appFlag, appFlagShort, "", appFlagDescription)
	cmd.Flags().StringVarP(&vars.envName, envFlag, envFlagShort, "", envFlagDescription)
	return cmd
}
