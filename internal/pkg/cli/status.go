// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ebhello/ebhello/internal/pkg/aws/elasticbeanstalk"
	"github.com/ebhello/ebhello/internal/pkg/manifest"
	"github.com/ebhello/ebhello/internal/pkg/term/log"
)

// Width of the status table's columns in spaces.
const statusMinCellWidth = 20

type statusVars struct {
	appName          string
	envName          string
	profile          string
	shouldOutputJSON bool
}

type statusOpts struct {
	statusVars

	describer environmentDescriber
	w         io.Writer
}

func newStatusOpts(vars statusVars) (*statusOpts, error) {
	m, err := manifest.Read(afero.NewOsFs())
	if err != nil {
		return nil, err
	}

	sess, err := sessionFromProfile(vars.profile)
	if err != nil {
		return nil, err
	}

	if vars.appName == "" {
		vars.appName = m.Application
	}
	if vars.envName == "" {
		vars.envName = m.Environment
	}
	return &statusOpts{
		statusVars: vars,

		describer: elasticbeanstalk.New(sess),
		w:         log.OutputWriter,
	}, nil
}

// Validate returns an error if the flag values passed by the user are invalid.
func (o *statusOpts) Validate() error {
	if err := validateAppName(o.appName); err != nil {
		return err
	}
	if err := validateEnvName(o.envName); err != nil {
		return err
	}
	return validateProfile(o.profile)
}

// Execute prints the current state of the deployed environment.
func (o *statusOpts) Execute() error {
	env, err := o.describer.Environment(o.appName, o.envName)
	if err != nil {
		return err
	}
	if o.shouldOutputJSON {
		return o.writeJSON(env)
	}
	o.writeHuman(env)
	return nil
}

type envStatus struct {
	Application   string `json:"application"`
	Environment   string `json:"environment"`
	Status        string `json:"status"`
	Health        string `json:"health"`
	Version       string `json:"version"`
	SolutionStack string `json:"solutionStack"`
	URL           string `json:"url"`
	Updated       string `json:"updated"`
}

func (o *statusOpts) writeJSON(env *elasticbeanstalk.Environment) error {
	out := envStatus{
		Application:   env.AppName,
		Environment:   env.Name,
		Status:        env.Status,
		Health:        env.Health,
		Version:       env.VersionLabel,
		SolutionStack: env.SolutionStack,
		URL:           env.URL(),
		Updated:       env.DateUpdated.UTC().Format(time.RFC3339),
	}
	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("marshal environment status: %w", err)
	}
	fmt.Fprintf(o.w, "%s\n", data)
	return nil
}

func (o *statusOpts) writeHuman(env *elasticbeanstalk.Environment) {
	tw := tabwriter.NewWriter(o.w, statusMinCellWidth, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Application\t%s\n", env.AppName)
	fmt.Fprintf(tw, "Environment\t%s\n", env.Name)
	fmt.Fprintf(tw, "Status\t%s\n", env.Status)
	fmt.Fprintf(tw, "Health\t%s\n", env.Health)
	fmt.Fprintf(tw, "Version\t%s\n", env.VersionLabel)
	fmt.Fprintf(tw, "Solution stack\t%s\n", env.SolutionStack)
	fmt.Fprintf(tw, "URL\t%s\n", env.URL())
	fmt.Fprintf(tw, "Updated\t%s\n", humanize.Time(env.DateUpdated))
	tw.Flush()
}

// BuildStatusCmd builds the command to show the state of the deployed environment.
func BuildStatusCmd() *cobra.Command {
	vars := statusVars{}
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the status of the deployed environment.",
		Example: `
  Show the status of the environment from the workspace manifest.
  /code $ ebhello status

  Show the status as JSON.
  /code $ ebhello status --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := newStatusOpts(vars)
			if err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			return opts.Execute()
		},
	}
	cmd.Flags().StringVarP(&vars.appName, appFlag, appFlagShort, "", appFlagDescription)
	cmd.Flags().StringVarP(&vars.envName, envFlag, envFlagShort, "", envFlagDescription)
	cmd.Flags().StringVar(&vars.profile, profileFlag, "", profileFlagDescription)
	cmd.Flags().BoolVar(&vars.shouldOutputJSON, jsonFlag, false, jsonFlagDescription)
	return cmd
}
