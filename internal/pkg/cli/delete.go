// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ebhello/ebhello/internal/pkg/aws/elasticbeanstalk"
	"github.com/ebhello/ebhello/internal/pkg/aws/s3"
	"github.com/ebhello/ebhello/internal/pkg/manifest"
	"github.com/ebhello/ebhello/internal/pkg/term/color"
	"github.com/ebhello/ebhello/internal/pkg/term/log"
	termprogress "github.com/ebhello/ebhello/internal/pkg/term/progress"
	"github.com/ebhello/ebhello/internal/pkg/term/prompt"
)

const (
	fmtDeleteConfirmPrompt = "Are you sure you want to delete application %s and environment %s?"
	deleteConfirmHelp      = "The environment is terminated and the application is removed from Elastic Beanstalk."

	fmtDeleteEnvStart    = "Terminating environment %s."
	fmtDeleteEnvFailed   = "Failed to terminate environment %s."
	fmtDeleteEnvComplete = "Terminated environment %s."

	fmtDeleteBucketStart    = "Deleting uploaded source bundles from bucket %s."
	fmtDeleteBucketFailed   = "Failed to delete the uploaded source bundles from bucket %s."
	fmtDeleteBucketComplete = "Deleted the uploaded source bundles from bucket %s."
)

// errDeleteCancelled means the user denied the confirmation prompt.
var errDeleteCancelled = errors.New("delete cancelled - no changes made")

type deleteVars struct {
	appName          string
	envName          string
	profile          string
	skipConfirmation bool
	emptyBucket      bool
}

type deleteOpts struct {
	deleteVars

	terminator environmentTerminator
	emptier    bucketEmptier
	prompt     prompter
	prog       progress
}

func newDeleteOpts(vars deleteVars) (*deleteOpts, error) {
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
	return &deleteOpts{
		deleteVars: vars,

		terminator: elasticbeanstalk.New(sess),
		emptier:    s3.New(sess),
		prompt:     prompt.New(),
		prog:       termprogress.NewSpinner(log.DiagnosticWriter),
	}, nil
}

// Validate returns an error if the flag values passed by the user are invalid.
func (o *deleteOpts) Validate() error {
	if err := validateAppName(o.appName); err != nil {
		return err
	}
	if err := validateEnvName(o.envName); err != nil {
		return err
	}
	return validateProfile(o.profile)
}

// Ask prompts for confirmation unless the user passed --yes.
func (o *deleteOpts) Ask() error {
	if o.skipConfirmation {
		return nil
	}
	confirmed, err := o.prompt.Confirm(
		fmt.Sprintf(fmtDeleteConfirmPrompt, color.HighlightUserInput(o.appName), color.HighlightUserInput(o.envName)),
		deleteConfirmHelp)
	if err != nil {
		return fmt.Errorf("confirm delete: %w", err)
	}
	if !confirmed {
		return errDeleteCancelled
	}
	return nil
}

// Execute terminates the environment and deletes the application.
// Resources that are already gone are skipped.
func (o *deleteOpts) Execute() error {
	if err := o.terminateEnvironment(); err != nil {
		return err
	}
	if err := o.deleteApplication(); err != nil {
		return err
	}
	if o.emptyBucket {
		if err := o.emptyStorageBucket(); err != nil {
			return err
		}
	}
	log.Successf("Deleted application %s.\n", color.HighlightUserInput(o.appName))
	return nil
}

func (o *deleteOpts) terminateEnvironment() error {
	_, err := o.terminator.Environment(o.appName, o.envName)
	if err != nil {
		var notFound *elasticbeanstalk.ErrEnvironmentNotFound
		if errors.As(err, &notFound) {
			log.Infof("Environment %s does not exist, skipping termination.\n", o.envName)
			return nil
		}
		return err
	}

	if err := o.terminator.TerminateEnvironment(o.envName); err != nil {
		return err
	}
	o.prog.Start(fmt.Sprintf(fmtDeleteEnvStart, o.envName))
	ctx, cancel := context.WithTimeout(context.Background(), waitForEnvironmentTimeout)
	defer cancel()
	if err := o.terminator.WaitForTermination(ctx, o.appName, o.envName); err != nil {
		o.prog.Stop(log.Serrorf(fmtDeleteEnvFailed+"\n", o.envName))
		return err
	}
	o.prog.Stop(log.Ssuccessf(fmtDeleteEnvComplete+"\n", o.envName))
	return nil
}

func (o *deleteOpts) deleteApplication() error {
	exists, err := o.terminator.ApplicationExists(o.appName)
	if err != nil {
		return err
	}
	if !exists {
		log.Infof("Application %s does not exist, skipping deletion.\n", o.appName)
		return nil
	}
	return o.terminator.DeleteApplication(o.appName)
}

func (o *deleteOpts) emptyStorageBucket() error {
	bucket, err := o.terminator.StorageBucket()
	if err != nil {
		return err
	}
	o.prog.Start(fmt.Sprintf(fmtDeleteBucketStart, bucket))
	if err := o.emptier.EmptyBucket(bucket, bundleKeyPrefix+"/"); err != nil {
		o.prog.Stop(log.Serrorf(fmtDeleteBucketFailed+"\n", bucket))
		return err
	}
	o.prog.Stop(log.Ssuccessf(fmtDeleteBucketComplete+"\n", bucket))
	return nil
}

// BuildDeleteCmd builds the command to delete the deployed application.
func BuildDeleteCmd() *cobra.Command {
	vars := deleteVars{}
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Terminate the environment and delete the application.",
		Example: `
  Delete the application and environment from the workspace manifest.
  /code $ ebhello delete

  Delete without a confirmation prompt and empty the storage bucket.
  /code $ ebhello delete --yes --empty-bucket`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := newDeleteOpts(vars)
			if err != nil {
				return err
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
	cmd.Flags().StringVar(&vars.profile, profileFlag, "", profileFlagDescription)
	cmd.Flags().BoolVar(&vars.skipConfirmation, yesFlag, false, yesFlagDescription)
	cmd.Flags().BoolVar(&vars.emptyBucket, emptyBucketFlag, false, emptyBucketFlagDescription)
	return cmd
}
