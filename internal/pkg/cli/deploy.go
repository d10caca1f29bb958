// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ebhello/ebhello/internal/pkg/aws/elasticbeanstalk"
	"github.com/ebhello/ebhello/internal/pkg/aws/s3"
	"github.com/ebhello/ebhello/internal/pkg/bundle"
	"github.com/ebhello/ebhello/internal/pkg/healthcheck"
	"github.com/ebhello/ebhello/internal/pkg/manifest"
	"github.com/ebhello/ebhello/internal/pkg/term/color"
	"github.com/ebhello/ebhello/internal/pkg/term/log"
	termprogress "github.com/ebhello/ebhello/internal/pkg/term/progress"
)

const (
	bundleFileName = "bundle.zip"

	// All uploaded source bundles live under this prefix in the shared
	// storage bucket, so teardown can empty it without touching keys
	// owned by other applications.
	bundleKeyPrefix = "manual"
)

const (
	fmtDeployUploadStart    = "Uploading the source bundle to bucket %s."
	fmtDeployUploadFailed   = "Failed to upload the source bundle to bucket %s."
	fmtDeployUploadComplete = "Uploaded the source bundle to bucket %s."

	fmtDeployEnvCreateStart = "Creating environment %s. This may take a few minutes."
	fmtDeployEnvUpdateStart = "Updating environment %s to version %s."
	fmtDeployEnvFailed      = "Failed to deploy environment %s."
	fmtDeployEnvComplete    = "Environment %s is ready."

	fmtDeployHealthStart    = "Waiting for %s to answer requests."
	fmtDeployHealthFailed   = "The deployed endpoint %s did not answer in time."
	fmtDeployHealthComplete = "The deployed endpoint %s answers with 200 OK."
)

type deployVars struct {
	appName string
	envName string
	profile string
	binPath string
}

type deployOpts struct {
	// Resolved configuration: flag values take precedence over the manifest.
	deployVars
	cnamePrefix   string
	solutionStack string
	port          int

	fs       afero.Fs
	builder  bundleBuilder
	uploader bundleUploader
	deployer environmentDeployer
	checker  healthChecker
	prog     progress
}

func newDeployOpts(vars deployVars) (*deployOpts, error) {
	fs := afero.NewOsFs()
	m, err := manifest.Read(fs)
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
	return &deployOpts{
		deployVars:    vars,
		cnamePrefix:   m.CNAMEPrefix,
		solutionStack: m.SolutionStack,
		port:          m.Port,

		fs:       fs,
		builder:  bundle.New(fs),
		uploader: s3.New(sess),
		deployer: elasticbeanstalk.New(sess),
		checker:  healthcheck.New(),
		prog:     termprogress.NewSpinner(log.DiagnosticWriter),
	}, nil
}

// Validate returns an error if the flag values passed by the user are invalid.
func (o *deployOpts) Validate() error {
	if err := validateAppName(o.appName); err != nil {
		return err
	}
	if err := validateEnvName(o.envName); err != nil {
		return err
	}
	if err := validateProfile(o.profile); err != nil {
		return err
	}
	if _, err := o.fs.Stat(o.binPath); err != nil {
		return fmt.Errorf("stat binary %s: %w", o.binPath, err)
	}
	return nil
}

// Execute packages the binary, uploads it, and rolls the environment to the new version.
func (o *deployOpts) Execute() error {
	files, err := o.builder.Build(o.binPath)
	if err != nil {
		return err
	}
	log.Infof("Packaged %s into a %s source bundle.\n",
		color.HighlightResource(o.binPath), humanize.Bytes(uint64(bundle.Size(files))))

	bucket, err := o.deployer.StorageBucket()
	if err != nil {
		return err
	}

	key := fmt.Sprintf("%s/%s/%s", bundleKeyPrefix, uuid.New().String(), bundleFileName)
	named := make([]s3.NamedBinary, len(files))
	for i, f := range files {
		named[i] = f
	}
	o.prog.Start(fmt.Sprintf(fmtDeployUploadStart, bucket))
	if _, err := o.uploader.ZipAndUpload(bucket, key, named...); err != nil {
		o.prog.Stop(log.Serrorf(fmtDeployUploadFailed+"\n", bucket))
		return err
	}
	o.prog.Stop(log.Ssuccessf(fmtDeployUploadComplete+"\n", bucket))

	if err := o.deployer.EnsureApplication(o.appName, appDescription); err != nil {
		return err
	}

	label := fmt.Sprintf("ebhello-%s", uuid.New().String()[:8])
	if err := o.deployer.CreateVersion(o.appName, label, bucket, key); err != nil {
		return err
	}

	created, err := o.deployer.DeployEnvironment(elasticbeanstalk.DeployEnvironmentInput{
		App:           o.appName,
		Env:           o.envName,
		VersionLabel:  label,
		SolutionStack: o.solutionStack,
		CNAMEPrefix:   o.cnamePrefix,
		Port:          o.port,
	})
	if err != nil {
		return err
	}
	if created {
		o.prog.Start(fmt.Sprintf(fmtDeployEnvCreateStart, o.envName))
	} else {
		o.prog.Start(fmt.Sprintf(fmtDeployEnvUpdateStart, o.envName, label))
	}

	ctx, cancel := context.WithTimeout(context.Background(), waitForEnvironmentTimeout)
	defer cancel()
	env, err := o.deployer.WaitForEnvironment(ctx, o.appName, o.envName)
	if err != nil {
		o.prog.Stop(log.Serrorf(fmtDeployEnvFailed+"\n", o.envName))
		return err
	}
	o.prog.Stop(log.Ssuccessf(fmtDeployEnvComplete+"\n", o.envName))
	if !env.IsHealthy() {
		log.Warningln(fmt.Sprintf("Environment %s is ready but its health is %s.", o.envName, env.Health))
	}

	o.prog.Start(fmt.Sprintf(fmtDeployHealthStart, env.URL()))
	healthCtx, healthCancel := context.WithTimeout(context.Background(), waitForHealthTimeout)
	defer healthCancel()
	if err := o.checker.Wait(healthCtx, env.URL()); err != nil {
		o.prog.Stop(log.Serrorf(fmtDeployHealthFailed+"\n", env.URL()))
		return err
	}
	o.prog.Stop(log.Ssuccessf(fmtDeployHealthComplete+"\n", env.URL()))

	log.Successf("Deployed %s at %s.\n", color.HighlightUserInput(o.appName), color.HighlightResource(env.URL()))
	return nil
}

// BuildDeployCmd builds the command to deploy the hello world server.
func BuildDeployCmd() *cobra.Command {
	vars := deployVars{}
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Package the hello world server and deploy it to an environment.",
		Long: `Package the hello world server and deploy it to an environment.

Uploads the source bundle to the storage bucket, registers a new application
version, and creates the environment if it does not exist yet. Existing
environments are updated in place.`,
		Example: `
  Deploy with the settings from the workspace manifest.
  /code $ ebhello deploy

  Deploy to a different environment with a named profile.
  /code $ ebhello deploy --env hello-world-staging --profile dev`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := newDeployOpts(vars)
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
	cmd.Flags().StringVar(&vars.binPath, binFlag, defaultBinPath, binFlagDescription)
	return cmd
}
