// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package elasticbeanstalk provides a client to make API requests to AWS Elastic Beanstalk.
package elasticbeanstalk

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/elasticbeanstalk"
)

const (
	// Environment statuses.
	envStatusReady       = "Ready"
	envStatusTerminating = "Terminating"
	envStatusTerminated  = "Terminated"

	// Environment health colors.
	envHealthGreen = "Green"

	// Option settings applied on environment creation.
	envVarsNamespace = "aws:elasticbeanstalk:application:environment"
	portOptionName   = "PORT"

	envTypeNamespace      = "aws:elasticbeanstalk:environment"
	envTypeOptionName     = "EnvironmentType"
	envTypeSingleInstance = "SingleInstance"

	defaultWaitInterval = 5 * time.Second
)

type api interface {
	CreateApplication(input *elasticbeanstalk.CreateApplicationInput) (*elasticbeanstalk.ApplicationDescriptionMessage, error)
	DescribeApplications(input *elasticbeanstalk.DescribeApplicationsInput) (*elasticbeanstalk.DescribeApplicationsOutput, error)
	DeleteApplication(input *elasticbeanstalk.DeleteApplicationInput) (*elasticbeanstalk.DeleteApplicationOutput, error)
	CreateStorageLocation(input *elasticbeanstalk.CreateStorageLocationInput) (*elasticbeanstalk.CreateStorageLocationOutput, error)
	CreateApplicationVersion(input *elasticbeanstalk.CreateApplicationVersionInput) (*elasticbeanstalk.ApplicationVersionDescriptionMessage, error)
	CreateEnvironment(input *elasticbeanstalk.CreateEnvironmentInput) (*elasticbeanstalk.EnvironmentDescription, error)
	UpdateEnvironment(input *elasticbeanstalk.UpdateEnvironmentInput) (*elasticbeanstalk.EnvironmentDescription, error)
	DescribeEnvironments(input *elasticbeanstalk.DescribeEnvironmentsInput) (*elasticbeanstalk.EnvironmentDescriptionsMessage, error)
	TerminateEnvironment(input *elasticbeanstalk.TerminateEnvironmentInput) (*elasticbeanstalk.EnvironmentDescription, error)
}

// ElasticBeanstalk wraps an AWS Elastic Beanstalk client.
type ElasticBeanstalk struct {
	client       api
	waitInterval time.Duration
}

// New returns an ElasticBeanstalk client configured against the input session.
func New(s *session.Session) *ElasticBeanstalk {
	return &ElasticBeanstalk{
		client:       elasticbeanstalk.New(s),
		waitInterval: defaultWaitInterval,
	}
}

// Environment is a deployed Elastic Beanstalk environment.
type Environment struct {
	Name          string
	ID            string
	AppName       string
	VersionLabel  string
	SolutionStack string
	CNAME         string
	Status        string
	Health        string
	DateUpdated   time.Time
}

// URL returns the public HTTP endpoint of the environment.
func (e *Environment) URL() string {
	return fmt.Sprintf("http://%s", e.CNAME)
}

// IsHealthy returns true when the environment health is Green.
func (e *Environment) IsHealthy() bool {
	return e.Health == envHealthGreen
}

// DeployEnvironmentInput holds the fields needed to create or update an environment.
type DeployEnvironmentInput struct {
	App           string
	Env           string
	VersionLabel  string
	SolutionStack string
	CNAMEPrefix   string
	Port          int
}

// ApplicationExists returns true if an application with the given name exists.
func (eb *ElasticBeanstalk) ApplicationExists(name string) (bool, error) {
	resp, err := eb.client.DescribeApplications(&elasticbeanstalk.DescribeApplicationsInput{
		ApplicationNames: aws.StringSlice([]string{name}),
	})
	if err != nil {
		return false, fmt.Errorf("describe application %s: %w", name, err)
	}
	return len(resp.Applications) > 0, nil
}

// EnsureApplication creates the application unless it already exists, so that
// repeated deployments are idempotent.
func (eb *ElasticBeanstalk) EnsureApplication(name, description string) error {
	exists, err := eb.ApplicationExists(name)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if _, err := eb.client.CreateApplication(&elasticbeanstalk.CreateApplicationInput{
		ApplicationName: aws.String(name),
		Description:     aws.String(description),
	}); err != nil {
		return fmt.Errorf("create application %s: %w", name, err)
	}
	return nil
}

// StorageBucket returns the account's Elastic Beanstalk storage bucket in the
// session's region. The underlying API creates the bucket on first use and
// returns the existing one afterwards.
func (eb *ElasticBeanstalk) StorageBucket() (string, error) {
	resp, err := eb.client.CreateStorageLocation(&elasticbeanstalk.CreateStorageLocationInput{})
	if err != nil {
		return "", fmt.Errorf("create storage location: %w", err)
	}
	return aws.StringValue(resp.S3Bucket), nil
}

// CreateVersion registers an application version backed by a source bundle in S3.
func (eb *ElasticBeanstalk) CreateVersion(app, label, bucket, key string) error {
	if _, err := eb.client.CreateApplicationVersion(&elasticbeanstalk.CreateApplicationVersionInput{
		ApplicationName: aws.String(app),
		VersionLabel:    aws.String(label),
		SourceBundle: &elasticbeanstalk.S3Location{
			S3Bucket: aws.String(bucket),
			S3Key:    aws.String(key),
		},
	}); err != nil {
		return fmt.Errorf("create application version %s: %w", label, err)
	}
	return nil
}

// Environment returns the environment's description.
// An ErrEnvironmentNotFound is returned if the environment does not exist.
func (eb *ElasticBeanstalk) Environment(app, env string) (*Environment, error) {
	resp, err := eb.client.DescribeEnvironments(&elasticbeanstalk.DescribeEnvironmentsInput{
		ApplicationName:  aws.String(app),
		EnvironmentNames: aws.StringSlice([]string{env}),
		IncludeDeleted:   aws.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("describe environment %s: %w", env, err)
	}
	if len(resp.Environments) == 0 {
		return nil, &ErrEnvironmentNotFound{App: app, Env: env}
	}
	return toEnvironment(resp.Environments[0]), nil
}

// DeployEnvironment points the environment at the given version, creating the
// environment first if it does not exist. Returns true if the environment was
// created rather than updated.
func (eb *ElasticBeanstalk) DeployEnvironment(in DeployEnvironmentInput) (bool, error) {
	_, err := eb.Environment(in.App, in.Env)
	var notFound *ErrEnvironmentNotFound
	switch {
	case errors.As(err, &notFound):
		return true, eb.createEnvironment(in)
	case err != nil:
		return false, err
	}
	return false, eb.updateEnvironment(in)
}

// WaitForEnvironment polls the environment until it reaches the Ready status.
func (eb *ElasticBeanstalk) WaitForEnvironment(ctx context.Context, app, env string) (*Environment, error) {
	for {
		e, err := eb.Environment(app, env)
		if err != nil {
			return nil, err
		}
		switch e.Status {
		case envStatusReady:
			return e, nil
		case envStatusTerminating, envStatusTerminated:
			return nil, &ErrEnvironmentFailed{Env: env, Status: e.Status}
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("wait for environment %s: %w", env, ctx.Err())
		case <-time.After(eb.waitInterval):
		}
	}
}

// WaitForTermination polls the environment until it is terminated or no longer listed.
func (eb *ElasticBeanstalk) WaitForTermination(ctx context.Context, app, env string) error {
	for {
		e, err := eb.Environment(app, env)
		var notFound *ErrEnvironmentNotFound
		if errors.As(err, &notFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if e.Status == envStatusTerminated {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for termination of environment %s: %w", env, ctx.Err())
		case <-time.After(eb.waitInterval):
		}
	}
}

// TerminateEnvironment terminates the environment and the resources it runs on.
func (eb *ElasticBeanstalk) TerminateEnvironment(env string) error {
	if _, err := eb.client.TerminateEnvironment(&elasticbeanstalk.TerminateEnvironmentInput{
		EnvironmentName:    aws.String(env),
		TerminateResources: aws.Bool(true),
	}); err != nil {
		return fmt.Errorf("terminate environment %s: %w", env, err)
	}
	return nil
}

// DeleteApplication deletes the application and any versions registered under it.
func (eb *ElasticBeanstalk) DeleteApplication(name string) error {
	if _, err := eb.client.DeleteApplication(&elasticbeanstalk.DeleteApplicationInput{
		ApplicationName:     aws.String(name),
		TerminateEnvByForce: aws.Bool(true),
	}); err != nil {
		return fmt.Errorf("delete application %s: %w", name, err)
	}
	return nil
}

func (eb *ElasticBeanstalk) createEnvironment(in DeployEnvironmentInput) error {
	input := &elasticbeanstalk.CreateEnvironmentInput{
		ApplicationName:   aws.String(in.App),
		EnvironmentName:   aws.String(in.Env),
		SolutionStackName: aws.String(in.SolutionStack),
		VersionLabel:      aws.String(in.VersionLabel),
		OptionSettings: []*elasticbeanstalk.ConfigurationOptionSetting{
			{
				// The platform proxy forwards traffic to the port in the PORT
				// environment variable; the hello world server listens on a
				// fixed port, so the two must agree.
				Namespace:  aws.String(envVarsNamespace),
				OptionName: aws.String(portOptionName),
				Value:      aws.String(strconv.Itoa(in.Port)),
			},
			{
				Namespace:  aws.String(envTypeNamespace),
				OptionName: aws.String(envTypeOptionName),
				Value:      aws.String(envTypeSingleInstance),
			},
		},
	}
	if in.CNAMEPrefix != "" {
		input.CNAMEPrefix = aws.String(in.CNAMEPrefix)
	}
	if _, err := eb.client.CreateEnvironment(input); err != nil {
		return fmt.Errorf("create environment %s: %w", in.Env, err)
	}
	return nil
}

func (eb *ElasticBeanstalk) updateEnvironment(in DeployEnvironmentInput) error {
	if _, err := eb.client.UpdateEnvironment(&elasticbeanstalk.UpdateEnvironmentInput{
		ApplicationName: aws.String(in.App),
		EnvironmentName: aws.String(in.Env),
		VersionLabel:    aws.String(in.VersionLabel),
	}); err != nil {
		return fmt.Errorf("update environment %s: %w", in.Env, err)
	}
	return nil
}

func toEnvironment(d *elasticbeanstalk.EnvironmentDescription) *Environment {
	return &Environment{
		Name:          aws.StringValue(d.EnvironmentName),
		ID:            aws.StringValue(d.EnvironmentId),
		AppName:       aws.StringValue(d.ApplicationName),
		VersionLabel:  aws.StringValue(d.VersionLabel),
		SolutionStack: aws.StringValue(d.SolutionStackName),
		CNAME:         aws.StringValue(d.CNAME),
		Status:        aws.StringValue(d.Status),
		Health:        aws.StringValue(d.Health),
		DateUpdated:   aws.TimeValue(d.DateUpdated),
	}
}
