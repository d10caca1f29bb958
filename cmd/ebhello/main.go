// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package main contains the root command.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/ebhello/ebhello/internal/pkg/cli"
	"github.com/ebhello/ebhello/internal/pkg/term/color"
	"github.com/ebhello/ebhello/internal/pkg/term/log"
	"github.com/ebhello/ebhello/internal/pkg/version"
)

type actionRecommender interface {
	RecommendActions() string
}

func init() {
	color.DisableColorBasedOnEnvVar()
	cobra.EnableCommandSorting = false // Maintain the order in which we add commands.
}

func main() {
	cmd := buildRootCmd()
	if err := cmd.Execute(); err != nil {
		var ac actionRecommender
		if errors.As(err, &ac) {
			log.Infoln(ac.RecommendActions())
		}
		log.Errorln(err.Error())
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ebhello",
		Short: "Deploy and operate the hello world HTTP server on Elastic Beanstalk.",
		Example: `
  Displays the help menu for the "deploy" command.
  /code $ ebhello deploy --help`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If we don't set a Run() function the help menu doesn't show up.
			// See https://github.com/spf13/cobra/issues/790
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(log.OutputWriter)
	cmd.SetErr(log.DiagnosticWriter)

	// Sets version for --version flag. Version command gives more detailed
	// version information.
	cmd.Version = version.Version
	cmd.SetVersionTemplate("ebhello version: {{.Version}}\n")

	// NOTE: Order for each grouping below is significant in that it affects help menu output ordering.
	// "Getting Started" command group.
	cmd.AddCommand(cli.BuildInitCmd())

	// "Release" command group.
	cmd.AddCommand(cli.BuildPackageCmd())
	cmd.AddCommand(cli.BuildDeployCmd())

	// "Operate" command group.
	cmd.AddCommand(cli.BuildStatusCmd())
	cmd.AddCommand(cli.BuildDeleteCmd())

	// "Settings" command group.
	cmd.AddCommand(cli.BuildVersionCmd())
	cmd.AddCommand(cli.BuildCompletionCmd(cmd))

	return cmd
}
