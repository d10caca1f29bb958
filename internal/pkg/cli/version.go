// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ebhello/ebhello/internal/pkg/term/log"
	"github.com/ebhello/ebhello/internal/pkg/version"
)

// BuildVersionCmd builds the command to print the binary's version.
func BuildVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(log.OutputWriter, "ebhello version: %s\n", version.Version)
			return nil
		},
	}
}
