// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
)

type shellCompleter interface {
	GenBashCompletion(w io.Writer) error
	GenZshCompletion(w io.Writer) error
}

type completionOpts struct {
	shell string // must be "bash" or "zsh"

	w         io.Writer
	completer shellCompleter
}

// Validate returns an error if the shell is not "bash" or "zsh".
func (o *completionOpts) Validate() error {
	if o.shell == "bash" {
		return nil
	}
	if o.shell == "zsh" {
		return nil
	}
	return errors.New("shell must be bash or zsh")
}

// Execute writes the completion code to the writer.
// This method assumes that Validate() was called prior to invocation.
func (o *completionOpts) Execute() error {
	if o.shell == "bash" {
		return o.completer.GenBashCompletion(o.w)
	}
	return o.completer.GenZshCompletion(o.w)
}

// BuildCompletionCmd returns the command to output shell completion code for the specified shell (bash or zsh).
func BuildCompletionCmd(rootCmd *cobra.Command) *cobra.Command {
	opts := &completionOpts{}
	cmd := &cobra.Command{
		Use:   "completion [shell]",
		Short: "Output shell completion code.",
		Long: `Output shell completion code for bash or zsh.
The code must be evaluated to provide interactive completion of commands.`,
		Example: `
  Install zsh completion
  /code $ source <(ebhello completion zsh)
  /code $ ebhello completion zsh > "${fpath[1]}/_ebhello" # to autoload on startup

  Install bash completion on linux
  /code $ source <(ebhello completion bash)
  /code $ ebhello completion bash > ebhello.sh
  /code $ sudo mv ebhello.sh /etc/bash_completion.d/ebhello`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			opts.shell = args[0]
			return opts.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.w = os.Stdout
			opts.completer = rootCmd
			return opts.Execute()
		},
	}
	return cmd
}
