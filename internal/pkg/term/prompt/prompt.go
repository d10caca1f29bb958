// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package prompt provides functionality to retrieve free-form text and
// confirmation input from the user via a terminal.
package prompt

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
)

// Prompt abstracts the survey.Ask function.
type Prompt func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// ValidatorFunc defines the function signature for validating inputs.
type ValidatorFunc func(interface{}) error

// New returns a Prompt with default configuration.
func New() Prompt {
	return survey.AskOne
}

// Get prompts the user for free-form text input.
func (p Prompt) Get(message, help string, validator ValidatorFunc) (string, error) {
	input := &survey.Input{
		Message: message,
		Help:    help,
	}
	var result string
	err := p(input, &result, stdio(), validatorOpt(validator))
	return result, err
}

// Confirm prompts the user with a yes/no question.
func (p Prompt) Confirm(message, help string) (bool, error) {
	confirm := &survey.Confirm{
		Message: message,
		Help:    help,
		Default: false,
	}
	var result bool
	err := p(confirm, &result, stdio())
	return result, err
}

func stdio() survey.AskOpt {
	return survey.WithStdio(os.Stdin, os.Stderr, os.Stderr)
}

func validatorOpt(validate ValidatorFunc) survey.AskOpt {
	if validate == nil {
		return survey.WithValidator(func(interface{}) error { return nil })
	}
	return survey.WithValidator(survey.Validator(validate))
}
