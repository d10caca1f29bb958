// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

// Long flag names.
const (
	// Common flags.
	appFlag     = "app"
	envFlag     = "env"
	profileFlag = "profile"
	yesFlag     = "yes"
	jsonFlag    = "json"

	// Command specific flags.
	binFlag         = "bin"
	outputDirFlag   = "output-dir"
	emptyBucketFlag = "empty-bucket"
)

// Short flag names.
// A short flag only exists if the flag is mandatory by the command.
const (
	appFlagShort = "a"
	envFlagShort = "e"
)

// Descriptions for flags.
const (
	appFlagDescription     = "Name of the application. Overrides the manifest."
	envFlagDescription     = "Name of the environment. Overrides the manifest."
	profileFlagDescription = "Name of the AWS profile."
	yesFlagDescription     = "Skips confirmation prompt."
	jsonFlagDescription    = "Optional. Outputs in JSON format."

	binFlagDescription         = "Path to the compiled helloworld binary."
	outputDirFlagDescription   = "Directory the source bundle is written to."
	emptyBucketFlagDescription = "Optional. Also deletes the uploaded source bundles from the storage bucket."
)

// Default flag values.
const (
	defaultBinPath   = "bin/helloworld"
	defaultOutputDir = "dist"
)
