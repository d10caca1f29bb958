// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ebhello/ebhello/internal/pkg/bundle"
	"github.com/ebhello/ebhello/internal/pkg/term/color"
	"github.com/ebhello/ebhello/internal/pkg/term/log"
)

type packageVars struct {
	binPath   string
	outputDir string
}

type packageOpts struct {
	packageVars

	fs      afero.Fs
	builder bundleBuilder
}

func newPackageOpts(vars packageVars) *packageOpts {
	fs := afero.NewOsFs()
	return &packageOpts{
		packageVars: vars,

		fs:      fs,
		builder: bundle.New(fs),
	}
}

// Validate returns an error if the flag values passed by the user are invalid.
func (o *packageOpts) Validate() error {
	if _, err := o.fs.Stat(o.binPath); err != nil {
		return fmt.Errorf("stat binary %s: %w", o.binPath, err)
	}
	return nil
}

// Execute writes the source bundle zip under the output directory.
func (o *packageOpts) Execute() error {
	files, err := o.builder.Build(o.binPath)
	if err != nil {
		return err
	}

	if err := o.fs.MkdirAll(o.outputDir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", o.outputDir, err)
	}
	target := filepath.Join(o.outputDir, bundleFileName)
	f, err := o.fs.Create(target)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}
	defer f.Close()
	if err := bundle.Zip(f, files...); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}

	log.Successf("Wrote a %s source bundle to %s.\n",
		humanize.Bytes(uint64(bundle.Size(files))), color.HighlightResource(target))
	return nil
}

// BuildPackageCmd builds the command to write the deployable source bundle to disk.
func BuildPackageCmd() *cobra.Command {
	vars := packageVars{}
	cmd := &cobra.Command{
		Use:   "package",
		Short: "Write the deployable source bundle to disk.",
		Long: `Write the deployable source bundle to disk.

The bundle is the same zip that "deploy" uploads: the compiled binary renamed
to "application" next to a Procfile that starts it.`,
		Example: `
  Package the default binary into dist/bundle.zip.
  /code $ ebhello package

  Package a binary from a custom build directory.
  /code $ ebhello package --bin out/helloworld --output-dir out`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := newPackageOpts(vars)
			if err := opts.Validate(); err != nil {
				return err
			}
			return opts.Execute()
		},
	}
	cmd.Flags().StringVar(&vars.binPath, binFlag, defaultBinPath, binFlagDescription)
	cmd.Flags().StringVar(&vars.outputDir, outputDirFlag, defaultOutputDir, outputDirFlagDescription)
	return cmd
}
