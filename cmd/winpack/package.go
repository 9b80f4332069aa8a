// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"winpack-cli/internal/appx"
	"winpack-cli/internal/issue"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

type (
	// pipelineFlags are the flags shared by the package and pri commands.
	pipelineFlags struct {
		split  bool
		name   string
		dryRun bool
	}

	// pipelineFunc runs one pipeline of svc over a staged upload.
	pipelineFunc func(ctx context.Context, svc *appx.Service, upload appx.UploadedFile) (*appx.InvocationResult, error)
)

func (f *pipelineFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.split, "split", false, "split resources per language, scale and DirectX feature level")
	cmd.Flags().StringVar(&f.name, "name", "", "package name, i.e. the archive's top-level folder (default is the archive base name)")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "print the tool command lines instead of running them")
}

func newPackageCommand(app *App) *cobra.Command {
	var (
		flags     pipelineFlags
		withIndex bool
	)

	cmd := &cobra.Command{
		Use:   "package <archive>",
		Short: "Build an .appx package from a content archive",
		Long: `Extract the archive and pack its top-level folder with makeappx.exe.

The archive must contain a single top-level folder named like the archive
(app.zip holds app/), with appxmanifest.xml inside it. The package is written
to <output_dir>/<archive base name>/<folder>.appx.

With --pri, resources.pri is generated with makepri.exe first and packed
along with the content.`,
		Example: `  winpack package app.zip
  winpack package app.zip --pri --split
  winpack package upload-7f3a.zip --name app`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runPipeline(cmd.Context(), args[0], flags, "build package", issue.PackageBuildFailedId,
				func(ctx context.Context, svc *appx.Service, upload appx.UploadedFile) (*appx.InvocationResult, error) {
					return svc.BuildPackage(ctx, upload, withIndex)
				})
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&withIndex, "pri", false, "generate resources.pri before packing")
	return cmd
}

func newPRICommand(app *App) *cobra.Command {
	var flags pipelineFlags

	cmd := &cobra.Command{
		Use:   "pri <archive>",
		Short: "Build a resources.pri index from a content archive",
		Long: `Extract the archive and index its top-level folder with makepri.exe.

The index is written to <output_dir>/<archive base name>/resources.pri. The
Identity Name of the folder's appxmanifest.xml is used as the index name.`,
		Example: `  winpack pri app.zip
  winpack pri app.zip --split`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runPipeline(cmd.Context(), args[0], flags, "build resource index", issue.ResourceIndexFailedId,
				func(ctx context.Context, svc *appx.Service, upload appx.UploadedFile) (*appx.InvocationResult, error) {
					return svc.BuildResourceIndex(ctx, upload)
				})
		},
	}

	flags.register(cmd)
	return cmd
}

// runPipeline stages archive, runs pipeline and reports the artifact. op names
// the pipeline in error messages ("build package").
func (a *App) runPipeline(ctx context.Context, archive string, flags pipelineFlags, op string, fallback issue.Id, pipeline pipelineFunc) error {
	upload, cleanup, err := stageUpload(archive, flags.name)
	if err != nil {
		return a.fail(issue.WrapWithContext(err, "stage archive", archive), issue.ArchiveReadId)
	}
	defer cleanup()

	svc := a.service(flags.split, flags.dryRun)
	res, err := pipeline(ctx, svc, upload)
	if err != nil {
		return a.fail(issue.WrapWithContext(err, op, archive), fallback)
	}

	if flags.dryRun {
		fmt.Fprintf(a.stdout, "%s Dry run complete, would write %s\n", SuccessStyle.Render("✓"), CmdStyle.Render(res.Artifact))
		return nil
	}

	size := ""
	if info, statErr := os.Stat(res.Artifact); statErr == nil {
		size = " (" + humanize.Bytes(uint64(info.Size())) + ")"
	}
	fmt.Fprintf(a.stdout, "%s Created %s%s\n", SuccessStyle.Render("✓"), CmdStyle.Render(res.Artifact), size)
	return nil
}
