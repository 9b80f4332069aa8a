// SPDX-License-Identifier: MPL-2.0

package appx

import (
	"context"

	"winpack-cli/internal/toolexec"
)

// ResourceIndexFile is the file name makepri writes.
const ResourceIndexFile = "resources.pri"

// PackageExt is the extension of the package makeappx writes.
const PackageExt = ".appx"

type (
	// UploadedFile is a content archive handed over by the upload layer.
	// The file at Path is deleted once it has been extracted.
	UploadedFile struct {
		// Path is where the archive is stored.
		Path string
		// OriginalName is the client-side file name, e.g. "app.zip".
		OriginalName string
		// Extension is the archive extension without the dot, e.g. "zip".
		// When empty, the extension of each name is used.
		Extension string
	}

	// WorkingContext describes the directories of one pipeline run.
	WorkingContext struct {
		// Name is the package name derived from the original file name.
		Name string
		// ContentDir holds the extracted package content: OutputDir/Name.
		ContentDir string
		// OutputDir receives the artifacts.
		OutputDir string
	}

	// InvocationResult reports one successful tool invocation.
	InvocationResult struct {
		// Dir is the content directory the tool worked on.
		Dir string
		// Artifact is the file the tool produced.
		Artifact string
		Stdout   string
		Stderr   string
		ExitCode toolexec.ExitCode
	}

	// ToolLocator resolves the path of an SDK tool by file name.
	ToolLocator interface {
		Locate(ctx context.Context, toolName string) (string, error)
	}
)

// PackagePath is where MakeAppx writes the package for wc.
func (wc *WorkingContext) PackagePath() string {
	return joinPath(wc.OutputDir, wc.Name+PackageExt)
}

// ResourceIndexPath is where MakePri writes the resource index for wc.
func (wc *WorkingContext) ResourceIndexPath() string {
	return joinPath(wc.OutputDir, ResourceIndexFile)
}
