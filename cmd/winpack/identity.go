// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"winpack-cli/internal/appx"
	"winpack-cli/internal/issue"
	"winpack-cli/pkg/appxmanifest"

	"github.com/spf13/cobra"
)

func newIdentityCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "identity <folder|manifest>",
		Short: "Print the package Identity Name of a manifest",
		Long: `Print the Identity Name declared in appxmanifest.xml. The argument is
either a content folder holding appxmanifest.xml or the manifest file itself.
This is the name pri passes to makepri.exe as /in.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			target := args[0]

			info, err := os.Stat(target)
			if err != nil {
				return app.fail(issue.WrapWithContext(err, "read manifest", target), issue.ManifestIdentityMissingId)
			}

			manifest := target
			var name string
			if info.IsDir() {
				manifest = filepath.Join(target, appxmanifest.FileName)
				name, err = appxmanifest.ReadIdentity(target)
			} else {
				name, err = appxmanifest.ReadIdentityFile(target)
			}
			if err != nil {
				return app.fail(&appx.ManifestIdentityError{Manifest: manifest, Cause: err}, issue.ManifestIdentityMissingId)
			}
			if name == "" {
				return app.exit(ExitNotFound, &appx.ManifestIdentityError{Manifest: manifest}, issue.ManifestIdentityMissingId)
			}

			fmt.Fprintln(app.stdout, name)
			return nil
		},
	}
}
