// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"winpack-cli/internal/issue"
	"winpack-cli/internal/toolpath"

	"github.com/spf13/cobra"
)

func newLocateCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "locate <tool>",
		Short: "Show the path of makepri.exe or makeappx.exe",
		Long: `Resolve a packaging tool the same way package and pri do: the bundled
tools folder next to the winpack executable first, then the Windows 10 SDK
bin directory for the configured architecture.`,
		Example: `  winpack locate makepri
  winpack locate makeappx.exe`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"makepri", "makeappx"},
		RunE: func(cmd *cobra.Command, args []string) error {
			tool, err := toolName(args[0])
			if err != nil {
				return app.exit(ExitNotFound, err, 0)
			}

			path, err := app.toolLocator().Locate(cmd.Context(), tool)
			if err != nil {
				return app.exit(ExitNotFound, err, issue.ToolNotFoundId)
			}
			fmt.Fprintln(app.stdout, path)
			return nil
		},
	}
}

// toolName maps a user-supplied tool name ("makepri", "MakeAppx.exe") to its file name.
func toolName(arg string) (string, error) {
	switch strings.TrimSuffix(strings.ToLower(arg), ".exe") {
	case "makepri":
		return toolpath.MakePri, nil
	case "makeappx":
		return toolpath.MakeAppx, nil
	default:
		return "", fmt.Errorf("unknown tool %q (valid: %s, %s)", arg, toolpath.MakePri, toolpath.MakeAppx)
	}
}
