// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ToolNotFoundId Id = iota + 1
	UnsupportedPlatformId
	ArchiveReadId
	ArchiveExtractId
	ManifestIdentityMissingId
	ResourceIndexFailedId
	PackageBuildFailedId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
	extLinks []HttpLink // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the issue as terminal Markdown using the glamour style at stylePath
// (a built-in style name such as "dark" or "notty", or a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("- [" + string(link) + "](" + string(link) + ")\n")
		}
		for _, link := range i.extLinks {
			md.WriteString("- [" + string(link) + "](" + string(link) + ")\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	toolNotFoundIssue = &Issue{
		id: ToolNotFoundId,
		mdMsg: `
# Packaging tool not found!

winpack drives ` + "`makepri.exe`" + ` and ` + "`makeappx.exe`" + ` from the Windows SDK and could not find the one it needed.

## Search locations (in order of precedence):
1. The bundled tools folder next to the winpack executable (` + "`appxsdk\\`" + ` by default)
2. ` + "`<KitsRoot10>\\bin\\<arch>\\`" + ` from the Windows Kits registry key

## Things you can try:
- Install the Windows 10 SDK
- Copy ` + "`makepri.exe`" + ` and ` + "`makeappx.exe`" + ` into the bundled tools folder
- Point winpack at an SDK installation:
~~~cue
tools: {
  kits_root: "C:\\Program Files (x86)\\Windows Kits\\10"
  arch:      "x64"
}
~~~
- Check where winpack looks:
~~~
$ winpack locate makeappx.exe
~~~`,
		extLinks: []HttpLink{"https://developer.microsoft.com/windows/downloads/windows-sdk/"},
	}

	unsupportedPlatformIssue = &Issue{
		id: UnsupportedPlatformId,
		mdMsg: `
# Windows required!

Resource indexing and package generation run the Windows SDK tools, which only exist on Windows hosts.

## Things you can try:
- Run winpack on a Windows machine or a Windows CI runner
- Preview the tool invocations on this host:
~~~
$ winpack package --dry-run app.zip
~~~
  Dry runs still require Windows; use them on the target host to check paths before packaging.`,
	}

	archiveReadIssue = &Issue{
		id: ArchiveReadId,
		mdMsg: `
# Cannot open the content archive!

The archive could not be read as a zip file.

## Things you can try:
- Check that the file exists and is a complete zip archive
- Re-create the archive with a standard zip tool
- Make sure the archive was not truncated during upload or download`,
	}

	archiveExtractIssue = &Issue{
		id: ArchiveExtractId,
		mdMsg: `
# Cannot extract the content archive!

The archive was readable but its content could not be laid out for packaging.

## Expected layout:
The archive must hold a top-level folder named after the archive itself:
~~~
app.zip
└── app/
    ├── appxmanifest.xml
    └── images/
~~~

## Things you can try:
- Rename the top-level folder or the archive so they match
- Use ` + "`--name`" + ` to select the top-level folder
- Avoid reserved Windows names such as CON, PRN or NUL
- Check that the output directory is writable`,
	}

	manifestIdentityMissingIssue = &Issue{
		id: ManifestIdentityMissingId,
		mdMsg: `
# Package identity not found!

Resource indexing needs the package name from ` + "`appxmanifest.xml`" + `.

## Things you can try:
- Make sure ` + "`appxmanifest.xml`" + ` sits at the root of the content folder
- Declare an identity with a 3 to 50 character name:
~~~xml
<Identity Name="Contoso.App" Publisher="CN=Contoso" Version="1.0.0.0" />
~~~
- Check what winpack reads:
~~~
$ winpack identity path/to/content
~~~`,
	}

	resourceIndexFailedIssue = &Issue{
		id: ResourceIndexFailedId,
		mdMsg: `
# Resource indexing failed!

` + "`makepri.exe`" + ` reported an error while indexing the package resources.

## Things you can try:
- Read the tool message above; it is copied from makepri's output
- Run with verbose mode to see the exact command line:
~~~
$ winpack --verbose pri app.zip
~~~
- Check a custom indexing profile set with ` + "`pri.config_file`" + ``,
		extLinks: []HttpLink{"https://learn.microsoft.com/windows/uwp/app-resources/compile-resources-manually-with-makepri"},
	}

	packageBuildFailedIssue = &Issue{
		id: PackageBuildFailedId,
		mdMsg: `
# Package generation failed!

` + "`makeappx.exe`" + ` reported an error while packing the content folder.

## Common causes:
- Manifest validation errors
- Files referenced by the manifest are missing
- The package file is locked by another process

## Things you can try:
- Read the tool message above; it is copied from makeappx's output
- Run with verbose mode to see the exact command line:
~~~
$ winpack --verbose package app.zip
~~~`,
		extLinks: []HttpLink{"https://learn.microsoft.com/windows/msix/package/create-app-package-with-makeappx-tool"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the winpack configuration file.

## Configuration file locations:
- Linux: ~/.config/winpack/config.cue
- macOS: ~/Library/Application Support/winpack/config.cue
- Windows: %APPDATA%\winpack\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ winpack config init
~~~

- Check the configuration syntax
- Show where winpack looks:
~~~
$ winpack config path
~~~

## Example configuration:
~~~cue
output_dir: "output"

tools: {
  folder: "appxsdk"
}

pri: {
  profile: "split"
}
~~~`,
	}

	issues = map[Id]*Issue{
		toolNotFoundIssue.Id():            toolNotFoundIssue,
		unsupportedPlatformIssue.Id():     unsupportedPlatformIssue,
		archiveReadIssue.Id():             archiveReadIssue,
		archiveExtractIssue.Id():          archiveExtractIssue,
		manifestIdentityMissingIssue.Id(): manifestIdentityMissingIssue,
		resourceIndexFailedIssue.Id():     resourceIndexFailedIssue,
		packageBuildFailedIssue.Id():      packageBuildFailedIssue,
		configLoadFailedIssue.Id():        configLoadFailedIssue,
	}
)

// Values returns every issue ordered by Id.
func Values() []*Issue {
	values := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		values = append(values, i)
	}
	slices.SortFunc(values, func(a, b *Issue) int {
		return int(a.id) - int(b.id)
	})
	return values
}

func Get(id Id) *Issue {
	return issues[id]
}
