// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
	"golang.org/x/term"
)

// Id identifies a catalog entry. The zero value means "no issue".
type Id int

const (
	BinaryNotFoundId Id = iota + 1
	PermissionDeniedId
	ChecksumMismatchId
	MissingInputId
	ConfigLoadFailedId
	HostNotSupportedId
)

// Glamour styles used by StyleFor.
const (
	StyleDark  = "dark"
	StyleNoTTY = "notty"
)

type (
	MarkdownMsg string

	HttpLink string

	Issue struct {
		id       Id          // ID used to lookup the issue
		mdMsg    MarkdownMsg // Markdown text that will be rendered
		docLinks []HttpLink
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the issue's Markdown with the given glamour style.
func (i *Issue) Render(stylePath string) (string, error) {
	md := string(i.mdMsg)
	if len(i.docLinks) > 0 {
		md += "\n\n## See also\n"
		for _, link := range i.docLinks {
			md += "- <" + string(link) + ">\n"
		}
	}
	return render(md, stylePath)
}

// StyleFor picks a glamour style for w: colored output for terminals, plain
// text for pipes and CI logs.
func StyleFor(w io.Writer) string {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) { //nolint:gosec // fd fits in int
		return StyleDark
	}
	return StyleNoTTY
}

var (
	render = glamour.Render

	binaryNotFoundIssue = &Issue{
		id: BinaryNotFoundId,
		mdMsg: `
# orosu-client could not be started!

The launcher resolved a client build for this runner, but starting it failed.

## Things you can try:
- Check that the action checkout contains the ` + "`bin/`" + ` directory
- Run ` + "`orosu-launcher resolve`" + ` to see which file is expected
- Use ` + "`--bin-dir`" + ` or ` + "`OROSU_BIN_DIR`" + ` if the builds live elsewhere
- Builds exist for windows, darwin and linux on amd64 and arm64 only`,
		docLinks: []HttpLink{"https://github.com/orosu/orosu-launcher#bundled-clients"},
	}

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Permission denied!

The client build could not be made executable.

## Things you can try:
- Make sure the runner user owns the action checkout
- Check that the filesystem is not mounted ` + "`noexec`" + ` or read-only`,
	}

	checksumMismatchIssue = &Issue{
		id: ChecksumMismatchId,
		mdMsg: `
# Client checksum mismatch!

The client build does not match ` + "`checksums.txt`" + `. The file may be
corrupt or tampered with, so it was not executed.

## Things you can try:
- Re-run the job to get a fresh checkout of the action
- Pin the action to a released tag
- Disable ` + "`verify_checksum`" + ` only if you trust the build`,
	}

	missingInputIssue = &Issue{
		id: MissingInputId,
		mdMsg: `
# Missing required input!

` + "`address`, `script` and `key`" + ` must all be set.

## Things you can try:
- Set them under ` + "`with:`" + ` in your workflow step
- Or pass ` + "`--address`, `--script` and `--key`" + `
- Or export ` + "`OROSU_ADDRESS`, `OROSU_SCRIPT` and `OROSU_KEY`" + `
- Store the key in a repository secret, never inline`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The CUE config file could not be read or did not match the schema.

## Things you can try:
- Run ` + "`orosu-launcher config path`" + ` to see which file is used
- Run ` + "`orosu-launcher config dump`" + ` for a valid example
- Remove unknown fields; the schema is closed`,
	}

	hostNotSupportedIssue = &Issue{
		id: HostNotSupportedId,
		mdMsg: `
# Host not supported!

The operating system or architecture of this runner could not be determined.

## Things you can try:
- Set ` + "`--os` and `--arch`" + ` (or ` + "`host.os`/`host.arch`" + ` in the config) explicitly
- Use a windows, macOS or linux runner`,
	}

	issues = map[Id]*Issue{
		binaryNotFoundIssue.Id():   binaryNotFoundIssue,
		permissionDeniedIssue.Id(): permissionDeniedIssue,
		checksumMismatchIssue.Id(): checksumMismatchIssue,
		missingInputIssue.Id():     missingInputIssue,
		configLoadFailedIssue.Id(): configLoadFailedIssue,
		hostNotSupportedIssue.Id(): hostNotSupportedIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

// Get returns the catalog entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
