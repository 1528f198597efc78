// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies a known issue type with rendered guidance.
type Id int

const (
	ScriptNotFoundId Id = iota + 1
	UnknownCommandId
	NoDocumentationId
	ConfigLoadFailedId
	ScriptParseErrorId
)

// MarkdownMsg is the Markdown body of an issue card.
type MarkdownMsg string

// HttpLink points to external documentation about an issue.
type HttpLink string

// Issue is a known failure condition with user-facing guidance that is
// rendered as a Markdown card.
type Issue struct {
	id       Id
	mdMsg    MarkdownMsg
	extLinks []HttpLink
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.extLinks) > 0 {
		extraMd += "\n\n## See also\n"
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	scriptNotFoundIssue = &Issue{
		id: ScriptNotFoundId,
		mdMsg: `
# Script not found!

We could not resolve the script you asked for to an executable file.

## Search locations (in order of precedence):
1. The literal path, when the name contains a path separator
2. Directories listed under ` + "`script_paths`" + ` in your config file
3. Your ` + "`$PATH`" + `

## Things you can try:
- Check the spelling of the script name
- Pass an explicit path:
~~~
$ docsh run ./scripts/backup.sh
~~~
- Add the script's directory to your config:
~~~cue
script_paths: ["~/bin/scripts"]
~~~`,
	}

	unknownCommandIssue = &Issue{
		id: UnknownCommandId,
		mdMsg: `
# Unknown command!

The script was parsed successfully, but no function with the requested
name is defined in it.

## Things you can try:
- Check the spelling against the function names listed in the error message
- Review the script's documented commands:
~~~
$ docsh run <script> help
~~~`,
	}

	noDocumentationIssue = &Issue{
		id: NoDocumentationId,
		mdMsg: `
# No documentation found

This script has no documentation block matching its own name, so there is
no top-level help to show.

## Adding documentation

Embed a block named after the script near the top of the file:

~~~sh
# <doc:myscript>
#
# One-line summary of what myscript does.
#
# </doc:myscript>
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Configuration could not be loaded

The config file exists but could not be parsed or validated.

## Things you can try:
- Check the file for CUE syntax errors
- Compare against the effective configuration:
~~~
$ docsh config show
~~~`,
	}

	scriptParseErrorIssue = &Issue{
		id: ScriptParseErrorId,
		mdMsg: `
# Script could not be parsed

The script was found but its shell syntax is invalid, so its functions
cannot be dispatched.

## Things you can try:
- Run a syntax check with your shell:
~~~
$ sh -n <script>
~~~`,
	}

	issues = map[Id]*Issue{
		scriptNotFoundIssue.Id():   scriptNotFoundIssue,
		unknownCommandIssue.Id():   unknownCommandIssue,
		noDocumentationIssue.Id():  noDocumentationIssue,
		configLoadFailedIssue.Id(): configLoadFailedIssue,
		scriptParseErrorIssue.Id(): scriptParseErrorIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
