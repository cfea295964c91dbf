// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	ReservedKeyCollisionId
	ConfSyntaxErrorId
	BookmarksParseErrorId
	ConfWriteFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty, because we need to have docs about all issue types
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the surfconf configuration file.

## Configuration file location:
- ~/.config/surfconf/config.cue (or $XDG_CONFIG_HOME/surfconf/config.cue)

## Things you can try:
- Create a default configuration:
~~~
$ surfconf config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults:
~~~
$ rm ~/.config/surfconf/config.cue
~~~

## Example configuration:
~~~cue
use_graphical_browser: true

graphical: {
  browser: "/usr/bin/firefox"
  browser_args: ["-P", "surfing"]
}

settings: {
  results: 30
  escape_url_args: true
}
~~~`,
	}

	reservedKeyCollisionIssue = &Issue{
		id: ReservedKeyCollisionId,
		mdMsg: `
# Reserved setting supplied directly!

One or more keys in your settings block are derived from the browser
configuration and must not be set by hand.

## Reserved keys and their structured replacements:
| Setting key | Set this instead |
|---|---|
| graphical | use_graphical_browser |
| graphical_browser | graphical.browser |
| graphical_browser_args | graphical.browser_args |
| text_browser | textual.browser |
| text_browser_args | textual.browser_args |

## Example:
~~~cue
// Instead of settings: { graphical: false }
use_graphical_browser: false
~~~`,
	}

	confSyntaxErrorIssue = &Issue{
		id: ConfSyntaxErrorId,
		mdMsg: `
# Rendered conf would not parse as shell!

surfraw sources its conf file with /bin/sh, and the rendered document
contains a value that breaks shell parsing.

## Common causes:
- A text setting containing an unbalanced quote character
- Control characters pasted into a setting value

## Things you can try:
- Inspect the reported line and fix the offending setting value
- Preview the document without writing it:
~~~
$ surfconf gen --stdout
~~~`,
	}

	bookmarksParseErrorIssue = &Issue{
		id: BookmarksParseErrorId,
		mdMsg: `
# Failed to parse bookmarks file!

The bookmarks file referenced by your configuration is not valid TOML.

## Expected format:
~~~toml
hm = "https://github.com/nix-community/home-manager"
search = "https://duckduckgo.com"
~~~

## Things you can try:
- Check the error message above for the specific line
- Bookmark names must be single words; URLs must be quoted strings`,
	}

	confWriteFailedIssue = &Issue{
		id: ConfWriteFailedId,
		mdMsg: `
# Failed to write the generated file!

The document rendered fine but could not be written to disk.

## Common causes:
- The target directory does not exist and could not be created
- You don't have write permission on the target path

## Things you can try:
- Check permissions on ~/.config/surfraw
- Write somewhere else:
~~~
$ surfconf gen --output /tmp/surfraw.conf
~~~`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		reservedKeyCollisionIssue.Id(): reservedKeyCollisionIssue,
		confSyntaxErrorIssue.Id():      confSyntaxErrorIssue,
		bookmarksParseErrorIssue.Id():  bookmarksParseErrorIssue,
		confWriteFailedIssue.Id():      confWriteFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
