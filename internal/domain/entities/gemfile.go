package entities

import (
	"strconv"
	"strings"
)

const (
	gemfileSource    = `source "https://rubygems.org"`
	gemfileGitSource = `git_source(:github) { |repo| "https://github.com/#{repo}.git" }`
	commentPrefix    = "# "
)

// RenderGemfile serializes the manifest into Gemfile syntax. Each comment is
// written above the entry it documents, one "# " line per comment line, and
// commented-out entries stay in the file behind a "# " prefix.
func RenderGemfile(entries []DependencyEntry) string {
	var sb strings.Builder
	sb.WriteString(gemfileSource + "\n")
	sb.WriteString(gemfileGitSource + "\n")

	for _, entry := range entries {
		if entry.Comment != "" {
			sb.WriteString("\n" + renderComment(entry.Comment))
		}
		sb.WriteString(RenderGemLine(entry) + "\n")
	}
	return sb.String()
}

// RenderGemLine renders a single `gem` statement.
func RenderGemLine(entry DependencyEntry) string {
	parts := []string{"gem " + rubyString(entry.Name)}
	for _, constraint := range entry.Versions {
		parts = append(parts, rubyString(constraint))
	}

	switch entry.Source.Kind {
	case SourceKindGit:
		parts = append(parts, "github: "+rubyString(entry.Source.Repo))
		if entry.Source.Branch != "" {
			parts = append(parts, "branch: "+rubyString(entry.Source.Branch))
		}
	case SourceKindPath:
		parts = append(parts, "path: "+rubyString(entry.Source.Path))
	case SourceKindRegistry:
	}

	for _, attr := range entry.Attributes {
		parts = append(parts, attr.Key+": "+attr.Value)
	}

	line := strings.Join(parts, ", ")
	if entry.CommentedOut {
		return commentPrefix + line
	}
	return line
}

// renderComment prefixes every line so a multi-line comment cannot leave
// the comment context.
func renderComment(comment string) string {
	var sb strings.Builder
	for _, line := range strings.Split(strings.ReplaceAll(comment, "\r", ""), "\n") {
		sb.WriteString(strings.TrimRight(commentPrefix+line, " ") + "\n")
	}
	return sb.String()
}

// rubyString renders s as a double-quoted Ruby literal. "#" is escaped so
// "#{...}", "#$x" and "#@x" stay literal text instead of interpolating.
func rubyString(s string) string {
	return strings.ReplaceAll(strconv.Quote(s), "#", `\#`)
}
