//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/scaffolder/internal/domain/entities"
)

// DependencyEntryBuilder helps create manifest entries with a fluent interface.
type DependencyEntryBuilder struct {
	*testkit.BaseBuilder
	name         string
	versions     []string
	comment      string
	source       entities.Source
	attributes   []entities.Attribute
	commentedOut bool
}

// NewDependencyEntryBuilder creates a new builder for a registry entry.
func NewDependencyEntryBuilder() *DependencyEntryBuilder {
	return &DependencyEntryBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "test-gem",
		versions:    []string{"~> 1.0"},
		source:      entities.RegistrySource(),
	}
}

// WithName sets the package name.
func (b *DependencyEntryBuilder) WithName(name string) *DependencyEntryBuilder {
	b.name = name
	return b
}

// WithVersions sets the version constraints.
func (b *DependencyEntryBuilder) WithVersions(versions ...string) *DependencyEntryBuilder {
	b.versions = versions
	return b
}

// WithComment sets the explanatory comment.
func (b *DependencyEntryBuilder) WithComment(comment string) *DependencyEntryBuilder {
	b.comment = comment
	return b
}

// WithGitSource sources the entry from a hosted repository.
func (b *DependencyEntryBuilder) WithGitSource(repo, branch string) *DependencyEntryBuilder {
	b.source = entities.GitSource(repo, branch)
	b.versions = nil
	return b
}

// WithPathSource sources the entry from a local path.
func (b *DependencyEntryBuilder) WithPathSource(path string) *DependencyEntryBuilder {
	b.source = entities.PathSource(path)
	b.versions = nil
	return b
}

// WithAttribute appends a trailing `key: value` option.
func (b *DependencyEntryBuilder) WithAttribute(key, value string) *DependencyEntryBuilder {
	b.attributes = append(b.attributes, entities.Attribute{Key: key, Value: value})
	return b
}

// CommentedOut marks the entry as present but disabled.
func (b *DependencyEntryBuilder) CommentedOut() *DependencyEntryBuilder {
	b.commentedOut = true
	return b
}

// Build creates the entry (satisfies testkit.Builder interface).
func (b *DependencyEntryBuilder) Build() interface{} {
	return b.BuildDependencyEntry()
}

// BuildDependencyEntry creates the entry with a concrete return type.
func (b *DependencyEntryBuilder) BuildDependencyEntry() entities.DependencyEntry {
	return entities.DependencyEntry{
		Name:         b.name,
		Versions:     b.versions,
		Comment:      b.comment,
		Source:       b.source,
		Attributes:   b.attributes,
		CommentedOut: b.commentedOut,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyEntryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-gem"
	b.versions = []string{"~> 1.0"}
	b.comment = ""
	b.source = entities.RegistrySource()
	b.attributes = nil
	b.commentedOut = false
	return b
}

// Clone creates a deep copy of the DependencyEntryBuilder.
func (b *DependencyEntryBuilder) Clone() testkit.Builder {
	return &DependencyEntryBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:         b.name,
		versions:     append([]string(nil), b.versions...),
		comment:      b.comment,
		source:       b.source,
		attributes:   append([]entities.Attribute(nil), b.attributes...),
		commentedOut: b.commentedOut,
	}
}
