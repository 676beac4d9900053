package entities

// SourceKind tells where a dependency is fetched from.
type SourceKind string

const (
	SourceKindRegistry SourceKind = "registry"
	SourceKindGit      SourceKind = "git"
	SourceKindPath     SourceKind = "path"
)

// Source is the origin of a dependency. Only the fields of Kind are meaningful.
type Source struct {
	Kind   SourceKind `json:"kind"             yaml:"kind"`
	Repo   string     `json:"repo,omitempty"   yaml:"repo,omitempty"`
	Branch string     `json:"branch,omitempty" yaml:"branch,omitempty"`
	Path   string     `json:"path,omitempty"   yaml:"path,omitempty"`
}

// RegistrySource is the default package registry.
func RegistrySource() Source { return Source{Kind: SourceKindRegistry} }

// GitSource points at a hosted repository, optionally at a branch.
func GitSource(repo, branch string) Source {
	return Source{Kind: SourceKindGit, Repo: repo, Branch: branch}
}

// PathSource points at a checkout on the local filesystem.
func PathSource(path string) Source { return Source{Kind: SourceKindPath, Path: path} }

// Attribute is an extra `key: value` option rendered after the constraints.
// Value is emitted verbatim.
type Attribute struct {
	Key   string `json:"key"   yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// DependencyEntry is one line of the dependency manifest.
type DependencyEntry struct {
	Name         string      `json:"name"                   yaml:"name"`
	Versions     []string    `json:"versions,omitempty"     yaml:"versions,omitempty"`
	Comment      string      `json:"comment,omitempty"      yaml:"comment,omitempty"`
	Source       Source      `json:"source"                 yaml:"source"`
	Attributes   []Attribute `json:"attributes,omitempty"   yaml:"attributes,omitempty"`
	CommentedOut bool        `json:"commented_out"          yaml:"commented_out"`
}

// VersionedEntry is a registry dependency with zero or more constraints.
func VersionedEntry(name string, versions []string, comment string) DependencyEntry {
	return DependencyEntry{Name: name, Versions: versions, Comment: comment, Source: RegistrySource()}
}

// GitEntry is a dependency tracked from a repository branch.
func GitEntry(name, repo, branch, comment string) DependencyEntry {
	return DependencyEntry{Name: name, Comment: comment, Source: GitSource(repo, branch)}
}

// PathEntry is a dependency loaded from a local path.
func PathEntry(name, path, comment string) DependencyEntry {
	return DependencyEntry{Name: name, Comment: comment, Source: PathSource(path)}
}

// IncludePredicate decides whether a built entry stays in the manifest.
type IncludePredicate func(entry DependencyEntry) bool

// IncludeAll keeps every entry.
func IncludeAll(DependencyEntry) bool { return true }

// Excluding drops entries whose name is in names.
func Excluding(names ...string) IncludePredicate {
	excluded := make(map[string]struct{}, len(names))
	for _, n := range names {
		excluded[n] = struct{}{}
	}
	return func(entry DependencyEntry) bool {
		_, skip := excluded[entry.Name]
		return !skip
	}
}

// APIOnly drops the browser-facing asset and JavaScript helpers that an
// API-only application never serves.
func APIOnly() IncludePredicate {
	return Excluding("sprockets-rails", "webpacker", "importmap-rails", "turbo-rails", "stimulus-rails")
}

// AllOf keeps an entry only when every predicate accepts it.
func AllOf(predicates ...IncludePredicate) IncludePredicate {
	return func(entry DependencyEntry) bool {
		for _, p := range predicates {
			if p != nil && !p(entry) {
				return false
			}
		}
		return true
	}
}
