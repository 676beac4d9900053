package entities

import "fmt"

// DefaultDevPath is where --dev expects a framework checkout.
const DefaultDevPath = "../rails"

const frameworkRepo = "rails/rails"

// FamilyID names one group of manifest entries decided by a single rule.
type FamilyID string

const (
	FamilyFramework   FamilyID = "framework"
	FamilyDatabase    FamilyID = "database"
	FamilyWebServer   FamilyID = "web_server"
	FamilyAssets      FamilyID = "assets"
	FamilyWebpacker   FamilyID = "webpacker"
	FamilyJavaScript  FamilyID = "javascript"
	FamilyJbuilder    FamilyID = "jbuilder"
	FamilyYAMLEngine  FamilyID = "yaml_engine"
	FamilyActionCable FamilyID = "action_cable"
)

type dependencyFamily struct {
	ID      FamilyID
	Entries func(b *ManifestBuilder, cfg *Configuration) []DependencyEntry
}

// families is evaluated in this order; the manifest keeps it.
//
//nolint:gochecknoglobals // fixed evaluation order
var families = []dependencyFamily{
	{ID: FamilyFramework, Entries: (*ManifestBuilder).frameworkEntries},
	{ID: FamilyDatabase, Entries: (*ManifestBuilder).databaseEntries},
	{ID: FamilyWebServer, Entries: (*ManifestBuilder).webServerEntries},
	{ID: FamilyAssets, Entries: (*ManifestBuilder).assetsEntries},
	{ID: FamilyWebpacker, Entries: (*ManifestBuilder).webpackerEntries},
	{ID: FamilyJavaScript, Entries: (*ManifestBuilder).javaScriptEntries},
	{ID: FamilyJbuilder, Entries: (*ManifestBuilder).jbuilderEntries},
	{ID: FamilyYAMLEngine, Entries: (*ManifestBuilder).yamlEngineEntries},
	{ID: FamilyActionCable, Entries: (*ManifestBuilder).actionCableEntries},
}

// Families returns the family identifiers in evaluation order.
func Families() []FamilyID {
	ids := make([]FamilyID, 0, len(families))
	for _, f := range families {
		ids = append(ids, f.ID)
	}
	return ids
}

// ManifestBuilder turns a Configuration into the ordered dependency manifest.
type ManifestBuilder struct {
	version Version
	devPath string
}

// NewManifestBuilder creates a builder for the given framework version.
// An empty devPath falls back to DefaultDevPath.
func NewManifestBuilder(version Version, devPath string) *ManifestBuilder {
	if devPath == "" {
		devPath = DefaultDevPath
	}
	return &ManifestBuilder{version: version, devPath: devPath}
}

// BuildManifest builds the manifest for DefaultFrameworkVersion.
func BuildManifest(cfg *Configuration, include IncludePredicate) []DependencyEntry {
	return NewManifestBuilder(MustParseVersion(DefaultFrameworkVersion), "").Build(cfg, include)
}

// Version is the framework version this builder targets.
func (b *ManifestBuilder) Version() Version { return b.version }

// Build evaluates every family in order and keeps the entries accepted by
// include. A nil include keeps everything.
func (b *ManifestBuilder) Build(cfg *Configuration, include IncludePredicate) []DependencyEntry {
	if include == nil {
		include = IncludeAll
	}

	var entries []DependencyEntry
	for _, family := range families {
		for _, entry := range family.Entries(b, cfg) {
			if include(entry) {
				entries = append(entries, entry)
			}
		}
	}
	return entries
}

// AppendEntries adds extra entries (e.g. from an application template) after
// the built ones, refusing names that are already present.
func AppendEntries(manifest []DependencyEntry, extra []DependencyEntry) ([]DependencyEntry, error) {
	seen := make(map[string]struct{}, len(manifest)+len(extra))
	for _, entry := range manifest {
		seen[entry.Name] = struct{}{}
	}

	result := make([]DependencyEntry, 0, len(manifest)+len(extra))
	result = append(result, manifest...)
	for _, entry := range extra {
		if _, dup := seen[entry.Name]; dup {
			return nil, &InvalidConfigurationError{
				Key:    entry.Name,
				Reason: "is already declared in the manifest",
			}
		}
		seen[entry.Name] = struct{}{}
		result = append(result, entry)
	}
	return result, nil
}

func (b *ManifestBuilder) frameworkEntries(cfg *Configuration) []DependencyEntry {
	switch cfg.SourceMode() {
	case SourceModeDev:
		return []DependencyEntry{PathEntry("rails", b.devPath, "")}
	case SourceModeEdge:
		return []DependencyEntry{GitEntry("rails", frameworkRepo, b.version.EdgeBranch(), "")}
	case SourceModeMain:
		return []DependencyEntry{GitEntry("rails", frameworkRepo, mainBranch, "")}
	default:
		return []DependencyEntry{VersionedEntry(
			"rails",
			b.version.Specifier(),
			fmt.Sprintf(`Bundle edge Rails instead: gem "rails", github: %q, branch: %q`, frameworkRepo, mainBranch),
		)}
	}
}

func (b *ManifestBuilder) databaseEntries(cfg *Configuration) []DependencyEntry {
	if cfg.opts.SkipActiveRecord {
		return nil
	}
	adapter := adapterFor(cfg.Database())
	return []DependencyEntry{VersionedEntry(
		adapter.Package,
		adapter.Versions,
		fmt.Sprintf("Use %s as the database for Active Record", cfg.Database()),
	)}
}

func (b *ManifestBuilder) webServerEntries(*Configuration) []DependencyEntry {
	return []DependencyEntry{VersionedEntry(
		"puma", []string{"~> 5.0"}, "Use the Puma web server [https://github.com/puma/puma]",
	)}
}

func (b *ManifestBuilder) assetsEntries(cfg *Configuration) []DependencyEntry {
	if cfg.opts.SkipSprockets {
		return nil
	}
	return []DependencyEntry{VersionedEntry(
		"sprockets-rails",
		[]string{">= 2.0.0"},
		"The original asset pipeline for Rails [https://github.com/rails/sprockets-rails]",
	)}
}

func (b *ManifestBuilder) webpackerEntries(cfg *Configuration) []DependencyEntry {
	if !cfg.opts.Webpack {
		return nil
	}
	return []DependencyEntry{VersionedEntry(
		"webpacker",
		[]string{"~> 6.0.0.beta.7"},
		"Transpile app-like JavaScript. Read more: https://github.com/rails/webpacker",
	)}
}

func (b *ManifestBuilder) javaScriptEntries(cfg *Configuration) []DependencyEntry {
	if cfg.opts.SkipJavaScript {
		return nil
	}

	importmap := VersionedEntry(
		"importmap-rails",
		[]string{">= 0.3.4"},
		"Manage modern JavaScript using ESM without transpiling or bundling",
	)
	if cfg.opts.SkipHotwire {
		return []DependencyEntry{importmap}
	}

	turbo := VersionedEntry(
		"turbo-rails",
		[]string{">= 0.7.4"},
		"Hotwire's SPA-like page accelerator. Read more: https://turbo.hotwired.dev",
	)
	stimulus := VersionedEntry(
		"stimulus-rails",
		[]string{">= 0.3.9"},
		"Hotwire's modest JavaScript framework for the HTML you already have. Read more: https://stimulus.hotwired.dev",
	)
	return []DependencyEntry{importmap, turbo, stimulus}
}

func (b *ManifestBuilder) jbuilderEntries(cfg *Configuration) []DependencyEntry {
	if cfg.opts.SkipJbuilder {
		return nil
	}
	entry := VersionedEntry("jbuilder", []string{"~> 2.7"}, "Build JSON APIs with ease [https://github.com/rails/jbuilder]")
	entry.CommentedOut = cfg.opts.API
	return []DependencyEntry{entry}
}

func (b *ManifestBuilder) yamlEngineEntries(cfg *Configuration) []DependencyEntry {
	if !cfg.opts.AlternateRuntime {
		return nil
	}
	entry := VersionedEntry(
		"psych",
		[]string{"~> 2.0"},
		"Use Psych as the YAML engine, instead of Syck, so serialized data can be read safely from different rubies",
	)
	entry.Attributes = []Attribute{{Key: "platforms", Value: ":jruby"}}
	return []DependencyEntry{entry}
}

func (b *ManifestBuilder) actionCableEntries(cfg *Configuration) []DependencyEntry {
	if cfg.opts.SkipActionCable {
		return nil
	}
	entry := VersionedEntry("redis", []string{"~> 4.0"}, "Use Redis adapter to run Action Cable in production")
	entry.CommentedOut = true
	return []DependencyEntry{entry}
}
