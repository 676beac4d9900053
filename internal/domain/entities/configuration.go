package entities

import (
	"fmt"
	"sort"
)

// Options holds the raw generator flags. Use ResolveConfiguration or
// NewConfiguration to turn them into a Configuration.
type Options struct {
	Database string
	Template string

	SkipActiveRecord  bool
	SkipActiveStorage bool
	SkipActionMailbox bool
	SkipActionText    bool
	SkipActionMailer  bool
	SkipActionCable   bool
	SkipSprockets     bool
	SkipJavaScript    bool
	SkipHotwire       bool
	SkipJbuilder      bool
	SkipTest          bool
	SkipSystemTest    bool
	SkipBootsnap      bool
	SkipBundle        bool
	SkipGit           bool
	SkipKeeps         bool

	Webpack          bool
	API              bool
	Dev              bool
	Edge             bool
	Main             bool
	Pretend          bool
	AlternateRuntime bool
}

// SourceMode selects where the framework dependency is sourced from.
type SourceMode int

const (
	SourceModeRelease SourceMode = iota
	SourceModeDev
	SourceModeEdge
	SourceModeMain
)

func (m SourceMode) String() string {
	switch m {
	case SourceModeDev:
		return "dev"
	case SourceModeEdge:
		return "edge"
	case SourceModeMain:
		return "main"
	default:
		return "release"
	}
}

// Component identifies an optional framework piece that generated files
// reference and may need to comment out.
type Component string

const (
	ComponentActiveRecord  Component = "active_record"
	ComponentActiveStorage Component = "active_storage"
	ComponentActionMailer  Component = "action_mailer"
	ComponentActionMailbox Component = "action_mailbox"
	ComponentActionText    Component = "action_text"
	ComponentActionCable   Component = "action_cable"
	ComponentSprockets     Component = "sprockets"
	ComponentJavaScript    Component = "javascript"
	ComponentHotwire       Component = "hotwire"
	ComponentJbuilder      Component = "jbuilder"
	ComponentTest          Component = "test"
	ComponentSystemTest    Component = "system_test"
	ComponentBootsnap      Component = "bootsnap"
)

// Configuration is the read-only result of resolving the generator flags.
type Configuration struct {
	opts       Options
	commentOut map[Component]bool
}

//nolint:gochecknoglobals // closed set of recognized keys
var boolKeys = map[string]func(*Options) *bool{
	"skip_active_record":  func(o *Options) *bool { return &o.SkipActiveRecord },
	"skip_active_storage": func(o *Options) *bool { return &o.SkipActiveStorage },
	"skip_action_mailbox": func(o *Options) *bool { return &o.SkipActionMailbox },
	"skip_action_text":    func(o *Options) *bool { return &o.SkipActionText },
	"skip_action_mailer":  func(o *Options) *bool { return &o.SkipActionMailer },
	"skip_action_cable":   func(o *Options) *bool { return &o.SkipActionCable },
	"skip_sprockets":      func(o *Options) *bool { return &o.SkipSprockets },
	"skip_javascript":     func(o *Options) *bool { return &o.SkipJavaScript },
	"skip_hotwire":        func(o *Options) *bool { return &o.SkipHotwire },
	"skip_jbuilder":       func(o *Options) *bool { return &o.SkipJbuilder },
	"skip_test":           func(o *Options) *bool { return &o.SkipTest },
	"skip_system_test":    func(o *Options) *bool { return &o.SkipSystemTest },
	"skip_bootsnap":       func(o *Options) *bool { return &o.SkipBootsnap },
	"skip_bundle":         func(o *Options) *bool { return &o.SkipBundle },
	"skip_git":            func(o *Options) *bool { return &o.SkipGit },
	"skip_keeps":          func(o *Options) *bool { return &o.SkipKeeps },
	"webpack":             func(o *Options) *bool { return &o.Webpack },
	"api":                 func(o *Options) *bool { return &o.API },
	"dev":                 func(o *Options) *bool { return &o.Dev },
	"edge":                func(o *Options) *bool { return &o.Edge },
	"main":                func(o *Options) *bool { return &o.Main },
	"pretend":             func(o *Options) *bool { return &o.Pretend },
	"alternate_runtime":   func(o *Options) *bool { return &o.AlternateRuntime },
}

//nolint:gochecknoglobals // closed set of recognized keys
var stringKeys = map[string]func(*Options) *string{
	"database": func(o *Options) *string { return &o.Database },
	"template": func(o *Options) *string { return &o.Template },
}

// RecognizedKeys returns every flag name ResolveConfiguration accepts, sorted.
func RecognizedKeys() []string {
	keys := make([]string, 0, len(boolKeys)+len(stringKeys))
	for k := range boolKeys {
		keys = append(keys, k)
	}
	for k := range stringKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsBoolKey reports whether key is a recognized boolean flag.
func IsBoolKey(key string) bool {
	_, ok := boolKeys[key]
	return ok
}

// IsRecognizedKey reports whether key is one of RecognizedKeys.
func IsRecognizedKey(key string) bool {
	_, isBool := boolKeys[key]
	_, isString := stringKeys[key]
	return isBool || isString
}

// ResolveConfiguration builds a Configuration from flag name/value pairs.
// Unset keys keep their defaults; nil values count as unset.
func ResolveConfiguration(flags map[string]any) (*Configuration, error) {
	var opts Options

	for key, value := range flags {
		if value == nil {
			continue
		}
		if field, ok := boolKeys[key]; ok {
			b, isBool := value.(bool)
			if !isBool {
				return nil, &InvalidConfigurationError{Key: key, Reason: fmt.Sprintf("expects a boolean, got %T", value)}
			}
			*field(&opts) = b
			continue
		}
		if field, ok := stringKeys[key]; ok {
			s, isString := value.(string)
			if !isString {
				return nil, &InvalidConfigurationError{Key: key, Reason: fmt.Sprintf("expects a string, got %T", value)}
			}
			*field(&opts) = s
			continue
		}
		return nil, &InvalidConfigurationError{Key: key, Reason: "is not a recognized option"}
	}

	if opts.Database != "" && !IsSupportedDatabase(opts.Database) {
		return nil, &InvalidConfigurationError{
			Key:    "database",
			Reason: fmt.Sprintf("must be one of %v, got %q", SupportedDatabases(), opts.Database),
		}
	}

	return NewConfiguration(opts), nil
}

// NewConfiguration applies defaults to opts and resolves the comment-out
// table for every component.
func NewConfiguration(opts Options) *Configuration {
	if opts.Database == "" {
		opts.Database = DefaultDatabase
	}
	if opts.AlternateRuntime {
		opts.Database = jdbcDatabaseFor(opts.Database)
	}

	cfg := &Configuration{opts: opts}
	cfg.commentOut = map[Component]bool{
		ComponentActiveRecord:  opts.SkipActiveRecord,
		ComponentActiveStorage: cfg.SkipActiveStorage(),
		ComponentActionMailer:  opts.SkipActionMailer,
		ComponentActionMailbox: cfg.SkipAttachmentMailbox(),
		ComponentActionText:    cfg.SkipRichText(),
		ComponentActionCable:   opts.SkipActionCable,
		ComponentSprockets:     opts.SkipSprockets,
		ComponentJavaScript:    opts.SkipJavaScript,
		ComponentHotwire:       opts.SkipHotwire,
		ComponentJbuilder:      opts.SkipJbuilder,
		ComponentTest:          opts.SkipTest,
		ComponentSystemTest:    !cfg.InstallsSystemTests(),
		ComponentBootsnap:      !cfg.InstallsBootSupport(),
	}
	return cfg
}

// Options returns a copy of the resolved flags.
func (c *Configuration) Options() Options { return c.opts }

// Database is the selected database adapter name.
func (c *Configuration) Database() string { return c.opts.Database }

// SourceMode resolves the framework source, dev > edge > main > release.
func (c *Configuration) SourceMode() SourceMode {
	switch {
	case c.opts.Dev:
		return SourceModeDev
	case c.opts.Edge:
		return SourceModeEdge
	case c.opts.Main:
		return SourceModeMain
	default:
		return SourceModeRelease
	}
}

func (c *Configuration) SkipActiveStorage() bool {
	return c.opts.SkipActiveStorage || c.opts.SkipActiveRecord
}

func (c *Configuration) SkipRichText() bool {
	return c.opts.SkipActionText || c.SkipActiveStorage()
}

func (c *Configuration) SkipAttachmentMailbox() bool {
	return c.opts.SkipActionMailbox || c.SkipActiveStorage()
}

func (c *Configuration) UsesSqliteDefaultDB() bool {
	return !c.opts.SkipActiveRecord && c.opts.Database == "sqlite3"
}

func (c *Configuration) InstallsSystemTests() bool {
	return !(c.opts.SkipSystemTest || c.opts.SkipTest || c.opts.API)
}

func (c *Configuration) InstallsBootSupport() bool {
	return !c.opts.SkipBootsnap && !c.opts.Dev && !c.opts.AlternateRuntime
}

// BundleInstall reports whether `bundle install` should run after generation.
func (c *Configuration) BundleInstall() bool {
	return !(c.opts.SkipBundle || c.opts.Pretend)
}

// WebpackInstall reports whether the external JS bundler packages get installed.
func (c *Configuration) WebpackInstall() bool {
	return c.opts.Webpack && !c.opts.SkipJavaScript
}

// InitializesGit reports whether the generated app gets a git repository.
func (c *Configuration) InitializesGit() bool {
	return !(c.opts.SkipGit || c.opts.Pretend)
}

// CreatesKeeps reports whether empty directories get a .keep file.
func (c *Configuration) CreatesKeeps() bool { return !c.opts.SkipKeeps }

// IncludesAllRailties is true when no framework library is skipped, so the
// generated application can require the whole framework at once.
func (c *Configuration) IncludesAllRailties() bool {
	for _, component := range []Component{
		ComponentActiveRecord,
		ComponentActionMailer,
		ComponentTest,
		ComponentSprockets,
		ComponentActionCable,
		ComponentActiveStorage,
		ComponentActionMailbox,
		ComponentActionText,
	} {
		if c.commentOut[component] {
			return false
		}
	}
	return true
}

// CommentOut reports whether references to component must be commented out
// in generated files.
func (c *Configuration) CommentOut(component Component) bool {
	return c.commentOut[component]
}
