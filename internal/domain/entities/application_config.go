package entities

import (
	"path/filepath"
	"strings"
	"unicode"
)

const (
	ApplicationConfigPath = "config/application.rb"
	BootConfigPath        = "config/boot.rb"
)

type railtieRequire struct {
	path      string
	component Component // empty when the railtie is always required
}

// railtieRequires follows the order the framework documents for picking
// individual frameworks.
//
//nolint:gochecknoglobals // fixed require order
var railtieRequires = []railtieRequire{
	{path: "active_model/railtie"},
	{path: "active_job/railtie"},
	{path: "active_record/railtie", component: ComponentActiveRecord},
	{path: "active_storage/engine", component: ComponentActiveStorage},
	{path: "action_controller/railtie"},
	{path: "action_mailer/railtie", component: ComponentActionMailer},
	{path: "action_mailbox/engine", component: ComponentActionMailbox},
	{path: "action_text/engine", component: ComponentActionText},
	{path: "action_view/railtie"},
	{path: "action_cable/engine", component: ComponentActionCable},
	{path: "sprockets/railtie", component: ComponentSprockets},
	{path: "rails/test_unit/railtie", component: ComponentTest},
}

// RenderApplicationConfig renders config/application.rb. The whole framework
// is required at once when nothing is skipped; otherwise each railtie gets its
// own require and skipped ones are commented out.
func RenderApplicationConfig(cfg *Configuration, appPath string, version Version) string {
	var sb strings.Builder
	sb.WriteString("require_relative \"boot\"\n\n")

	if cfg.IncludesAllRailties() {
		sb.WriteString("require \"rails/all\"\n")
	} else {
		sb.WriteString("require \"rails\"\n# Pick the frameworks you want:\n")
		for _, railtie := range railtieRequires {
			sb.WriteString(commentIf(cfg, railtie.component) + "require " + rubyString(railtie.path) + "\n")
		}
	}

	sb.WriteString("\n# Require the gems listed in Gemfile, including any gems\n")
	sb.WriteString("# you've limited to :test, :development, or :production.\n")
	sb.WriteString("Bundler.require(*Rails.groups)\n\n")

	sb.WriteString("module " + ApplicationModuleName(appPath) + "\n")
	sb.WriteString("  class Application < Rails::Application\n")
	sb.WriteString("    # Initialize configuration defaults for originally generated Rails version.\n")
	sb.WriteString("    config.load_defaults " + loadDefaults(version) + "\n")
	if cfg.Options().API {
		sb.WriteString("\n    # Only loads a smaller set of middleware suitable for API only apps.\n")
		sb.WriteString("    config.api_only = true\n")
	}
	if cfg.CommentOut(ComponentSystemTest) {
		sb.WriteString("\n    # Don't generate system test files.\n")
		sb.WriteString("    config.generators.system_tests = nil\n")
	}
	sb.WriteString("  end\nend\n")
	return sb.String()
}

// RenderBootConfig renders config/boot.rb, with the boot cache only when boot
// support is installed.
func RenderBootConfig(cfg *Configuration) string {
	return "ENV[\"BUNDLE_GEMFILE\"] ||= File.expand_path(\"../Gemfile\", __dir__)\n\n" +
		"require \"bundler/setup\" # Set up gems listed in the Gemfile.\n" +
		commentIf(cfg, ComponentBootsnap) +
		"require \"bootsnap/setup\" # Speed up boot time by caching expensive operations.\n"
}

// ApplicationModuleName camelizes the last element of appPath,
// "my-blog_app" -> "MyBlogApp". Names that would not start with a letter get
// an "App" prefix.
func ApplicationModuleName(appPath string) string {
	base := filepath.Base(filepath.Clean(appPath))

	var sb strings.Builder
	upper := true
	for _, r := range base {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		sb.WriteRune(r)
	}

	name := sb.String()
	if name == "" || !unicode.IsLetter([]rune(name)[0]) {
		name = "App" + name
	}
	return name
}

func commentIf(cfg *Configuration, component Component) string {
	if component != "" && cfg.CommentOut(component) {
		return commentPrefix
	}
	return ""
}

// loadDefaults is "<major>.<minor>" of the framework version.
func loadDefaults(version Version) string {
	release := firstN(version.ReleaseSegments(), 2) //nolint:mnd // major and minor
	for len(release) < 2 {                          //nolint:mnd // major and minor
		release = append(release, "0")
	}
	return strings.Join(release, ".")
}
