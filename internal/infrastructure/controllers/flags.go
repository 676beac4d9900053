package controllers

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rios0rios0/scaffolder/internal/domain/entities"
)

const envPrefix = "SCAFFOLDER"

//nolint:gochecknoglobals // flag help text
var flagUsage = map[string]string{
	"database":            "Preconfigure for the selected database (" + strings.Join(entities.SupportedDatabases(), "/") + ")",
	"template":            "Path or URL to an HCL application template",
	"skip_active_record":  "Skip Active Record files",
	"skip_active_storage": "Skip Active Storage files",
	"skip_action_mailbox": "Skip Action Mailbox gem",
	"skip_action_text":    "Skip Action Text gem",
	"skip_action_mailer":  "Skip Action Mailer files",
	"skip_action_cable":   "Skip Action Cable files",
	"skip_sprockets":      "Skip Sprockets files",
	"skip_javascript":     "Skip JavaScript files",
	"skip_hotwire":        "Skip Hotwire integration",
	"skip_jbuilder":       "Skip jbuilder gem",
	"skip_test":           "Skip test files",
	"skip_system_test":    "Skip system test files",
	"skip_bootsnap":       "Skip bootsnap gem",
	"skip_bundle":         "Don't run bundle install",
	"skip_git":            "Skip git init",
	"skip_keeps":          "Skip source control .keep files",
	"webpack":             "Use an external JavaScript bundler (webpacker)",
	"api":                 "Preconfigure smaller stack for API only apps",
	"dev":                 "Set up the application with Gemfile pointing to your framework checkout",
	"edge":                "Set up the application with Gemfile pointing to the framework repository",
	"main":                "Set up the application with Gemfile pointing to the framework repository main branch",
	"pretend":             "Run but do not make any changes",
	"alternate_runtime":   "Generate for the JRuby runtime",
}

func flagName(key string) string { return strings.ReplaceAll(key, "_", "-") }

// addConfigurationFlags registers one flag per recognized configuration key.
func addConfigurationFlags(cmd *cobra.Command) {
	for _, key := range entities.RecognizedKeys() {
		if entities.IsBoolKey(key) {
			cmd.Flags().Bool(flagName(key), false, flagUsage[key])
			continue
		}
		cmd.Flags().String(flagName(key), "", flagUsage[key])
	}
	cmd.Flags().StringSlice("exclude", nil, "Gems to leave out of the manifest")
	cmd.Flags().String("dev-path", entities.DefaultDevPath, "Framework checkout used by --dev")
}

// resolveConfiguration merges flags, SCAFFOLDER_* environment variables and
// the rc file, then resolves them into a Configuration.
func resolveConfiguration(cmd *cobra.Command) (*entities.Configuration, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := readRCFile(cmd, v); err != nil {
		return nil, err
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	flags := make(map[string]any)
	for _, key := range entities.RecognizedKeys() {
		name := flagName(key)
		raw := v.Get(name)
		if !v.IsSet(name) && v.IsSet(key) {
			raw = v.Get(key)
		}
		flags[key] = normalizeFlagValue(key, raw)
	}

	return entities.ResolveConfiguration(flags)
}

// normalizeFlagValue converts environment strings such as "true" into bools;
// anything else is left for ResolveConfiguration to reject.
func normalizeFlagValue(key string, raw any) any {
	s, isString := raw.(string)
	if !isString || !entities.IsBoolKey(key) {
		return raw
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return raw
}

func readRCFile(cmd *cobra.Command, v *viper.Viper) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		found, err := entities.FindRCFile()
		if errors.Is(err, entities.ErrRCFileNotFound) {
			return nil
		}
		path = found
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read rc file %q: %w", path, err)
	}
	logger.Infof("Using rc file: %s", v.ConfigFileUsed())
	return checkRCKeys(v)
}

// checkRCKeys rejects rc-file keys that are not configuration keys. It must
// run before flags are bound, while the rc file is the only key source.
func checkRCKeys(v *viper.Viper) error {
	keys := v.AllKeys()
	sort.Strings(keys)
	for _, key := range keys {
		if !entities.IsRecognizedKey(strings.ReplaceAll(key, "-", "_")) {
			return &entities.InvalidConfigurationError{
				Key:    key,
				Reason: "in " + v.ConfigFileUsed() + " is not a recognized option",
			}
		}
	}
	return nil
}

// frameworkVersion parses the --framework-version flag.
func frameworkVersion(cmd *cobra.Command) (entities.Version, error) {
	raw, _ := cmd.Flags().GetString("framework-version")
	if raw == "" {
		raw = entities.DefaultFrameworkVersion
	}
	return entities.ParseVersion(raw)
}

func manifestOptions(cmd *cobra.Command) (entities.Version, string, []string, error) {
	version, err := frameworkVersion(cmd)
	if err != nil {
		return entities.Version{}, "", nil, err
	}
	devPath, _ := cmd.Flags().GetString("dev-path")
	exclude, _ := cmd.Flags().GetStringSlice("exclude")
	return version, devPath, exclude, nil
}
