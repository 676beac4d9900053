package templates

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	logger "github.com/sirupsen/logrus"
	"github.com/zclconf/go-cty/cty"

	"github.com/rios0rios0/scaffolder/internal/domain/entities"
	"github.com/rios0rios0/scaffolder/internal/domain/repositories"
)

const fetchTimeout = 30 * time.Second

// templateSchema is the top-level layout of an application template.
//
//nolint:gochecknoglobals // static schema
var templateSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "gem", LabelNames: []string{"name"}},
		{Type: "file", LabelNames: []string{"path"}},
	},
}

//nolint:gochecknoglobals // compiled once
var (
	gemNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)
	groupPattern   = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)
)

// TemplateRepository reads HCL application templates from disk or over HTTP.
type TemplateRepository struct {
	client *http.Client
}

var _ repositories.TemplateRepository = (*TemplateRepository)(nil)

// NewTemplateRepository creates a TemplateRepository backed by a clean HTTP client.
func NewTemplateRepository() *TemplateRepository {
	client := cleanhttp.DefaultClient()
	client.Timeout = fetchTimeout
	return NewTemplateRepositoryWithClient(client)
}

// NewTemplateRepositoryWithClient creates a TemplateRepository using client for remote templates.
func NewTemplateRepositoryWithClient(client *http.Client) *TemplateRepository {
	return &TemplateRepository{client: client}
}

// Load reads and parses the template at location (a file path or http(s) URL).
func (r *TemplateRepository) Load(ctx context.Context, location string) (*entities.ApplicationTemplate, error) {
	data, err := r.read(ctx, location)
	if err != nil {
		return nil, &entities.TemplateLoadError{Location: location, Err: err}
	}

	tmpl, err := parseTemplate(data, location)
	if err != nil {
		return nil, &entities.TemplateLoadError{Location: location, Err: err}
	}

	logger.Debugf("[template] %s declares %d gems and %d files", location, len(tmpl.Gems), len(tmpl.Files))
	return tmpl, nil
}

func (r *TemplateRepository) read(ctx context.Context, location string) ([]byte, error) {
	if !isRemote(location) {
		return os.ReadFile(location)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch template: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// --- parsing ---

func parseTemplate(data []byte, filename string) (*entities.ApplicationTemplate, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	content, contentDiags := file.Body.Content(templateSchema)
	if contentDiags.HasErrors() {
		return nil, contentDiags
	}

	tmpl := &entities.ApplicationTemplate{Location: filename}
	for _, block := range content.Blocks {
		switch block.Type {
		case "gem":
			entry, err := parseGemBlock(block)
			if err != nil {
				return nil, err
			}
			tmpl.Gems = append(tmpl.Gems, entry)
		case "file":
			tf, err := parseFileBlock(block)
			if err != nil {
				return nil, err
			}
			tmpl.Files = append(tmpl.Files, tf)
		}
	}
	return tmpl, nil
}

func parseGemBlock(block *hcl.Block) (entities.DependencyEntry, error) {
	name := block.Labels[0]
	entry := entities.DependencyEntry{Name: name, Source: entities.RegistrySource()}
	if !gemNamePattern.MatchString(name) {
		return entry, fmt.Errorf("gem %q: invalid gem name", name)
	}

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return entry, diags
	}

	values := make(map[string]cty.Value, len(attrs))
	for key, attr := range attrs {
		val, valDiags := attr.Expr.Value(&hcl.EvalContext{})
		if valDiags.HasErrors() {
			return entry, valDiags
		}
		values[key] = val
	}

	for _, key := range []string{"version", "comment", "github", "branch", "path", "group", "require", "commented_out"} {
		val, ok := values[key]
		if !ok {
			continue
		}
		delete(values, key)
		if err := applyGemAttribute(&entry, key, val); err != nil {
			return entry, fmt.Errorf("gem %q: %w", name, err)
		}
	}
	if len(values) > 0 {
		unknown := make([]string, 0, len(values))
		for key := range values {
			unknown = append(unknown, key)
		}
		sort.Strings(unknown)
		return entry, fmt.Errorf("gem %q: unsupported attribute %q", name, unknown[0])
	}

	if entry.Source.Branch != "" && entry.Source.Kind != entities.SourceKindGit {
		return entry, fmt.Errorf("gem %q: branch requires github", name)
	}
	return entry, nil
}

func applyGemAttribute(entry *entities.DependencyEntry, key string, val cty.Value) error {
	var err error
	switch key {
	case "version":
		entry.Versions, err = stringList(val)
	case "comment":
		if entry.Comment, err = stringValue(val); err == nil && strings.ContainsAny(entry.Comment, "\r\n") {
			return errors.New("comment must be a single line")
		}
	case "github":
		entry.Source.Kind = entities.SourceKindGit
		entry.Source.Repo, err = stringValue(val)
	case "branch":
		entry.Source.Branch, err = stringValue(val)
	case "path":
		if entry.Source.Kind == entities.SourceKindGit {
			return errors.New("github and path are mutually exclusive")
		}
		entry.Source.Kind = entities.SourceKindPath
		entry.Source.Path, err = stringValue(val)
	case "group":
		var groups []string
		if groups, err = stringList(val); err == nil {
			for _, group := range groups {
				if !groupPattern.MatchString(group) {
					return fmt.Errorf("invalid group %q", group)
				}
			}
			entry.Attributes = append(entry.Attributes, entities.Attribute{Key: "group", Value: rubySymbols(groups)})
		}
	case "require":
		var required bool
		if required, err = boolValue(val); err == nil && !required {
			entry.Attributes = append(entry.Attributes, entities.Attribute{Key: "require", Value: "false"})
		}
	case "commented_out":
		entry.CommentedOut, err = boolValue(val)
	}
	if err != nil {
		return fmt.Errorf("attribute %q: %w", key, err)
	}
	return nil
}

func parseFileBlock(block *hcl.Block) (entities.TemplateFile, error) {
	file := entities.TemplateFile{Path: block.Labels[0]}
	if !isContainedPath(file.Path) {
		return file, fmt.Errorf("file %q: path must be relative and stay inside the application", file.Path)
	}

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return file, diags
	}
	for key, attr := range attrs {
		if key != "content" {
			return file, fmt.Errorf("file %q: unsupported attribute %q", file.Path, key)
		}
		val, valDiags := attr.Expr.Value(&hcl.EvalContext{})
		if valDiags.HasErrors() {
			return file, valDiags
		}
		content, err := stringValue(val)
		if err != nil {
			return file, fmt.Errorf("file %q: %w", file.Path, err)
		}
		file.Content = content
	}
	return file, nil
}

// isContainedPath rejects absolute paths and any path that climbs out of the
// application root once cleaned.
func isContainedPath(p string) bool {
	if p == "" || filepath.IsAbs(p) || strings.HasPrefix(p, "/") {
		return false
	}
	clean := filepath.ToSlash(filepath.Clean(p))
	return clean != "." && clean != ".." && !strings.HasPrefix(clean, "../")
}

// --- cty helpers ---

func stringValue(val cty.Value) (string, error) {
	if val.IsNull() || val.Type() != cty.String {
		return "", fmt.Errorf("expected a string, got %s", val.Type().FriendlyName())
	}
	return val.AsString(), nil
}

func boolValue(val cty.Value) (bool, error) {
	if val.IsNull() || val.Type() != cty.Bool {
		return false, fmt.Errorf("expected a bool, got %s", val.Type().FriendlyName())
	}
	return val.True(), nil
}

// stringList accepts a single string or a list/tuple of strings.
func stringList(val cty.Value) ([]string, error) {
	if val.IsNull() {
		return nil, errors.New("expected a string or list of strings, got null")
	}
	if val.Type() == cty.String {
		return []string{val.AsString()}, nil
	}
	if !val.Type().IsTupleType() && !val.Type().IsListType() {
		return nil, fmt.Errorf("expected a string or list of strings, got %s", val.Type().FriendlyName())
	}

	var out []string
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		s, err := stringValue(elem)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func rubySymbols(names []string) string {
	symbols := make([]string, len(names))
	for i, n := range names {
		symbols[i] = ":" + n
	}
	if len(symbols) == 1 {
		return symbols[0]
	}
	return "[" + strings.Join(symbols, ", ") + "]"
}
