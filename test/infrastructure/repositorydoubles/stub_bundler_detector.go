//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/scaffolder/internal/domain/repositories"
)

// StubBundlerDetector implements repositories.BundlerDetector with fixed answers.
type StubBundlerDetector struct {
	Bundler        repositories.JSBundler
	PackageManager string
}

var _ repositories.BundlerDetector = (*StubBundlerDetector)(nil)

func (d *StubBundlerDetector) DetectBundler(string) repositories.JSBundler {
	if d.Bundler == "" {
		return repositories.JSBundlerNone
	}
	return d.Bundler
}

func (d *StubBundlerDetector) DetectPackageManager(string) string {
	if d.PackageManager == "" {
		return "npm"
	}
	return d.PackageManager
}
