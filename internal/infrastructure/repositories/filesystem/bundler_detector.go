package filesystem

import (
	"os"
	"path/filepath"

	"github.com/rios0rios0/scaffolder/internal/domain/repositories"
)

const (
	pkgMgrPnpm = "pnpm"
	pkgMgrYarn = "yarn"
	pkgMgrNpm  = "npm"
)

// BundlerDetector inspects marker files to find the JavaScript tooling of an app.
type BundlerDetector struct{}

var _ repositories.BundlerDetector = (*BundlerDetector)(nil)

// NewBundlerDetector creates a new BundlerDetector.
func NewBundlerDetector() *BundlerDetector {
	return &BundlerDetector{}
}

// DetectBundler prefers a node toolchain (package.json) over an import map.
func (d *BundlerDetector) DetectBundler(root string) repositories.JSBundler {
	if fileExists(root, "package.json") {
		return repositories.JSBundlerNode
	}
	if fileExists(root, "config/importmap.rb") {
		return repositories.JSBundlerImportmap
	}
	return repositories.JSBundlerNone
}

// DetectPackageManager determines which package manager the application
// uses by checking for lockfiles.
func (d *BundlerDetector) DetectPackageManager(root string) string {
	if fileExists(root, "pnpm-lock.yaml") {
		return pkgMgrPnpm
	}
	if fileExists(root, "yarn.lock") {
		return pkgMgrYarn
	}
	return pkgMgrNpm
}

func fileExists(root, path string) bool {
	_, err := os.Stat(filepath.Join(root, path))
	return err == nil
}
