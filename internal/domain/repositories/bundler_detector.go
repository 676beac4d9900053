package repositories

// JSBundler is the JavaScript tooling a host application uses.
type JSBundler string

const (
	JSBundlerNone      JSBundler = "none"
	JSBundlerNode      JSBundler = "node"
	JSBundlerImportmap JSBundler = "importmap"
)

// BundlerDetector inspects an application to find its JavaScript setup.
type BundlerDetector interface {
	DetectBundler(root string) JSBundler

	// DetectPackageManager returns "pnpm", "yarn" or "npm" from the lockfiles in root.
	DetectPackageManager(root string) string
}
