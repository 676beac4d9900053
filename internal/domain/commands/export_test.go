package commands

// PackageAddCommand exports packageAddCommand for testing.
var PackageAddCommand = packageAddCommand //nolint:gochecknoglobals // test export

// ManifestPredicate exports manifestPredicate for testing.
var ManifestPredicate = manifestPredicate //nolint:gochecknoglobals // test export
