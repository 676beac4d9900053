package entities

// FindRCFileIn exports findRCFileIn for testing.
var FindRCFileIn = findRCFileIn //nolint:gochecknoglobals // test export
