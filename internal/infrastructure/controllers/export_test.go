package controllers

// ResolveConfiguration exports resolveConfiguration for testing.
var ResolveConfiguration = resolveConfiguration //nolint:gochecknoglobals // test export
