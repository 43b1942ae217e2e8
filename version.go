package graft

import _ "embed"

// Version is the current release, embedded from the VERSION file. It
// carries a trailing newline; trim before display.
//
//go:embed VERSION
var Version string
