// Package docref resolves external API reference URLs and quick-navigation
// signatures for Dart declarations, and models the bnd run configuration
// used to launch a run descriptor from the IDE.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, scip/, goquery/).
package docref
