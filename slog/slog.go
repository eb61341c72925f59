// Package slog provides log/slog decorators for docref services. Each
// decorator logs one record per call with its duration and error.
package slog
