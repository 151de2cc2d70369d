// Package logger builds *slog.Logger instances for the service and the CLI.
//
// New applies functional options on top of JSON/INFO defaults. WithEnvironment
// switches between a debug text logger for development and a JSON logger for
// staging and production, tagging every record with the service name and
// environment.
//
// Request-scoped values such as the request id or the profile id are pulled
// from the context at log time by ContextExtractor functions registered with
// WithContextExtractors. Always log with the *Context variants (InfoContext,
// LogAttrs) so the extractors see the request context.
//
// The attribute helpers (Error, ProfileID, Component, Event, ...) keep key
// names consistent across packages.
package logger
