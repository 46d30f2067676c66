// Package core provides a small, stable facade over huelint's internal
// engine for editor plugins and build tools. It re-exports a narrow API
// surface so integrations can depend on a stable import path.
//
// Example:
//
//	findings, err := core.Scan(ctx, core.Config{Root: "."})
//	if err != nil { /* handle */ }
//	_ = core.MarshalFindings(os.Stdout, findings)
package core
