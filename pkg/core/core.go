package core

import (
	"context"

	"github.com/varalys/huelint/internal/config"
	"github.com/varalys/huelint/internal/engine"
	"github.com/varalys/huelint/internal/report"
	"github.com/varalys/huelint/internal/types"
)

// Re-export selected internal types as a stable public API surface.
type Config = engine.Config
type Result = engine.Result
type Finding = types.Finding
type Kind = types.Kind

// Scan is the stable entrypoint for other programs. Findings are sorted by
// file, line and column.
func Scan(ctx context.Context, cfg Config) ([]Finding, error) {
	fs, err := engine.Scan(ctx, cfg)
	if err != nil {
		return nil, err
	}
	report.Sort(fs)
	return fs, nil
}

// ScanWithStats runs a scan and returns sorted findings with statistics.
func ScanWithStats(ctx context.Context, cfg Config) (Result, error) {
	res, err := engine.ScanWithStats(ctx, cfg)
	if err != nil {
		return res, err
	}
	report.Sort(res.Findings)
	return res, nil
}

// Check lints a single in-memory file with the built-in policy. rel is the
// slash-separated path the policy should see, e.g. "src/data/Balance.js".
func Check(rel, text string) []Finding {
	fs := engine.ScanText(rel, text, config.MustDefault())
	report.Sort(fs)
	return fs
}

// DetectorIDs returns the kinds of finding a scan can report.
func DetectorIDs() []string { return engine.DetectorIDs() }
