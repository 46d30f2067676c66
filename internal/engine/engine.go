package engine

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/varalys/huelint/internal/config"
	"github.com/varalys/huelint/internal/detectors"
	"github.com/varalys/huelint/internal/logging"
	"github.com/varalys/huelint/internal/types"
)

// Config controls a scan. The zero Policy means the built-in policy.
type Config struct {
	Root    string
	Threads int // 0 or 1 scans sequentially; negative means GOMAXPROCS
	Policy  config.Policy
	Logger  *zap.SugaredLogger
}

// Result contains findings and basic scan statistics.
type Result struct {
	Findings     []types.Finding
	FilesScanned int
	FilesExempt  int
	FilesSkipped int // not valid UTF-8
	Duration     time.Duration
}

// Scan runs a scan and returns only findings.
func Scan(ctx context.Context, cfg Config) ([]types.Finding, error) {
	res, err := ScanWithStats(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return res.Findings, nil
}

// ScanWithStats walks cfg.Root, scans every candidate file and returns the
// accepted findings grouped by file in path order. Any file read error
// aborts the scan.
func ScanWithStats(ctx context.Context, cfg Config) (Result, error) {
	var result Result
	if ctx == nil {
		ctx = context.Background()
	}
	pol, err := resolvePolicy(cfg.Policy)
	if err != nil {
		return result, err
	}
	log := cfg.Logger
	if log == nil {
		log = logging.Nop()
	}
	threads := workerCount(cfg.Threads)
	log.Debugw("scan started", "root", cfg.Root, "threads", threads)

	started := time.Now()
	var (
		mu     sync.Mutex
		byFile = map[string][]types.Finding{}
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	walkErr := Walk(gctx, cfg.Root, pol, func(rel, abs string) error {
		if pol.IsExempt(rel) {
			mu.Lock()
			result.FilesExempt++
			mu.Unlock()
			log.Debugw("exempt file", "file", rel)
			return nil
		}
		g.Go(func() error {
			b, err := os.ReadFile(abs)
			if err != nil {
				return fmt.Errorf("read %s: %w", rel, err)
			}
			if !utf8.Valid(b) {
				mu.Lock()
				result.FilesSkipped++
				mu.Unlock()
				log.Debugw("skipping non UTF-8 file", "file", rel)
				return nil
			}
			fs := ScanText(rel, string(b), pol)
			mu.Lock()
			result.FilesScanned++
			if len(fs) > 0 {
				byFile[rel] = fs
			}
			mu.Unlock()
			return nil
		})
		return nil
	})
	if err := g.Wait(); err != nil {
		return result, err
	}
	if walkErr != nil {
		return result, fmt.Errorf("walk %s: %w", cfg.Root, walkErr)
	}

	files := make([]string, 0, len(byFile))
	for f := range byFile {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		result.Findings = append(result.Findings, byFile[f]...)
	}
	result.Duration = time.Since(started)
	log.Debugw("scan finished",
		"files", result.FilesScanned,
		"exempt", result.FilesExempt,
		"skipped", result.FilesSkipped,
		"findings", len(result.Findings),
		"duration", result.Duration,
	)
	return result, nil
}

// ScanText applies the role-borrow and raw color checks to the text of the
// file at rel. Role-borrow findings come first, then raw color findings
// grouped by pattern.
func ScanText(rel, text string, pol config.Policy) []types.Finding {
	if pol.IsExempt(rel) {
		return nil
	}
	text = normalizeNewlines(text)
	lines := detectors.NewLines(text)
	var out []types.Finding
	emit := func(m detectors.Match) {
		line, col := lines.Position(m.Start)
		out = append(out, types.Finding{File: rel, Line: line, Column: col, Kind: m.Kind, Snippet: m.Text})
	}

	if pol.IsRoleBorrowFile(rel) {
		for _, m := range detectors.FindRoleBorrows(text) {
			emit(m)
		}
	}

	ex := newExemptions(rel, text, lines, pol)
	for _, m := range detectors.FindRawColors(text) {
		if ex.suppress(m) {
			continue
		}
		emit(m)
	}
	return out
}

// normalizeNewlines maps CRLF and lone CR to LF so line numbers follow
// text-mode reading.
func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func resolvePolicy(p config.Policy) (config.Policy, error) {
	if len(p.IncludeExts) == 0 {
		return config.Default()
	}
	return p, p.Validate()
}

func workerCount(threads int) int {
	switch {
	case threads < 0:
		return runtime.GOMAXPROCS(0)
	case threads == 0:
		return 1
	}
	return threads
}

// DetectorIDs returns the kinds of finding a scan can report.
func DetectorIDs() []string {
	return detectors.Kinds()
}
