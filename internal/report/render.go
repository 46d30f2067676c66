package report

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/varalys/huelint/internal/types"
)

// Sort orders findings by file path, then line, then column. Findings at
// the same position keep their relative order.
func Sort(findings []types.Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}

// sorted returns a sorted copy of findings, leaving the caller's slice
// untouched.
func sorted(findings []types.Finding) []types.Finding {
	out := make([]types.Finding, len(findings))
	copy(out, findings)
	Sort(out)
	return out
}

// Line renders a finding as "<file>:<line>:<column> [<kind>] <snippet>".
func Line(f types.Finding) string {
	return f.File + ":" + strconv.Itoa(f.Line) + ":" + strconv.Itoa(f.Column) + " [" + string(f.Kind) + "] " + f.Snippet
}

// PrintLines writes one line per finding in sorted order. Nothing is
// written when there are no findings.
func PrintLines(w io.Writer, findings []types.Finding) error {
	findings = sorted(findings)
	bw := bufio.NewWriter(w)
	for _, f := range findings {
		if _, err := bw.WriteString(Line(f) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// PrintTable renders findings in sorted order as a bordered table.
func PrintTable(w io.Writer, findings []types.Finding) error {
	findings = sorted(findings)
	if len(findings) == 0 {
		return nil
	}
	table := tablewriter.NewWriter(w)
	table.Header("FILE", "LINE", "COL", "KIND", "SNIPPET")
	for _, f := range findings {
		row := []string{f.File, strconv.Itoa(f.Line), strconv.Itoa(f.Column), string(f.Kind), f.Snippet}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// SummaryOptions controls the stderr summary line.
type SummaryOptions struct {
	Strict  bool
	NoColor bool
}

// PrintSummary writes a one-line count of findings and affected files.
// It writes nothing when there are no findings.
func PrintSummary(w io.Writer, findings []types.Finding, opts SummaryOptions) {
	if len(findings) == 0 {
		return
	}
	files := map[string]bool{}
	for _, f := range findings {
		files[f.File] = true
	}
	mode := "report-only"
	c := color.New(color.FgYellow)
	if opts.Strict {
		mode = "strict"
		c = color.New(color.FgRed, color.Bold)
	}
	if opts.NoColor {
		c.DisableColor()
	}
	_, _ = c.Fprintf(w, "huelint: %s in %s (%s)\n", plural(len(findings), "finding"), plural(len(files), "file"), mode)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// ExitCode maps a finding list to the process exit status: findings only
// fail the run in strict mode.
func ExitCode(findings []types.Finding, strict bool) int {
	if len(findings) > 0 && strict {
		return 1
	}
	return 0
}
