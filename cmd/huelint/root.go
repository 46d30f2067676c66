package huelint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/varalys/huelint/internal/config"
	"github.com/varalys/huelint/internal/engine"
	"github.com/varalys/huelint/internal/logging"
	"github.com/varalys/huelint/internal/report"
	"github.com/varalys/huelint/internal/types"
)

type options struct {
	strict   bool
	json     bool
	sarif    bool
	table    bool
	noColor  bool
	debug    bool
	threads  int
	baseline string
}

// exitCode carries a non-error exit status out of a command.
type exitCode int

func (e exitCode) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

// Execute runs the huelint CLI and exits the process. It should be called
// by the main package.
func Execute() {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes the CLI with args and returns the process exit status:
// 0 on success or report-only findings, 1 on strict findings, 2 on error.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.ExecuteContext(ctx)
	var ec exitCode
	if errors.As(err, &ec) {
		return int(ec)
	}
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "huelint",
		Short: "Find raw color literals that should use color tokens",
		Long: "huelint scans the current directory for raw hex, rgb/rgba, hsl/hsla and named " +
			"color literals that should use semantic color tokens, and for world palette roles " +
			"borrowed outside world rendering. Findings exit non-zero only with --strict.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScan(cmd, opts)
		},
	}

	cmd.PersistentFlags().IntVar(&opts.threads, "threads", 1, "worker count (-1 = GOMAXPROCS)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log diagnostics to stderr")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "exit 1 when any finding is reported")
	cmd.Flags().BoolVar(&opts.json, "json", false, "emit JSON")
	cmd.Flags().BoolVar(&opts.sarif, "sarif", false, "emit SARIF 2.1.0")
	cmd.Flags().BoolVar(&opts.table, "table", false, "emit a bordered table")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colorized summary")
	cmd.Flags().StringVar(&opts.baseline, "baseline", "", "hide findings recorded in this baseline file")

	cmd.AddCommand(
		newBaselineCmd(opts),
		newCICmd(),
		newKindsCmd(),
		newCompletionCmd(),
		newVersionCmd(),
	)
	return cmd
}

// scanCwd scans the current working directory with the built-in policy.
func scanCwd(cmd *cobra.Command, opts *options) ([]types.Finding, error) {
	root, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	pol, err := config.Default()
	if err != nil {
		return nil, err
	}
	log := logging.New(cmd.ErrOrStderr(), opts.debug)
	defer func() { _ = log.Sync() }()

	res, err := engine.ScanWithStats(cmd.Context(), engine.Config{
		Root:    root,
		Threads: opts.threads,
		Policy:  pol,
		Logger:  log,
	})
	if err != nil {
		return nil, fmt.Errorf("scan error: %w", err)
	}

	findings := res.Findings
	if opts.baseline != "" {
		base, err := report.LoadBaseline(opts.baseline)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Warnw("baseline not found; reporting all findings", "path", opts.baseline)
		case err != nil:
			return nil, err
		}
		findings = report.FilterNewFindings(findings, base)
		log.Debugw("baseline applied", "path", opts.baseline, "hidden", len(res.Findings)-len(findings))
	}
	return findings, nil
}

func runScan(cmd *cobra.Command, opts *options) error {
	findings, err := scanCwd(cmd, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case opts.sarif:
		if err := report.WriteSARIF(out, findings, versionString(), opts.strict); err != nil {
			return fmt.Errorf("sarif error: %w", err)
		}
	case opts.json:
		if err := report.WriteJSON(out, findings); err != nil {
			return err
		}
	case opts.table:
		if err := report.PrintTable(out, findings); err != nil {
			return err
		}
		report.PrintSummary(cmd.ErrOrStderr(), findings, report.SummaryOptions{Strict: opts.strict, NoColor: opts.noColor})
	default:
		if err := report.PrintLines(out, findings); err != nil {
			return err
		}
	}

	if code := report.ExitCode(findings, opts.strict); code != 0 {
		return exitCode(code)
	}
	return nil
}
