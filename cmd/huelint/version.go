package huelint

import (
	"fmt"
	"runtime/debug"

	semver "github.com/blang/semver/v4"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X ...version=v1.2.3".
var version = "0.1.0"

// versionString normalises version to semver, tolerating a leading "v".
func versionString() string {
	v, err := semver.ParseTolerant(version)
	if err != nil {
		return version
	}
	return v.String()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			rev, ts := "", ""
			if info, ok := debug.ReadBuildInfo(); ok {
				for _, s := range info.Settings {
					switch s.Key {
					case "vcs.revision":
						rev = s.Value
					case "vcs.time":
						ts = s.Value
					}
				}
			}
			out := cmd.OutOrStdout()
			if rev != "" || ts != "" {
				fmt.Fprintf(out, "%s (commit %s, built %s)\n", versionString(), short(rev), ts)
				return
			}
			fmt.Fprintln(out, versionString())
		},
	}
}

func short(s string) string {
	if len(s) > 7 {
		return s[:7]
	}
	return s
}
