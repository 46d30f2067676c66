package huelint

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// ciTemplates maps a provider to the pipeline file it writes and its body.
var ciTemplates = map[string]struct{ path, body string }{
	"github": {".github/workflows/huelint.yml", `name: huelint
on: [push, pull_request]
jobs:
  colors:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - uses: actions/setup-go@v5
        with:
          go-version: '1.25.x'
      - run: go install github.com/varalys/huelint@latest
      - run: huelint --strict
`},
	"gitlab": {".gitlab-ci.yml", `stages: [lint]
colors:
  stage: lint
  image: golang:1.25
  script:
    - go install github.com/varalys/huelint@latest
    - huelint --sarif > huelint.sarif || true
    - huelint --strict
  artifacts:
    when: always
    paths:
      - huelint.sarif
`},
	"bitbucket": {"bitbucket-pipelines.yml", `pipelines:
  default:
    - step:
        name: Color tokens
        image: golang:1.25
        caches:
          - go
        script:
          - go install github.com/varalys/huelint@latest
          - huelint --strict
`},
	"azure": {"azure-pipelines.yml", `trigger:
- main

pool:
  vmImage: 'ubuntu-latest'

steps:
- task: GoTool@0
  inputs:
    version: '1.25.x'
- script: |
    go install github.com/varalys/huelint@latest
    export PATH="$PATH:$(go env GOPATH)/bin"
    huelint --strict
  displayName: 'huelint'
`},
}

func ciProviders() []string {
	names := make([]string, 0, len(ciTemplates))
	for name := range ciTemplates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newCICmd() *cobra.Command {
	ci := &cobra.Command{Use: "ci", Short: "CI template helpers for multiple providers"}

	var (
		provider string
		force    bool
	)
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a CI pipeline that runs huelint --strict",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tpl, ok := ciTemplates[provider]
			if !ok {
				return fmt.Errorf("unknown --provider %q. Supported: %s", provider, strings.Join(ciProviders(), ", "))
			}
			path := filepath.FromSlash(tpl.path)
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", tpl.path)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(tpl.body), 0o644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Wrote", tpl.path)
			return nil
		},
	}
	initCmd.Flags().StringVar(&provider, "provider", "", "CI provider: "+strings.Join(ciProviders(), " | "))
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing pipeline file")
	_ = initCmd.MarkFlagRequired("provider")
	ci.AddCommand(initCmd)
	return ci
}
