// Package huelint provides the command-line interface for the huelint color
// token linter. The root command scans the current directory; subcommands
// manage baselines, list finding kinds and print version information.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/varalys/huelint/cmd/huelint"
//	func main() { huelint.Execute() }
package huelint
