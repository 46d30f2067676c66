// Package engine contains the core scanning logic for huelint. It walks the
// target tree, runs the color and palette detectors over each file, applies
// the exemption rules and returns structured findings. This package is
// internal; external consumers should use the stable facade in pkg/core.
package engine
