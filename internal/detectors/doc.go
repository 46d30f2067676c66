// Package detectors holds the fixed color literal and palette role patterns
// and the offset-to-position helpers used to report them.
package detectors
