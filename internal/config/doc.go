// Package config holds the built-in huelint policy: the exempt, role-borrow
// and root-zone file sets plus the walker's directory and extension filters.
// The policy is embedded YAML; there is no user configuration file.
package config
