package config

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

//go:embed policy.yaml
var builtinPolicy []byte

// Policy is the fixed set of path rules the linter applies. It is decoded
// once at startup and shared read-only by the walker and the engine.
type Policy struct {
	ExemptFiles     []string `yaml:"exempt_files"`
	RoleBorrowFiles []string `yaml:"role_borrow_files"`
	RootZoneFile    string   `yaml:"root_zone_file"`
	ExcludeDirs     []string `yaml:"exclude_dirs"`
	IncludeExts     []string `yaml:"include_exts"`
}

// Default returns the built-in policy.
func Default() (Policy, error) {
	return Parse(builtinPolicy)
}

// MustDefault is like Default but panics if the built-in policy is invalid.
func MustDefault() Policy {
	p, err := Default()
	if err != nil {
		panic(err)
	}
	return p
}

// Parse decodes and validates a YAML policy document.
func Parse(b []byte) (Policy, error) {
	var p Policy
	if err := yaml.Unmarshal(b, &p); err != nil {
		return p, fmt.Errorf("decode policy: %w", err)
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// Validate checks that every path entry is a usable pattern and that the
// walker has at least one extension to look for.
func (p Policy) Validate() error {
	if len(p.IncludeExts) == 0 {
		return errors.New("policy: include_exts is empty")
	}
	for _, ext := range p.IncludeExts {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("policy: extension %q must start with a dot", ext)
		}
	}
	for _, list := range [][]string{p.ExemptFiles, p.RoleBorrowFiles, {p.RootZoneFile}} {
		for _, pat := range list {
			if pat == "" {
				continue
			}
			if strings.Contains(pat, "\\") {
				return fmt.Errorf("policy: path %q must use forward slashes", pat)
			}
			if !doublestar.ValidatePattern(pat) {
				return fmt.Errorf("policy: invalid path pattern %q", pat)
			}
		}
	}
	return nil
}

// IsExempt reports whether rel is an authoritative color definition file
// that is never scanned.
func (p Policy) IsExempt(rel string) bool {
	return matchAny(rel, p.ExemptFiles)
}

// IsRoleBorrowFile reports whether the role-borrow check applies to rel.
func (p Policy) IsRoleBorrowFile(rel string) bool {
	return matchAny(rel, p.RoleBorrowFiles)
}

// IsRootZoneFile reports whether rel is the markup entry point whose first
// :root block is exempt from hex findings.
func (p Policy) IsRootZoneFile(rel string) bool {
	if p.RootZoneFile == "" {
		return false
	}
	return matchAny(rel, []string{p.RootZoneFile})
}

// ExcludesDir reports whether a directory with the given base name is pruned.
func (p Policy) ExcludesDir(name string) bool {
	for _, d := range p.ExcludeDirs {
		if d == name {
			return true
		}
	}
	return false
}

// IncludesFile reports whether a file name carries one of the scanned
// extensions. The comparison is case-sensitive.
func (p Policy) IncludesFile(name string) bool {
	// A leading dot marks a hidden file, not an extension: ".css" has none.
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return false
	}
	ext := name[i:]
	for _, e := range p.IncludeExts {
		if e == ext {
			return true
		}
	}
	return false
}

func matchAny(rel string, patterns []string) bool {
	for _, pat := range patterns {
		if ok, _ := doublestar.Match(pat, rel); ok {
			return true
		}
	}
	return false
}
