package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/varalys/huelint/internal/types"
)

// DefaultBaselinePath is where `baseline update` writes by default.
const DefaultBaselinePath = "huelint.baseline.json"

// Baseline is a set of accepted finding fingerprints.
type Baseline struct {
	Items map[string]bool `json:"items"`
}

// Fingerprint identifies a finding independently of its line and column so
// baselines survive unrelated edits to the same file.
func Fingerprint(f types.Finding) string {
	key := strings.Join([]string{f.File, string(f.Kind), f.Snippet}, "|")
	return fmt.Sprintf("%016x", xxhash.Sum64String(key))
}

// LoadBaseline reads a baseline file. A missing file yields an empty
// baseline together with the error.
func LoadBaseline(path string) (Baseline, error) {
	b := Baseline{Items: map[string]bool{}}
	data, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}
	if err := json.Unmarshal(data, &b); err != nil {
		return Baseline{Items: map[string]bool{}}, fmt.Errorf("parse baseline %s: %w", path, err)
	}
	if b.Items == nil {
		b.Items = map[string]bool{}
	}
	return b, nil
}

// SaveBaseline writes the fingerprints of findings to path.
func SaveBaseline(path string, findings []types.Finding) error {
	b := Baseline{Items: map[string]bool{}}
	for _, f := range findings {
		b.Items[Fingerprint(f)] = true
	}
	buf, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(buf, '\n'), 0o644)
}

// FilterNewFindings drops findings already recorded in base.
func FilterNewFindings(findings []types.Finding, base Baseline) []types.Finding {
	var out []types.Finding
	for _, f := range findings {
		if !base.Items[Fingerprint(f)] {
			out = append(out, f)
		}
	}
	return out
}
