package report

import (
	"encoding/json"
	"io"

	"github.com/varalys/huelint/internal/types"
)

// WriteJSON writes findings in sorted order as an indented JSON array. An
// empty result is written as [] rather than null.
func WriteJSON(w io.Writer, findings []types.Finding) error {
	findings = sorted(findings)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(findings)
}
