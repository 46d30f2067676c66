package core

import (
	"encoding/json"
	"io"

	"github.com/varalys/huelint/internal/report"
)

// MarshalFindings writes findings as the same sorted JSON array that
// `huelint --json` prints; no findings encode as [].
func MarshalFindings(w io.Writer, findings []Finding) error {
	return report.WriteJSON(w, findings)
}

// UnmarshalFindings decodes a findings array written by MarshalFindings.
func UnmarshalFindings(r io.Reader) ([]Finding, error) {
	var fs []Finding
	if err := json.NewDecoder(r).Decode(&fs); err != nil {
		return nil, err
	}
	return fs, nil
}
