package report

import (
	"encoding/json"
	"io"

	"github.com/varalys/huelint/internal/types"
)

type sarif struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version"`
	Rules   []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	ShortDescription sarifMessage `json:"shortDescription"`
}

type sarifResult struct {
	RuleID              string            `json:"ruleId"`
	Level               string            `json:"level"`
	Message             sarifMessage      `json:"message"`
	Locations           []sarifLoc        `json:"locations"`
	PartialFingerprints map[string]string `json:"partialFingerprints"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLoc struct {
	PhysicalLocation sarifPhys `json:"physicalLocation"`
}

type sarifPhys struct {
	ArtifactLocation sarifArt    `json:"artifactLocation"`
	Region           sarifRegion `json:"region"`
}

type sarifArt struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   int          `json:"startLine"`
	StartColumn int          `json:"startColumn"`
	Snippet     sarifSnippet `json:"snippet"`
}

type sarifSnippet struct {
	Text string `json:"text"`
}

var ruleText = map[types.Kind]string{
	types.KindHex:        "Raw hex color literal; use a semantic color token",
	types.KindRGB:        "Numeric rgb()/rgba() color; use a semantic color token",
	types.KindHSL:        "Numeric hsl()/hsla() color; use a semantic color token",
	types.KindNamed:      "Quoted CSS color name; use a semantic color token",
	types.KindRoleBorrow: "World palette role used outside world rendering",
}

// WriteSARIF writes findings as SARIF 2.1.0. Strict runs report results at
// error level, report-only runs at warning level.
func WriteSARIF(w io.Writer, findings []types.Finding, toolVersion string, strict bool) error {
	findings = sorted(findings)
	level := "warning"
	if strict {
		level = "error"
	}
	driver := sarifDriver{Name: "huelint", Version: toolVersion}
	for _, k := range types.Kinds() {
		driver.Rules = append(driver.Rules, sarifRule{ID: string(k), ShortDescription: sarifMessage{Text: ruleText[k]}})
	}
	run := sarifRun{Tool: sarifTool{Driver: driver}, Results: []sarifResult{}}
	for _, f := range findings {
		run.Results = append(run.Results, sarifResult{
			RuleID:  string(f.Kind),
			Level:   level,
			Message: sarifMessage{Text: ruleText[f.Kind] + ": " + f.Snippet},
			Locations: []sarifLoc{{
				PhysicalLocation: sarifPhys{
					ArtifactLocation: sarifArt{URI: f.File},
					Region:           sarifRegion{StartLine: f.Line, StartColumn: f.Column, Snippet: sarifSnippet{Text: f.Snippet}},
				},
			}},
			PartialFingerprints: map[string]string{"huelint/v1": Fingerprint(f)},
		})
	}
	doc := sarif{
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Version: "2.1.0",
		Runs:    []sarifRun{run},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
