package engine

import (
	"strings"

	"github.com/varalys/huelint/internal/config"
	"github.com/varalys/huelint/internal/detectors"
	"github.com/varalys/huelint/internal/types"
)

const (
	rootBlockOpen  = ":root{"
	rootBlockClose = "}"
	maskedBlack    = "#000"
	maskMarker     = "mask"
)

// exemptions decides which raw color matches of one file are suppressed.
type exemptions struct {
	lines    *detectors.Lines
	hasZone  bool
	zoneFrom int
	zoneTo   int
}

func newExemptions(rel, text string, lines *detectors.Lines, pol config.Policy) exemptions {
	ex := exemptions{lines: lines}
	if pol.IsRootZoneFile(rel) {
		ex.zoneFrom, ex.zoneTo, ex.hasZone = rootZone(text)
	}
	return ex
}

// rootZone locates the first ":root{" and the next "}" after it. Both
// offsets are inclusive bounds of the safe zone.
func rootZone(text string) (start, end int, ok bool) {
	start = strings.Index(text, rootBlockOpen)
	if start < 0 {
		return 0, 0, false
	}
	rest := strings.Index(text[start:], rootBlockClose)
	if rest < 0 {
		return 0, 0, false
	}
	return start, start + rest, true
}

func (ex exemptions) suppress(m detectors.Match) bool {
	if m.Kind != types.KindHex {
		return false
	}
	if ex.hasZone && m.Start >= ex.zoneFrom && m.Start <= ex.zoneTo {
		return true
	}
	// Black is a legitimate mask/alpha value; the whole line is inspected.
	if strings.EqualFold(m.Text, maskedBlack) && strings.Contains(ex.lines.LineAt(m.Start), maskMarker) {
		return true
	}
	return false
}
