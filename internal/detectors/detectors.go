package detectors

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/varalys/huelint/internal/types"
)

// NamedColors are the CSS color keywords flagged when quoted.
var NamedColors = []string{"white", "black", "red", "green", "blue", "purple", "orange", "gold", "gray", "grey"}

// WorldRoles are the terrain/material palette members reserved for world
// rendering.
var WorldRoles = []string{"moss", "rotwood", "rust", "deepStone", "midStone"}

// Pattern pairs a detection regex with the kind it reports. Word
// boundaries are checked against Unicode letters and numbers after the
// regex matches, since RE2's \b only knows ASCII.
type Pattern struct {
	Kind types.Kind
	Re   *regexp.Regexp

	lead  bool // word boundary required before the match
	trail bool // word boundary required after the match
	valid func(match string) bool
}

// Match is a single pattern hit. Start and End are byte offsets into the
// scanned text.
type Match struct {
	Kind  types.Kind
	Start int
	End   int
	Text  string
}

// space is Unicode whitespace, including the separators RE2's \s omits.
const space = `[\t\n\v\f\r\x1c-\x1f\x{85}\p{Z}]`

var (
	// A whole run of hex digits is matched and then checked for a
	// 3, 4, 6 or 8 digit length.
	reHex = regexp.MustCompile(`#[0-9a-fA-F]+`)
	// Only numeric color functions; rgba(var(--token-rgb), 0.5) is allowed.
	reRGB = regexp.MustCompile(`rgba?\(` + space + `*\p{Nd}`)
	reHSL = regexp.MustCompile(`hsla?\(` + space + `*\p{Nd}`)
	// RE2 has no backreferences, so each quote style gets its own branch.
	reNamed      = regexp.MustCompile(quotedAlternation(NamedColors))
	reRoleBorrow = regexp.MustCompile(`PALETTE\.(?:` + strings.Join(WorldRoles, "|") + `)`)
)

var rawColor = []Pattern{
	{Kind: types.KindHex, Re: reHex, trail: true, valid: hexLength},
	{Kind: types.KindRGB, Re: reRGB, lead: true},
	{Kind: types.KindHSL, Re: reHSL, lead: true},
	{Kind: types.KindNamed, Re: reNamed},
}

var roleBorrow = Pattern{Kind: types.KindRoleBorrow, Re: reRoleBorrow, lead: true, trail: true}

func hexLength(m string) bool {
	switch len(m) - 1 {
	case 3, 4, 6, 8:
		return true
	}
	return false
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func quotedAlternation(words []string) string {
	alt := "(?:" + strings.Join(words, "|") + ")"
	var parts []string
	for _, q := range []string{`"`, `'`, "`"} {
		parts = append(parts, q+alt+q)
	}
	return strings.Join(parts, "|")
}

// RawColorPatterns returns the raw color literal patterns in declaration order.
func RawColorPatterns() []Pattern {
	out := make([]Pattern, len(rawColor))
	copy(out, rawColor)
	return out
}

// RoleBorrowPattern returns the restricted palette access pattern.
func RoleBorrowPattern() Pattern { return roleBorrow }

// Kinds lists the kind IDs of all patterns.
func Kinds() []string {
	var out []string
	for _, k := range types.Kinds() {
		out = append(out, string(k))
	}
	return out
}

// FindAll returns every non-overlapping match of p in text. A rejected
// candidate resumes the search one rune after its start.
func (p Pattern) FindAll(text string) []Match {
	var out []Match
	for pos := 0; pos < len(text); {
		loc := p.Re.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if p.accept(text, start, end) {
			out = append(out, Match{Kind: p.Kind, Start: start, End: end, Text: text[start:end]})
			pos = end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		pos = start + size
	}
	return out
}

func (p Pattern) accept(text string, start, end int) bool {
	if p.valid != nil && !p.valid(text[start:end]) {
		return false
	}
	if p.lead && start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); isWord(r) {
			return false
		}
	}
	if p.trail && end < len(text) {
		if r, _ := utf8.DecodeRuneInString(text[end:]); isWord(r) {
			return false
		}
	}
	return true
}

// FindRawColors applies every raw color pattern independently over text.
// Matches are grouped by pattern, in declaration order.
func FindRawColors(text string) []Match {
	var out []Match
	for _, p := range rawColor {
		out = append(out, p.FindAll(text)...)
	}
	return out
}

// FindRoleBorrows returns restricted palette accesses in text.
func FindRoleBorrows(text string) []Match {
	return roleBorrow.FindAll(text)
}
