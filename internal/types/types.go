package types

// Kind tags a finding with the detection pattern that produced it.
type Kind string

const (
	KindHex        Kind = "hex"
	KindRGB        Kind = "rgb/rgba"
	KindHSL        Kind = "hsl/hsla"
	KindNamed      Kind = "named"
	KindRoleBorrow Kind = "role-borrow"
)

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindHex, KindRGB, KindHSL, KindNamed, KindRoleBorrow}
}

// RawColor reports whether k is one of the raw color literal kinds, as
// opposed to the role-borrow identifier check.
func (k Kind) RawColor() bool {
	switch k {
	case KindHex, KindRGB, KindHSL, KindNamed:
		return true
	}
	return false
}

// Finding is a single raw color literal or restricted palette access found
// at a 1-based line and column of a file relative to the scan root.
type Finding struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Kind    Kind   `json:"kind"`
	Snippet string `json:"snippet"`
}
