package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_BuiltinPolicy(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	assert.True(t, p.IsExempt("src/data/Palette.js"))
	assert.True(t, p.IsExempt("src/render/Color.js"))
	assert.False(t, p.IsExempt("src/render/Colors.js"))
	assert.False(t, p.IsExempt("other/src/data/Palette.js"))

	for _, f := range []string{
		"src/data/Balance.js",
		"src/entities/Enemy.js",
		"src/entities/Projectile.js",
		"src/states/TownState.js",
		"src/systems/UI.js",
	} {
		assert.True(t, p.IsRoleBorrowFile(f), f)
	}
	assert.False(t, p.IsRoleBorrowFile("src/systems/Combat.js"))

	assert.True(t, p.IsRootZoneFile("index.html"))
	assert.False(t, p.IsRootZoneFile("docs/index.html"))
}

func TestPolicy_WalkerFilters(t *testing.T) {
	p := MustDefault()

	for _, d := range []string{".git", "node_modules", "notes"} {
		assert.True(t, p.ExcludesDir(d), d)
	}
	assert.False(t, p.ExcludesDir("src"))

	cases := map[string]bool{
		"main.js":     true,
		"index.html":  true,
		"style.css":   true,
		"app.min.js":  true,
		"README.md":   false,
		"Main.JS":     false,
		".css":        false,
		"trailing.":   false,
		"noextension": false,
	}
	for name, want := range cases {
		assert.Equal(t, want, p.IncludesFile(name), name)
	}
}

func TestParse_Globs(t *testing.T) {
	p, err := Parse([]byte("include_exts: [.js]\nexempt_files:\n  - \"gen/**/*.js\"\n"))
	require.NoError(t, err)
	assert.True(t, p.IsExempt("gen/a/b/tokens.js"))
	assert.False(t, p.IsExempt("src/tokens.js"))
	assert.False(t, p.IsRootZoneFile("index.html"))
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad yaml", "include_exts: [.js\n"},
		{"no extensions", "exempt_files: [a.js]\n"},
		{"extension without dot", "include_exts: [js]\n"},
		{"backslash path", "include_exts: [.js]\nexempt_files: ['src\\\\a.js']\n"},
		{"bad pattern", "include_exts: [.js]\nrole_borrow_files: ['src/[a.js']\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}
