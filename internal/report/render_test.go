package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varalys/huelint/internal/types"
)

func sample() []types.Finding {
	return []types.Finding{
		{File: "src/b.css", Line: 1, Column: 15, Kind: types.KindNamed, Snippet: "'red'"},
		{File: "src/a.js", Line: 2, Column: 9, Kind: types.KindRGB, Snippet: "rgb(1"},
		{File: "src/a.js", Line: 1, Column: 10, Kind: types.KindHex, Snippet: "#fff"},
	}
}

func TestSort_FileLineColumn(t *testing.T) {
	fs := []types.Finding{
		{File: "b", Line: 1, Column: 1},
		{File: "a", Line: 2, Column: 1},
		{File: "a", Line: 1, Column: 9},
		{File: "a", Line: 1, Column: 2},
		{File: "a/b", Line: 1, Column: 1},
	}
	Sort(fs)
	var got []string
	for _, f := range fs {
		got = append(got, Line(f))
	}
	assert.Equal(t, []string{
		"a:1:2 [] ",
		"a:1:9 [] ",
		"a:2:1 [] ",
		"a/b:1:1 [] ",
		"b:1:1 [] ",
	}, got)
}

func TestPrintLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintLines(&buf, sample()))
	assert.Equal(t,
		"src/a.js:1:10 [hex] #fff\n"+
			"src/a.js:2:9 [rgb/rgba] rgb(1\n"+
			"src/b.css:1:15 [named] 'red'\n",
		buf.String())
}

func TestRenderers_LeaveInputOrder(t *testing.T) {
	in := sample()
	var buf bytes.Buffer
	require.NoError(t, PrintLines(&buf, in))
	require.NoError(t, PrintTable(&buf, in))
	require.NoError(t, WriteJSON(&buf, in))
	require.NoError(t, WriteSARIF(&buf, in, "0.1.0", false))
	assert.Equal(t, sample(), in)
}

func TestPrintLines_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintLines(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintTable(&buf, sample()))
	out := buf.String()
	for _, want := range []string{"FILE", "SNIPPET", "src/a.js", "rgb/rgba", "'red'"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "#fff"), strings.Index(out, "'red'"))

	buf.Reset()
	require.NoError(t, PrintTable(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, sample()))
	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "src/a.js", got[0]["file"])
	assert.Equal(t, float64(10), got[0]["column"])
	assert.Equal(t, "hex", got[0]["kind"])
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, nil, SummaryOptions{Strict: true})
	assert.Empty(t, buf.String())

	PrintSummary(&buf, sample(), SummaryOptions{NoColor: true})
	assert.Equal(t, "huelint: 3 findings in 2 files (report-only)\n", buf.String())

	buf.Reset()
	PrintSummary(&buf, sample()[:1], SummaryOptions{Strict: true, NoColor: true})
	assert.Equal(t, "huelint: 1 finding in 1 file (strict)\n", buf.String())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil, false))
	assert.Equal(t, 0, ExitCode(nil, true))
	assert.Equal(t, 0, ExitCode(sample(), false))
	assert.Equal(t, 1, ExitCode(sample(), true))
}
