package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barg-dev/barg/internal/graph"
	"github.com/barg-dev/barg/internal/ui"
)

func sampleRows() []graph.Row {
	return []graph.Row{
		{Cells: []graph.Cell{{Key: "Name", Value: "a"}, {Key: "LenGraph", Value: "█████████"}}},
		{Cells: []graph.Cell{{Key: "Name", Value: "bb"}, {Key: "LenGraph", Value: "██"}}},
		{Cells: []graph.Cell{{Key: "Name", Value: "c"}, {Key: "LenGraph", Value: ""}}},
	}
}

func TestWriteRows_Alignment(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRows(&buf, sampleRows(), Options{}))

	assert.Equal(t, "a  █████████\nbb ██\nc\n", buf.String(),
		"display cells pad to the widest value plus one space; empty bars leave no trailing spaces")
}

func TestWriteRows_Header(t *testing.T) {
	ui.DisableColors()

	var buf bytes.Buffer
	require.NoError(t, WriteRows(&buf, sampleRows(), Options{Header: true}))

	lines := bytes.Split(buf.Bytes(), []byte("\n"))
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "Name LenGraph", string(lines[0]))
	assert.Equal(t, "a    █████████", string(lines[1]), "columns widen to fit header keys")
}

func TestWriteRows_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRows(&buf, nil, Options{}))
	assert.Empty(t, buf.String())
}

func TestWriteRows_BarOnly(t *testing.T) {
	rows := []graph.Row{
		{Cells: []graph.Cell{{Key: "LenGraph", Value: "███"}}},
		{Cells: []graph.Cell{{Key: "LenGraph", Value: "▌"}}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRows(&buf, rows, Options{}))
	assert.Equal(t, "███\n▌\n", buf.String())
}

func TestWriteJSONRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONRows(&buf, sampleRows()))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.JSONEq(t, `{"Name":"a","LenGraph":"█████████"}`, string(lines[0]))

	// Key order is preserved verbatim, not alphabetized.
	assert.True(t, bytes.HasPrefix(lines[0], []byte(`{"Name"`)))

	// Every line must be independently parseable.
	for _, line := range lines {
		var v map[string]interface{}
		require.NoError(t, json.Unmarshal(line, &v))
	}
}
