package render_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/katalvlaran/necklace/necklace"
	"github.com/katalvlaran/necklace/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClassify labels zero, ordinary and maximal pearls.
func TestClassify(t *testing.T) {
	got := render.Classify(necklace.Sequence{3, 1, 0, 3})
	want := []render.Cell{
		{Value: 3, Kind: render.High},
		{Value: 1, Kind: render.Value},
		{Value: 0, Kind: render.Zero},
		{Value: 3, Kind: render.High},
	}
	assert.Equal(t, want, got)

	// An all-zero necklace has no High pearl.
	for _, c := range render.Classify(necklace.Sequence{0, 0}) {
		assert.Equal(t, render.Zero, c.Kind)
	}
	assert.Empty(t, render.Classify(necklace.Sequence{}))
	assert.Equal(t, "high", render.High.String())
	assert.Equal(t, "kind(4)", render.CellKind(4).String())
}

// TestText_Rows checks the row layout for single-digit values.
func TestText_Rows(t *testing.T) {
	var buf bytes.Buffer
	err := render.Text(&buf, "Binary", []necklace.Sequence{{1, 1, 0, 0}, {1, 0, 1, 0}})
	require.NoError(t, err)

	want := "Binary (2)\n" +
		"  [1] [1]  ·   ·\n" +
		"  [1]  ·  [1]  ·\n"
	assert.Equal(t, want, buf.String())
}

// TestText_PadsToWidestValue aligns multi-digit values across rows.
func TestText_PadsToWidestValue(t *testing.T) {
	var buf bytes.Buffer
	err := render.Text(&buf, "General", []necklace.Sequence{{10, 0}, {5, 5}, {7, 3}})
	require.NoError(t, err)

	want := "General (3)\n" +
		"  [10]   ·\n" +
		"  [ 5] [ 5]\n" +
		"  [ 7]   3\n"
	assert.Equal(t, want, buf.String())
}

// TestText_Empty prints the no-results marker.
func TestText_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Text(&buf, "General", nil))
	assert.Equal(t, "General (0)\n  no results\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestText_PropagatesWriteError surfaces writer failures.
func TestText_PropagatesWriteError(t *testing.T) {
	err := render.Text(failingWriter{}, "Binary", []necklace.Sequence{{1}})
	assert.EqualError(t, err, "disk full")
}

// TestJSON_Report round-trips a ResultSet snapshot.
func TestJSON_Report(t *testing.T) {
	rs, err := necklace.General(3, 2, 3)
	require.NoError(t, err)
	empty, err := necklace.Binary(2, 3, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.JSON(&buf, []render.Report{render.NewReport(rs), render.NewReport(empty)}))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, "general", decoded[0]["mode"])
	assert.EqualValues(t, 3, decoded[0]["length"])
	assert.EqualValues(t, 2, decoded[0]["sum"])
	assert.EqualValues(t, 3, decoded[0]["max_zeros"])
	assert.EqualValues(t, 2, decoded[0]["count"])
	assert.Equal(t, []interface{}{
		[]interface{}{2.0, 0.0, 0.0},
		[]interface{}{1.0, 1.0, 0.0},
	}, decoded[0]["necklaces"])

	assert.Equal(t, []interface{}{}, decoded[1]["necklaces"], "empty results encode as [] not null")
}

// TestJSON_NilReports encodes an empty array.
func TestJSON_NilReports(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.JSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}
