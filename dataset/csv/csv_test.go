package csv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

func TestReadTableFromFilePath(t *testing.T) {
	tb, err := ReadTableFromFilePath("../../testdata/weather.csv", "")
	require.NoError(t, err)
	assert.Equal(t, feature.Names{"weather", "temperature", "humidity", "wind speed"}, tb.Features)
	assert.Equal(t, "hold event", tb.Label)
	require.Equal(t, 12, tb.Records.Count())
	assert.Equal(t, dataset.Record{"2", "2", "1", "0", "yes"}, tb.Records[0])
	assert.Equal(t, dataset.Record{"0", "1", "1", "1", "no"}, tb.Records[11])

	_, err = ReadTableFromFilePath("../../testdata/missing.csv", "")
	assert.Error(t, err)
}

func TestReadTable_LabelColumn(t *testing.T) {
	in := "play,outlook,windy\nyes,sunny,no\nno,rainy,yes\n"
	tb, err := ReadTable(strings.NewReader(in), "play")
	require.NoError(t, err)
	assert.Equal(t, feature.Names{"outlook", "windy"}, tb.Features)
	assert.Equal(t, "play", tb.Label)
	assert.Equal(t, dataset.Dataset{{"sunny", "no", "yes"}, {"rainy", "yes", "no"}}, tb.Records)

	_, err = ReadTable(strings.NewReader(in), "temperature")
	assert.EqualError(t, err, `parsing header: no label column "temperature"`)
}

func TestReadTable_Malformed(t *testing.T) {
	_, err := ReadTable(strings.NewReader(""), "")
	assert.Error(t, err)
	_, err = ReadTable(strings.NewReader("a,b\n1,2\n1,2,3\n"), "")
	assert.Error(t, err, "ragged rows are rejected")
	_, err = ReadTable(strings.NewReader("a,a,b\n1,2,3\n"), "")
	assert.Error(t, err, "duplicated feature names are rejected")
}

func TestWriteTable(t *testing.T) {
	tb := &dataset.Table{
		Features: feature.New("x", "y"),
		Label:    "class",
		Records:  dataset.Dataset{{0, 1, "a"}, {1, 1, "b"}},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, tb))
	assert.Equal(t, "x,y,class\n0,1,a\n1,1,b\n", buf.String())

	read, err := ReadTable(&buf, "")
	require.NoError(t, err)
	assert.Equal(t, dataset.Dataset{{"0", "1", "a"}, {"1", "1", "b"}}, read.Records)
}

func TestWriteTable_Invalid(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTable(&buf, &dataset.Table{Features: feature.New("x"), Label: "class"})
	var pe *dataset.PreconditionError
	assert.ErrorAs(t, err, &pe)
	assert.Empty(t, buf.String())
}
