package yaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

func TestReadTableFromFile(t *testing.T) {
	tb, err := ReadTableFromFile("../../testdata/weather.yml")
	require.NoError(t, err)
	assert.Equal(t, feature.Names{"weather", "temperature", "humidity", "wind speed"}, tb.Features)
	assert.Equal(t, "hold event", tb.Label)
	require.Equal(t, 12, tb.Records.Count())
	assert.Equal(t, dataset.Record{"2", "2", "1", "0", "yes"}, tb.Records[0])
	assert.Equal(t, dataset.Record{"1", "2", "0", "0", "no"}, tb.Records[10])
}

func TestReadTable_Invalid(t *testing.T) {
	cases := map[string]string{
		"no label":       "features: [a]\nrecords:\n  - [1, x]\n",
		"nested value":   "features: [a]\nlabel: l\nrecords:\n  - [[1], x]\n",
		"missing value":  "features: [a]\nlabel: l\nrecords:\n  - [~, x]\n",
		"ragged records": "features: [a]\nlabel: l\nrecords:\n  - [1, x]\n  - [x]\n",
		"names mismatch": "features: [a, b]\nlabel: l\nrecords:\n  - [1, x]\n",
		"no records":     "features: [a]\nlabel: l\n",
		"not yaml":       "features: [a\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadTable([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestWriteTable(t *testing.T) {
	tb := &dataset.Table{
		Features: feature.New("x"),
		Label:    "class",
		Records:  dataset.Dataset{{"1", "a"}, {"2", "b"}},
	}
	data, err := WriteTable(tb)
	require.NoError(t, err)
	read, err := ReadTable(data)
	require.NoError(t, err)
	assert.Equal(t, tb, read)
}
