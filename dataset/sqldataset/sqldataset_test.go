package sqldataset

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("sqlite3", filepath.Join(t.TempDir(), "datasets.sqlite3"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleTable() *dataset.Table {
	return &dataset.Table{
		Features: feature.New("outlook", "wind speed"),
		Label:    "play",
		Records: dataset.Dataset{
			{"sunny", 0, "yes"},
			{"rainy", 1, "no"},
			{"sunny", 1, "no"},
		},
	}
}

func TestStore_CreateRead(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	require.NoError(t, s.Create(ctx, "weather", sampleTable()))

	tb, err := s.Read(ctx, "weather", "")
	require.NoError(t, err)
	assert.Equal(t, feature.Names{"outlook", "wind speed"}, tb.Features)
	assert.Equal(t, "play", tb.Label)
	assert.Equal(t, dataset.Dataset{
		{"sunny", "0", "yes"},
		{"rainy", "1", "no"},
		{"sunny", "1", "no"},
	}, tb.Records)

	tb, err = s.Read(ctx, "weather", "outlook")
	require.NoError(t, err)
	assert.Equal(t, feature.Names{"wind speed", "play"}, tb.Features)
	assert.Equal(t, dataset.Record{"0", "yes", "sunny"}, tb.Records[0])

	_, err = s.Read(ctx, "weather", "temperature")
	assert.Error(t, err)
	_, err = s.Read(ctx, "missing", "")
	assert.Error(t, err)
}

func TestStore_CreateExisting(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	require.NoError(t, s.Create(ctx, "weather", sampleTable()))
	assert.Error(t, s.Create(ctx, "weather", sampleTable()))

	tb, err := s.Read(ctx, "weather", "")
	require.NoError(t, err)
	assert.Equal(t, 3, tb.Records.Count(), "failed creation must not add records")
}

func TestStore_InvalidNames(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	tb := sampleTable()
	tb.Features = feature.New("id", "wind speed")
	assert.Error(t, s.Create(ctx, "weather", tb))
	assert.Error(t, s.Create(ctx, `we"ather`, sampleTable()))
	_, err := s.Read(ctx, `we"ather`, "")
	assert.Error(t, err)
}

func TestDialectFor(t *testing.T) {
	d, err := DialectFor("sqlite3")
	require.NoError(t, err)
	assert.Equal(t, "?", d.placeholder(3))
	d, err = DialectFor("postgresql")
	require.NoError(t, err)
	assert.Equal(t, Postgres, d)
	assert.Equal(t, "$4", d.placeholder(3))
	_, err = DialectFor("mysql")
	assert.Error(t, err)
}
