package main

import (
	"bytes"
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

const weatherCSV = "../../testdata/weather.csv"

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := cliParser()
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestVersionCmd(t *testing.T) {
	assert.Equal(t, "id3 v0.1.0\n", run(t, "version"))
}

func TestVerboseFromConfiguration(t *testing.T) {
	t.Cleanup(func() { log.SetLevel(log.WarnLevel) })

	run(t, "version")
	assert.Equal(t, log.WarnLevel, log.GetLevel())

	t.Setenv("ID3_VERBOSE", "true")
	run(t, "version")
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	os.Unsetenv("ID3_VERBOSE")

	configFile := filepath.Join(t.TempDir(), "id3.yml")
	require.NoError(t, ioutil.WriteFile(configFile, []byte("verbose: true\n"), 0644))
	run(t, "version", "--config", configFile)
	assert.Equal(t, log.DebugLevel, log.GetLevel())
}

func TestGrowCmd(t *testing.T) {
	out := run(t, "grow", "--dataset", weatherCSV)
	assert.Contains(t, out, "{ hold event? }\n|\n|__{ humidity is 1 }\n")
	assert.Contains(t, out, "{ weather is 1 }")
}

func TestPredictCmd(t *testing.T) {
	out := run(t, "predict", "--dataset", weatherCSV, "--sample", "1, 1, 1, 0")
	assert.Equal(t, "Predicted hold event for (weather, temperature, humidity, wind speed) is yes\n", out)
}

func TestPredictCmd_FromEnvironment(t *testing.T) {
	t.Setenv("ID3_DATASET", weatherCSV)
	t.Setenv("ID3_SAMPLE", "1,1,1,0")
	out := run(t, "predict")
	assert.Contains(t, out, "is yes")
}

func TestPredictCmd_FromConfigFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "id3.yml")
	require.NoError(t, ioutil.WriteFile(configFile, []byte("dataset: "+weatherCSV+"\nsample: 1,1,1,0\n"), 0644))
	out := run(t, "predict", "--config", configFile)
	assert.Contains(t, out, "is yes")
}

func TestTestCmd(t *testing.T) {
	out := run(t, "test", "--dataset", weatherCSV, "--test-dataset", "../../testdata/weather.yml")
	assert.Equal(t, "1.000000 success rate, failed to make a prediction for 0 samples\n", out)
}

func TestSetCmd(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "datasets.sqlite3")
	run(t, "set", "--dataset", weatherCSV, "--output-dataset", db, "--output-table", "weather")
	out := run(t, "predict", "--dataset", db, "--table", "weather", "--sample", "1,1,1,0")
	assert.Contains(t, out, "is yes")

	yml := filepath.Join(dir, "weather.yml")
	run(t, "set", "--dataset", db, "--table", "weather", "--output-dataset", yml)
	assert.Equal(t, run(t, "grow", "--dataset", weatherCSV), run(t, "grow", "--dataset", yml))
}

func TestWriteTable_RemovesFailedCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	sc := &sourceConfig{dataset: path}
	err := writeTable(context.Background(), sc, &dataset.Table{Features: feature.New("x"), Label: "class"})
	require.Error(t, err)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "failed output must not be left behind")

	tb := &dataset.Table{Features: feature.New("x"), Label: "class", Records: dataset.Dataset{{"0", "a"}}}
	require.NoError(t, writeTable(context.Background(), sc, tb))
	assert.Error(t, writeTable(context.Background(), sc, tb), "existing files are not overwritten")
}

func TestGuessFormat(t *testing.T) {
	cases := map[string]string{
		"data.csv":                       csvFormat,
		"data.YML":                       yamlFormat,
		"data.yaml":                      yamlFormat,
		"data.sqlite3":                   sqlite3Format,
		"data.db":                        sqlite3Format,
		"postgres://user@localhost/data": postgresFormat,
	}
	for location, format := range cases {
		f, err := guessFormat(location)
		require.NoError(t, err, location)
		assert.Equal(t, format, f, location)
	}
	_, err := guessFormat("data.txt")
	assert.Error(t, err)
}

func TestSourceConfig_Format(t *testing.T) {
	sc := &sourceConfig{dataset: "data.txt", format: "yml"}
	f, err := sc.Format()
	require.NoError(t, err)
	assert.Equal(t, yamlFormat, f)
	sc.format = "xml"
	assert.Error(t, sc.Validate())
	sc = &sourceConfig{name: "dataset"}
	assert.EqualError(t, sc.Validate(), "required dataset flag was not set")
}

func TestParseSample(t *testing.T) {
	v, err := parseSample(`1, "wind, heavy",0`)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"1", "wind, heavy", "0"}, v)
	_, err = parseSample(`"unterminated`)
	assert.Error(t, err)
}
