package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/dataset/csv"
	"github.com/pbanos/id3/dataset/sqldataset"
	"github.com/pbanos/id3/dataset/yaml"
)

const (
	csvFormat      = "csv"
	yamlFormat     = "yaml"
	sqlite3Format  = "sqlite3"
	postgresFormat = "postgres"
	defaultTable   = "dataset"
)

/*
sourceConfig holds the flags that locate a dataset: a file path or
database DSN, its format, the database table and the label column.
*/
type sourceConfig struct {
	name    string
	dataset string
	format  string
	table   string
	label   string
}

// addFlags registers the flags for the source, with their names
// prefixed by the given prefix
func (sc *sourceConfig) addFlags(fs *pflag.FlagSet, prefix, description string) {
	fs.StringVar(&(sc.dataset), prefix+"dataset", "", fmt.Sprintf("path to a file or DSN of a database with the %s (required)", description))
	fs.StringVar(&(sc.format), prefix+"format", "", "format of the dataset: csv, yaml, sqlite3 or postgres (guessed from the dataset if not given)")
	fs.StringVar(&(sc.table), prefix+"table", defaultTable, "name of the table holding the dataset on sqlite3 and postgres databases")
	fs.StringVar(&(sc.label), prefix+"label", "", "name of the label column (defaults to the last column)")
	sc.name = prefix + "dataset"
}

func (sc *sourceConfig) Validate() error {
	if sc.dataset == "" {
		return fmt.Errorf("required %s flag was not set", sc.name)
	}
	_, err := sc.Format()
	return err
}

/*
Format returns the format of the dataset, the one given with the format flag
or one guessed from the dataset location.
*/
func (sc *sourceConfig) Format() (string, error) {
	if sc.format != "" {
		switch sc.format {
		case csvFormat, yamlFormat, sqlite3Format, postgresFormat:
			return sc.format, nil
		case "yml":
			return yamlFormat, nil
		case "postgresql":
			return postgresFormat, nil
		}
		return "", fmt.Errorf("unknown dataset format %q", sc.format)
	}
	return guessFormat(sc.dataset)
}

func guessFormat(location string) (string, error) {
	if strings.HasPrefix(location, "postgres://") || strings.HasPrefix(location, "postgresql://") {
		return postgresFormat, nil
	}
	switch strings.ToLower(filepath.Ext(location)) {
	case ".csv":
		return csvFormat, nil
	case ".yml", ".yaml":
		return yamlFormat, nil
	case ".sqlite", ".sqlite3", ".db":
		return sqlite3Format, nil
	}
	return "", fmt.Errorf("cannot guess the format of dataset %s, please set it", location)
}

// Read reads the dataset table from the source
func (sc *sourceConfig) Read(ctx context.Context) (*dataset.Table, error) {
	format, err := sc.Format()
	if err != nil {
		return nil, err
	}
	log.Debugf("Reading %s dataset from %s...", format, sc.dataset)
	var t *dataset.Table
	switch format {
	case csvFormat:
		t, err = csv.ReadTableFromFilePath(sc.dataset, sc.label)
	case yamlFormat:
		t, err = yaml.ReadTableFromFile(sc.dataset)
		if err == nil && sc.label != "" && sc.label != t.Label {
			err = fmt.Errorf("dataset label is %q, not %q", t.Label, sc.label)
		}
	default:
		t, err = sc.readDB(ctx, format)
	}
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"records":  t.Records.Count(),
		"features": t.Features,
		"label":    t.Label,
	}).Debug("Dataset read")
	return t, nil
}

func (sc *sourceConfig) readDB(ctx context.Context, driver string) (*dataset.Table, error) {
	s, err := sqldataset.Open(driver, sc.dataset)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	t, err := s.Read(ctx, sc.table, sc.label)
	return t, errors.Wrapf(err, "reading table %s", sc.table)
}
