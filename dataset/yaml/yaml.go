/*
Package yaml reads and writes dataset tables as YAML documents.

A document is expected to be an object with the following properties:
  * "features": the list of feature names, in column order
  * "label": the name of the label
  * "records": a list of records, each a list with a value for every feature
    followed by the label

Scalar values are read as their string representation, so that 1 and "1"
are the same value.
*/
package yaml

import (
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

type document struct {
	Features []string        `yaml:"features"`
	Label    string          `yaml:"label"`
	Records  [][]interface{} `yaml:"records"`
}

/*
ReadTable takes a slice of bytes with a YAML dataset document and returns
the table parsed from it or an error.
*/
func ReadTable(data []byte) (*dataset.Table, error) {
	doc := &document{}
	err := yaml.Unmarshal(data, doc)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yml dataset")
	}
	if doc.Label == "" {
		return nil, fmt.Errorf("dataset document has no label")
	}
	t := &dataset.Table{
		Features: feature.New(doc.Features...),
		Label:    doc.Label,
	}
	for i, raw := range doc.Records {
		r := make(dataset.Record, 0, len(raw))
		for j, v := range raw {
			s, err := scalar(v)
			if err != nil {
				return nil, errors.Wrapf(err, "record %d, column %d", i, j)
			}
			r = append(r, s)
		}
		t.Records = append(t.Records, r)
	}
	if err = t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

/*
ReadTableFromFile takes a filepath string, reads its contents and uses
ReadTable to parse it and return a table or an error.
*/
func ReadTableFromFile(filepath string) (*dataset.Table, error) {
	data, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading dataset yml file %s", filepath)
	}
	t, err := ReadTable(data)
	if err != nil {
		err = errors.Wrapf(err, "parsing dataset yml file %s", filepath)
	}
	return t, err
}

/*
WriteTable takes a table and returns it serialized as a YAML dataset document
or an error.
*/
func WriteTable(t *dataset.Table) ([]byte, error) {
	doc := &document{
		Features: t.Features,
		Label:    t.Label,
		Records:  make([][]interface{}, 0, len(t.Records)),
	}
	for _, r := range t.Records {
		doc.Records = append(doc.Records, []interface{}(r))
	}
	return yaml.Marshal(doc)
}

func scalar(v interface{}) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", fmt.Errorf("missing value")
	case string:
		return v, nil
	case map[interface{}]interface{}, []interface{}:
		return "", fmt.Errorf("invalid value of type %T", v)
	default:
		return fmt.Sprintf("%v", v), nil
	}
}
