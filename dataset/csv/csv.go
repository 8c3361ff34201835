/*
Package csv reads and writes dataset tables as CSV.

The first row of the CSV content holds the names of the columns. Every other
row is a record, with all values read as strings.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

/*
ReadTable takes an io.Reader for a CSV stream and the name of the label
column and returns the table parsed from the reader or an error.

If label is empty, the last column is taken as the label. Otherwise the
column with that name is moved to the end of every record and the rest keep
their order as features.
*/
func ReadTable(reader io.Reader, label string) (*dataset.Table, error) {
	r := csv.NewReader(reader)
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err != nil {
		return nil, errors.Wrap(err, "reading header")
	}
	labelIndex := len(header) - 1
	if label != "" {
		labelIndex = -1
		for i, name := range header {
			if name == label {
				labelIndex = i
				break
			}
		}
		if labelIndex < 0 {
			return nil, fmt.Errorf("parsing header: no label column %q", label)
		}
	}
	t := &dataset.Table{
		Features: feature.New(header[:labelIndex]...),
		Label:    header[labelIndex],
	}
	t.Features = append(t.Features, header[labelIndex+1:]...)
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading line %d", l)
		}
		t.Records = append(t.Records, parseRecord(row, labelIndex))
	}
	if err = t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

/*
ReadTableFromFilePath takes a filepath string and the name of the label
column, opens the file and uses ReadTable to return the table read from it.
An empty filepath reads from the standard input.
*/
func ReadTableFromFilePath(filepath string, label string) (*dataset.Table, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, errors.Wrap(err, "reading dataset")
		}
		defer f.Close()
	}
	t, err := ReadTable(f, label)
	if err != nil {
		err = errors.Wrapf(err, "parsing CSV file %s", filepath)
	}
	return t, err
}

/*
WriteTable takes an io.Writer and a table and writes the table onto the
writer as CSV, the feature columns first and the label last. Values are
formatted with fmt's %v verb. Nothing is written for an invalid table.
*/
func WriteTable(w io.Writer, t *dataset.Table) error {
	if err := t.Validate(); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	header := append([]string{}, t.Features...)
	if err := cw.Write(append(header, t.Label)); err != nil {
		return errors.Wrap(err, "writing header")
	}
	row := make([]string, 0, len(header)+1)
	for i, r := range t.Records {
		row = row[:0]
		for _, v := range r {
			row = append(row, fmt.Sprintf("%v", v))
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "writing record %d", i)
		}
	}
	cw.Flush()
	return cw.Error()
}

func parseRecord(row []string, labelIndex int) dataset.Record {
	r := make(dataset.Record, 0, len(row))
	for i, v := range row {
		if i != labelIndex {
			r = append(r, v)
		}
	}
	return append(r, row[labelIndex])
}
