/*
Package dataset defines the records and datasets an ID3 tree is grown from.

A Record is an ordered sequence of categorical feature values followed by
exactly one label value. A Dataset is an ordered sequence of records sharing
the same arity. Datasets are never modified in place: splitting one produces a
new dataset with its own records.
*/
package dataset

import (
	"fmt"
	"reflect"
)

/*
Record is a row of a dataset: the values for every feature, in the order of
the dataset's feature names, with the label as last element.

Values must be comparable with ==, as they are used as map keys when
counting and branching. Loaders in this module produce strings.
*/
type Record []interface{}

/*
Dataset is an ordered collection of records with the same arity.
*/
type Dataset []Record

// Label returns the last value of the record.
func (r Record) Label() interface{} {
	return r[len(r)-1]
}

// Features returns the values of the record preceding its label.
func (r Record) Features() []interface{} {
	return r[:len(r)-1]
}

/*
Without takes a column index and returns a copy of the record with that
column removed. The record itself is left untouched.
*/
func (r Record) Without(axis int) Record {
	result := make(Record, 0, len(r)-1)
	result = append(result, r[:axis]...)
	return append(result, r[axis+1:]...)
}

// Count returns the number of records in the dataset.
func (d Dataset) Count() int {
	return len(d)
}

/*
Arity returns the number of values in each record of the dataset, features
plus label, or 0 for an empty dataset.
*/
func (d Dataset) Arity() int {
	if len(d) == 0 {
		return 0
	}
	return len(d[0])
}

// FeatureCount returns the number of feature columns of the dataset.
func (d Dataset) FeatureCount() int {
	if len(d) == 0 {
		return 0
	}
	return len(d[0]) - 1
}

// Labels returns the label of every record in row order.
func (d Dataset) Labels() []interface{} {
	labels := make([]interface{}, 0, len(d))
	for _, r := range d {
		labels = append(labels, r.Label())
	}
	return labels
}

/*
Validate returns a *PreconditionError if the dataset is empty, if its records
have no label, if they do not share the same arity or if they hold values
that cannot be compared with ==, like slices or maps. It returns nil
otherwise.
*/
func (d Dataset) Validate() error {
	if len(d) == 0 {
		return NewPreconditionError("validate", "empty dataset")
	}
	arity := len(d[0])
	if arity == 0 {
		return NewPreconditionError("validate", "record 0 has no label")
	}
	for i, r := range d {
		if len(r) != arity {
			return NewPreconditionError("validate", "record %d has %d values, expected %d", i, len(r), arity)
		}
		for j, v := range r {
			if v != nil && !reflect.TypeOf(v).Comparable() {
				return NewPreconditionError("validate", "record %d has a value of non-comparable type %T at column %d", i, v, j)
			}
		}
	}
	return nil
}

func (d Dataset) String() string {
	return fmt.Sprintf("[ %d x %d ]", d.Count(), d.Arity())
}
