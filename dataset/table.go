package dataset

import (
	"fmt"

	"github.com/pbanos/id3/feature"
)

/*
Table is a dataset along with the names of its feature columns and the name
of its label column, as read from or written to a dataset source.
*/
type Table struct {
	Features feature.Names
	Label    string
	Records  Dataset
}

/*
Validate returns an error if the table has invalid feature names, if its
records are not valid or if the number of feature names does not match the
feature columns of the records.
*/
func (t *Table) Validate() error {
	if err := t.Features.Validate(); err != nil {
		return err
	}
	if t.Features.Contains(t.Label) {
		return NewPreconditionError("validate", "label %q is also a feature", t.Label)
	}
	if err := t.Records.Validate(); err != nil {
		return err
	}
	if t.Records.FeatureCount() != len(t.Features) {
		return NewPreconditionError("validate", "got %d feature names for %d feature columns", len(t.Features), t.Records.FeatureCount())
	}
	return nil
}

/*
Project takes a list of feature names and returns the records of the table
with their feature columns reordered to follow that list, the label still
last. Table features not on the list are dropped. An error is returned if a
name on the list is not a feature of the table.
*/
func (t *Table) Project(names feature.Names) (Dataset, error) {
	positions := make([]int, 0, len(names))
	for _, n := range names {
		i, ok := t.Features.Index(n)
		if !ok {
			return nil, fmt.Errorf("dataset has no feature %q", n)
		}
		positions = append(positions, i)
	}
	result := make(Dataset, 0, len(t.Records))
	for _, r := range t.Records {
		pr := make(Record, 0, len(positions)+1)
		for _, i := range positions {
			pr = append(pr, r[i])
		}
		result = append(result, append(pr, r.Label()))
	}
	return result, nil
}
