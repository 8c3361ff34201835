package dataset

/*
LabelCount holds the number of records of a dataset with a given label.
*/
type LabelCount struct {
	Label interface{}
	Count int
}

/*
CountLabels returns the number of records for every distinct label of the
dataset, ordered by the first occurrence of the label.
*/
func (d Dataset) CountLabels() []LabelCount {
	var result []LabelCount
	index := make(map[interface{}]int)
	for _, r := range d {
		l := r.Label()
		i, ok := index[l]
		if !ok {
			i = len(result)
			index[l] = i
			result = append(result, LabelCount{Label: l})
		}
		result[i].Count++
	}
	return result
}

/*
MajorityLabel returns the most frequent label of the dataset. When several
labels share the highest count, the one that occurs first on the dataset is
returned. A *PreconditionError is returned for an empty dataset.
*/
func (d Dataset) MajorityLabel() (interface{}, error) {
	if len(d) == 0 {
		return nil, NewPreconditionError("majority label", "empty dataset")
	}
	var best LabelCount
	for _, lc := range d.CountLabels() {
		if lc.Count > best.Count {
			best = lc
		}
	}
	return best.Label, nil
}

/*
Pure returns true if every record of the dataset has the same label. An empty
dataset is not pure.
*/
func (d Dataset) Pure() bool {
	if len(d) == 0 {
		return false
	}
	l := d[0].Label()
	for _, r := range d[1:] {
		if r.Label() != l {
			return false
		}
	}
	return true
}
