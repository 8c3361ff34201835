package dataset

/*
Split takes a feature column index and a value and returns a new dataset with
a copy of every record whose value at that column equals the given one, with
the column removed. Other columns and the label keep their order.

The result is empty if no record matches. A *PreconditionError is returned if
axis is not a feature column of the dataset.
*/
func (d Dataset) Split(axis int, value interface{}) (Dataset, error) {
	if err := d.checkAxis("split", axis); err != nil {
		return nil, err
	}
	var result Dataset
	for _, r := range d {
		if r[axis] == value {
			result = append(result, r.Without(axis))
		}
	}
	return result, nil
}

/*
FeatureValues takes a feature column index and returns the distinct values
found on that column, in the order they first occur on the dataset.
*/
func (d Dataset) FeatureValues(axis int) ([]interface{}, error) {
	if err := d.checkAxis("feature values", axis); err != nil {
		return nil, err
	}
	var result []interface{}
	encountered := make(map[interface{}]bool)
	for _, r := range d {
		v := r[axis]
		if !encountered[v] {
			encountered[v] = true
			result = append(result, v)
		}
	}
	return result, nil
}

func (d Dataset) checkAxis(op string, axis int) error {
	if axis < 0 || axis >= d.FeatureCount() {
		return NewPreconditionError(op, "axis %d out of range for %d features", axis, d.FeatureCount())
	}
	return nil
}
