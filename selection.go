package id3

import (
	"github.com/pbanos/id3/dataset"
)

/*
NoFeature is the index returned by SelectFeature when no feature of the
dataset yields a positive information gain.
*/
const NoFeature = -1

// gains within minGain of each other, or of 0, are ties
const minGain = 1e-12

/*
InformationGain takes a dataset and a feature column index and returns the
reduction in label entropy obtained by partitioning the dataset on the values
of that column: the entropy of the dataset minus the entropy of every
partition weighted by its share of the records.
*/
func InformationGain(d dataset.Dataset, axis int) (float64, error) {
	informationGain, err := d.Entropy()
	if err != nil {
		return 0.0, err
	}
	values, err := d.FeatureValues(axis)
	if err != nil {
		return 0.0, err
	}
	totalCount := float64(d.Count())
	var splitEntropy float64
	for _, v := range values {
		s, err := d.Split(axis, v)
		if err != nil {
			return 0.0, err
		}
		sEntropy, err := s.Entropy()
		if err != nil {
			return 0.0, err
		}
		splitEntropy += float64(s.Count()) / totalCount * sEntropy
	}
	informationGain -= splitEntropy
	return informationGain, nil
}

/*
SelectFeature takes a dataset with at least one feature column and returns
the index of the column with the greatest information gain along with that
gain.

Only strictly positive gains are considered, and a column must beat every
column before it to be selected, so ties keep the earliest column. Gains
within 1e-12 of each other, or of 0, count as ties. If no column has a
positive gain, NoFeature is returned.
*/
func SelectFeature(d dataset.Dataset) (int, float64, error) {
	if d.FeatureCount() < 1 {
		return NoFeature, 0.0, dataset.NewPreconditionError("select feature", "dataset has no feature columns")
	}
	bestAxis := NoFeature
	var bestGain float64
	for axis := 0; axis < d.FeatureCount(); axis++ {
		gain, err := InformationGain(d, axis)
		if err != nil {
			return NoFeature, 0.0, err
		}
		log.Debugf("feature %d has information gain %f on %v", axis, gain, d)
		if gain > minGain && gain > bestGain+minGain {
			bestGain = gain
			bestAxis = axis
		}
	}
	return bestAxis, bestGain, nil
}
