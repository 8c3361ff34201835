/*
Package id3 grows classification trees from categorical datasets with the
ID3 algorithm.

At every node the feature whose values best separate the labels, that is,
the one with the greatest information gain, is selected and the dataset is
partitioned on its values, each partition growing a subtree with the rest of
the features. A node becomes a leaf when all its records share a label, when
no features are left or when no feature improves on the node's entropy, the
last two predicting the majority label.

The selection is greedy and looks a single level ahead, so the grown tree is
not guaranteed to be the smallest one consistent with the data.
*/
package id3

import (
	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/tree"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "id3")

/*
Grow takes a dataset and the names of its feature columns and returns the
root of an ID3 decision tree predicting the dataset labels.

The dataset must not be empty, its records must share the same arity and
names must have exactly one distinct, non-empty name per feature column.
Otherwise a *dataset.PreconditionError is returned. Neither the dataset nor
names are modified.
*/
func Grow(d dataset.Dataset, names feature.Names) (tree.Node, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if len(names) != d.FeatureCount() {
		return nil, dataset.NewPreconditionError("grow", "got %d feature names for %d feature columns", len(names), d.FeatureCount())
	}
	if err := names.Validate(); err != nil {
		return nil, dataset.NewPreconditionError("grow", "%v", err)
	}
	return grow(d, names)
}

/*
GrowTree works like Grow but returns the grown tree along with the features
it was grown with and the given label name.
*/
func GrowTree(d dataset.Dataset, names feature.Names, label string) (*tree.Tree, error) {
	root, err := Grow(d, names)
	if err != nil {
		return nil, err
	}
	return tree.New(root, feature.New(names...), label), nil
}

func grow(d dataset.Dataset, names feature.Names) (tree.Node, error) {
	if d.Pure() {
		return tree.NewLeaf(d[0].Label()), nil
	}
	if d.FeatureCount() == 0 {
		return majorityLeaf(d, "no features left")
	}
	axis, gain, err := SelectFeature(d)
	if err != nil {
		return nil, err
	}
	if axis == NoFeature {
		return majorityLeaf(d, "no feature improves entropy")
	}
	name := names[axis]
	stNames := names.Without(axis)
	log.WithFields(logrus.Fields{
		"feature": name,
		"gain":    gain,
		"records": d.Count(),
	}).Debug("splitting node")
	values, err := d.FeatureValues(axis)
	if err != nil {
		return nil, err
	}
	n := tree.NewInternal(name)
	for _, v := range values {
		s, err := d.Split(axis, v)
		if err != nil {
			return nil, err
		}
		st, err := grow(s, stNames)
		if err != nil {
			return nil, err
		}
		n.AddBranch(v, st)
	}
	return n, nil
}

func majorityLeaf(d dataset.Dataset, reason string) (tree.Node, error) {
	l, err := d.MajorityLabel()
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"label":   l,
		"records": d.Count(),
	}).Debugf("majority leaf: %s", reason)
	return tree.NewLeaf(l), nil
}
