package tree

import (
	"fmt"
	"reflect"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

// PredictionError represents an error related with predictions
type PredictionError string

/*
ErrUnseenFeatureValue is the error matched by errors.Is when a prediction
reaches a node with no branch for the sample's value of the node's feature,
that is, a value that was not present for that feature at that point of the
tree in the training data.
*/
const ErrUnseenFeatureValue = PredictionError("unseen feature value")

func (pe PredictionError) Error() string {
	return string(pe)
}

/*
UnseenValueError is returned by Predict with the feature and value for which
the tree has no branch.
*/
type UnseenValueError struct {
	Feature string
	Value   interface{}
}

func (uve *UnseenValueError) Error() string {
	return fmt.Sprintf("%v: %v for feature %s", ErrUnseenFeatureValue, uve.Value, uve.Feature)
}

// Is reports whether target is ErrUnseenFeatureValue.
func (uve *UnseenValueError) Is(target error) bool {
	return target == ErrUnseenFeatureValue
}

/*
Predict takes the root node of a tree, the names of the features in the
order the tree was grown with and a vector of feature values in that same
order, and returns the label predicted for the vector.

Starting from the root, each internal node looks up the position of its
feature on names, reads the vector's value at that position and continues
on the branch for it until a leaf is reached. If a node has no branch for
the value, an *UnseenValueError is returned instead of a label.

A *dataset.PreconditionError is returned if the vector and names lengths
differ, a node refers to a feature not on names or the value it reads cannot
be compared with ==.
*/
func Predict(root Node, names feature.Names, vector []interface{}) (interface{}, error) {
	if len(vector) != len(names) {
		return nil, dataset.NewPreconditionError("predict", "got %d values for %d features", len(vector), len(names))
	}
	n := root
	for {
		switch node := n.(type) {
		case *Leaf:
			return node.Label, nil
		case *Internal:
			i, ok := names.Index(node.Feature)
			if !ok {
				return nil, dataset.NewPreconditionError("predict", "unknown feature %q", node.Feature)
			}
			if v := vector[i]; v != nil && !reflect.TypeOf(v).Comparable() {
				return nil, dataset.NewPreconditionError("predict", "value of non-comparable type %T for feature %s", v, node.Feature)
			}
			child, ok := node.Branch(vector[i])
			if !ok {
				return nil, &UnseenValueError{Feature: node.Feature, Value: vector[i]}
			}
			n = child
		case nil:
			return nil, fmt.Errorf("nil tree cannot predict samples")
		default:
			return nil, fmt.Errorf("unknown node type %T", n)
		}
	}
}
