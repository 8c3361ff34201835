package tree

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"golang.org/x/sync/errgroup"
)

// Tree represents a decision tree. It is composed of its
// root node, the names of the features it was grown with,
// in the order of the training dataset columns, and the name
// of the label it predicts.
type Tree struct {
	Root     Node
	Features feature.Names
	Label    string
}

// New takes the root Node, the feature names and a label name and
// returns a tree with them.
func New(root Node, features feature.Names, label string) *Tree {
	return &Tree{root, features, label}
}

// Predict takes a vector of feature values ordered like the tree's
// features and returns the predicted label or an error, as the
// Predict function does.
func (t *Tree) Predict(vector []interface{}) (interface{}, error) {
	if t == nil {
		return nil, fmt.Errorf("nil tree cannot predict samples")
	}
	return Predict(t.Root, t.Features, vector)
}

/*
Test takes a context.Context and a dataset with records whose features are
ordered like the tree's and returns three values:
 * the share of records whose label is correctly predicted by the tree
 * the number of records that could not be predicted because of unseen
   feature values (these count as failed predictions)
 * an error if a prediction failed for another reason or the context was
   cancelled. If this is not nil, the other values will be 0.0 and 0
   respectively

Predictions are run concurrently.
*/
func (t *Tree) Test(ctx context.Context, d dataset.Dataset) (float64, int, error) {
	if t == nil || len(d) == 0 {
		return 0.0, 0, nil
	}
	if err := d.Validate(); err != nil {
		return 0.0, 0, err
	}
	if d.FeatureCount() != len(t.Features) {
		return 0.0, 0, dataset.NewPreconditionError("test", "dataset has %d features, tree has %d", d.FeatureCount(), len(t.Features))
	}
	hits := make([]bool, len(d))
	unseen := make([]bool, len(d))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, r := range d {
		i, r := i, r
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			l, err := t.Predict(r.Features())
			if err != nil {
				if !errors.Is(err, ErrUnseenFeatureValue) {
					return err
				}
				unseen[i] = true
				return nil
			}
			hits[i] = l == r.Label()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0.0, 0, err
	}
	var result float64
	var errCount int
	for i := range d {
		if hits[i] {
			result += 1.0
		}
		if unseen[i] {
			errCount++
		}
	}
	return result / float64(len(d)), errCount, nil
}

// Traverse takes a bottomup boolean and an error-returning
// function that takes a node and its depth as parameters, and
// goes through the tree running the function with every node.
// Traverse will call the function with a parent node before
// calling it for its children if bottomup is false, and
// call it after its children if bottomup is true.
// Children are visited in the order their branches were added.
// If the call to the function returns an error, the traversing
// is aborted and the error is returned.
func (t *Tree) Traverse(bottomup bool, f func(n Node, depth int) error) error {
	if t.Root == nil {
		return nil
	}
	return traverse(t.Root, 0, bottomup, f)
}

func traverse(n Node, depth int, bottomup bool, f func(Node, int) error) error {
	var err error
	if !bottomup {
		err = f(n, depth)
	}
	if err != nil {
		return err
	}
	if in, ok := n.(*Internal); ok {
		for _, v := range in.values {
			err = traverse(in.branches[v], depth+1, bottomup, f)
			if err != nil {
				return err
			}
		}
	}
	if bottomup {
		err = f(n, depth)
	}
	return err
}

// Depth returns the number of internal nodes on the longest path
// from the root to a leaf.
func (t *Tree) Depth() int {
	var result int
	t.Traverse(false, func(n Node, depth int) error {
		if _, ok := n.(*Leaf); ok && depth > result {
			result = depth
		}
		return nil
	})
	return result
}

func (t *Tree) String() string {
	if t.Root == nil {
		return ""
	}
	return subtreeString(t.Root, fmt.Sprintf("%s?", t.Label))
}

func subtreeString(n Node, criterion string) string {
	result := fmt.Sprintf("{ %s }\n", criterion)
	switch n := n.(type) {
	case *Leaf:
		return fmt.Sprintf("%s{ => %v }\n", result, n.Label)
	case *Internal:
		result = fmt.Sprintf("%s|\n", result)
		for i, v := range n.values {
			st := subtreeString(n.branches[v], fmt.Sprintf("%s is %v", n.Feature, v))
			for j, line := range strings.Split(st, "\n") {
				if len(line) == 0 {
					continue
				}
				if j == 0 {
					result = fmt.Sprintf("%s|__%s\n", result, line)
				} else if i == len(n.values)-1 {
					result = fmt.Sprintf("%s   %s\n", result, line)
				} else {
					result = fmt.Sprintf("%s|  %s\n", result, line)
				}
			}
		}
	}
	return result
}
