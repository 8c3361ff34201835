package tree

/*
Node is a node of a decision tree: either a *Leaf holding the predicted label
or an *Internal node that branches on the value of a feature.

Nodes are not meant to be modified once the tree they belong to is built, so
a tree can be read by any number of goroutines at once.
*/
type Node interface {
	node()
}

/*
Leaf is a terminal node of the tree, predicting its Label for every sample
reaching it.
*/
type Leaf struct {
	Label interface{}
}

/*
Internal is a node that asks for the value of Feature on the sample being
predicted and continues on the branch for that value.
*/
type Internal struct {
	// The name of the feature this node splits on
	Feature string
	// Children of the node by feature value
	branches map[interface{}]Node
	// Feature values of the branches in the order they were added
	values []interface{}
}

// NewLeaf returns a *Leaf predicting the given label.
func NewLeaf(label interface{}) *Leaf {
	return &Leaf{Label: label}
}

// NewInternal returns an *Internal node without branches for the given
// feature name.
func NewInternal(featureName string) *Internal {
	return &Internal{Feature: featureName, branches: make(map[interface{}]Node)}
}

func (*Leaf) node()     {}
func (*Internal) node() {}

/*
AddBranch takes a feature value and a node and sets the node as the child
for samples with that value. Adding a branch for a value twice replaces
the node while keeping the original position of the value.
*/
func (in *Internal) AddBranch(value interface{}, n Node) {
	if _, ok := in.branches[value]; !ok {
		in.values = append(in.values, value)
	}
	in.branches[value] = n
}

/*
Branch takes a feature value and returns the child node for it and true,
or nil and false if the node has no branch for the value.
*/
func (in *Internal) Branch(value interface{}) (Node, bool) {
	n, ok := in.branches[value]
	return n, ok
}

// Values returns the feature values the node branches on, in the order the
// branches were added.
func (in *Internal) Values() []interface{} {
	return append([]interface{}(nil), in.values...)
}

// Len returns the number of branches of the node.
func (in *Internal) Len() int {
	return len(in.values)
}
