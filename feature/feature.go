/*
Package feature provides the ordered list of feature names that goes along a
dataset, naming its feature columns by position.
*/
package feature

import (
	"fmt"
	"strings"
)

/*
Names is an ordered list of feature names aligned with the feature columns of
a dataset: Names[i] names column i.

Names values are treated as immutable: methods that shrink the list return a
new one and never modify the receiver, so a list can be shared between
sibling branches of a tree being grown.
*/
type Names []string

/*
New takes feature names and returns them as Names. The given slice is
copied.
*/
func New(names ...string) Names {
	return append(Names(nil), names...)
}

/*
Without takes an index and returns a new Names without the name at that
index. It panics if the index is out of range, like slicing would.
*/
func (ns Names) Without(i int) Names {
	result := make(Names, 0, len(ns)-1)
	result = append(result, ns[:i]...)
	return append(result, ns[i+1:]...)
}

/*
Index takes a feature name and returns its position on the list and true,
or -1 and false if the name is not on it.
*/
func (ns Names) Index(name string) (int, bool) {
	for i, n := range ns {
		if n == name {
			return i, true
		}
	}
	return -1, false
}

// Contains returns whether the given name is on the list.
func (ns Names) Contains(name string) bool {
	_, ok := ns.Index(name)
	return ok
}

// Validate returns an error if the list contains empty or duplicated names.
func (ns Names) Validate() error {
	seen := make(map[string]bool, len(ns))
	for i, n := range ns {
		if n == "" {
			return fmt.Errorf("feature %d has no name", i)
		}
		if seen[n] {
			return fmt.Errorf("feature name %q is duplicated", n)
		}
		seen[n] = true
	}
	return nil
}

func (ns Names) String() string {
	return fmt.Sprintf("(%s)", strings.Join(ns, ", "))
}
