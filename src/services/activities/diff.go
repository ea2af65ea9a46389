package activities

// Tree is the normalized key/value form of an activity used for structural
// comparison. A value is either a scalar (possibly null) or a nested Tree;
// ordered lists are subtrees keyed "0", "1", ...
type Tree map[string]Node

// Node is the tagged variant: scalar when fields is nil, subtree otherwise.
type Node struct {
	value  *string
	fields Tree
}

func Scalar(v string) Node {
	return Node{value: &v}
}

// NullScalar is a present-but-null leaf; it always filters away.
func NullScalar() Node {
	return Node{}
}

func Subtree(t Tree) Node {
	if t == nil {
		t = Tree{}
	}
	return Node{fields: t}
}

func (n Node) IsTree() bool { return n.fields != nil }

func (n Node) Value() *string { return n.value }

func (n Node) Fields() Tree { return n.fields }

func scalarEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Diff reports, for every key of current, the current value wherever
// proposed differs. Subtrees are compared recursively; a key whose kinds
// disagree between the two sides is reported whole. Keys present only in
// proposed are invisible to this pass: callers run Diff twice with swapped
// arguments to catch additions as well as removals (see Material).
func Diff(current, proposed Tree) Tree {
	out := Tree{}
	for key, cur := range current {
		prop, ok := proposed[key]
		if cur.IsTree() {
			if !ok || !prop.IsTree() {
				out[key] = cur
				continue
			}
			if sub := Diff(cur.fields, prop.fields); len(sub) > 0 {
				out[key] = Subtree(sub)
			}
			continue
		}
		if !ok || prop.IsTree() || !scalarEqual(cur.value, prop.value) {
			out[key] = cur
		}
	}
	return out
}

// Filter strips a diff of everything that is not semantically meaningful:
// "id" keys, null and empty-string leaves, and subtrees that end up empty.
func Filter(t Tree) Tree {
	out := Tree{}
	for key, n := range t {
		if key == "id" {
			continue
		}
		if n.IsTree() {
			if sub := Filter(n.fields); len(sub) > 0 {
				out[key] = Subtree(sub)
			}
			continue
		}
		if n.value == nil || *n.value == "" {
			continue
		}
		out[key] = n
	}
	return out
}

// Material judges whether a proposed edit changes anything meaningful:
// non-empty filtered diff in either direction.
func Material(current, proposed Tree) bool {
	if len(Filter(Diff(current, proposed))) > 0 {
		return true
	}
	return len(Filter(Diff(proposed, current))) > 0
}
