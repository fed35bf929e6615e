package spec

// Node is one level of the element hierarchy. A node may hold a field, child
// nodes, or both when a field name equals a parent element name.
type Node struct {
	Name     string
	Field    *FieldSpec
	Children []*Node

	index map[string]*Node
}

// Child returns the named child, creating it on first use.
func (n *Node) Child(name string) *Node {
	if n.index == nil {
		n.index = make(map[string]*Node)
	}

	if c, ok := n.index[name]; ok {
		return c
	}

	c := &Node{Name: name}
	n.index[name] = c
	n.Children = append(n.Children, c)

	return c
}

// Lookup returns the child with the given name.
func (n *Node) Lookup(name string) (*Node, bool) {
	c, ok := n.index[name]

	return c, ok
}

// Walk visits every node below n depth-first in insertion order.
func (n *Node) Walk(fn func(path []string, node *Node)) {
	n.walk(nil, fn)
}

func (n *Node) walk(path []string, fn func(path []string, node *Node)) {
	for _, c := range n.Children {
		p := append(append([]string(nil), path...), c.Name)
		fn(p, c)
		c.walk(p, fn)
	}
}
