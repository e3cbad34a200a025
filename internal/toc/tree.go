package toc

// Node is an entry with the entries nested beneath it.
type Node struct {
	Title    string  `json:"title"`
	Anchor   string  `json:"anchor"`
	Children []*Node `json:"children,omitempty"`
}

// Tree nests entries by indent. An entry becomes a child of the closest
// preceding entry with a smaller indent; entries with no such parent are
// roots. Order is preserved.
func Tree(entries []Entry) []*Node {
	if len(entries) == 0 {
		return nil
	}

	type stackEntry struct {
		node   *Node
		indent int
	}

	var stack []stackEntry
	var roots []*Node

	for _, e := range entries {
		node := &Node{Title: e.Title, Anchor: e.Anchor}

		// Pop stack until we find parent
		for len(stack) > 0 && stack[len(stack)-1].indent >= e.Indent {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			roots = append(roots, node)
		} else {
			parent := stack[len(stack)-1].node
			parent.Children = append(parent.Children, node)
		}

		stack = append(stack, stackEntry{node: node, indent: e.Indent})
	}

	return roots
}
