package expr

// PushNegation returns a tree equivalent to n with every is-negated flag
// pushed down to the id/num leaves, by De Morgan: negating an and-node
// flips it to an or-node (and vice versa) and propagates the negation onto
// its children.
func PushNegation(n *Node) *Node {
	return pushNegation(n, false)
}

// pushNegation rebuilds the subtree rooted at n as if the negation
// inherited from above (negateFromAbove) had already been combined with
// n's own IsNot flag and cleared.
func pushNegation(n *Node, negateFromAbove bool) *Node {
	effective := xor(negateFromAbove, n.IsNot)
	switch n.Kind {
	case KindID:
		return &Node{Kind: KindID, Name: n.Name, IsNot: effective}
	case KindNum:
		return &Node{Kind: KindNum, Value: n.Value, IsNot: effective}
	case KindAnd, KindOr:
		kind := n.Kind
		if effective {
			kind = flip(n.Kind)
		}
		children := make([]*Node, len(n.Children))
		for i, c := range n.Children {
			children[i] = pushNegation(c, effective)
		}
		return &Node{Kind: kind, Children: children}
	default:
		return n
	}
}

func xor(a, b bool) bool { return a != b }

func flip(k Kind) Kind {
	if k == KindAnd {
		return KindOr
	}
	return KindAnd
}
