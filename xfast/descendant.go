package xfast

// leftmostLeaf walks down from n preferring a real left child and
// falling back to the right when the left side is a shortcut,
// terminating at level w. Grounded on the original implementation's
// get_leftmost_node, generalized from Option checks to the
// isDescLeft/isDescRight flags this package uses instead.
func (t *Trie[V]) leftmostLeaf(n *node[V]) *node[V] {
	cur := n
	for cur.level != t.w {
		if !cur.isDescLeft {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return cur
}

// rightmostLeaf is leftmostLeaf's mirror image, grounded on the
// original get_rightmost_node.
func (t *Trie[V]) rightmostLeaf(n *node[V]) *node[V] {
	cur := n
	for cur.level != t.w {
		if !cur.isDescRight {
			cur = cur.right
		} else {
			cur = cur.left
		}
	}
	return cur
}

// repairNode reconciles n's shortcut pointers with its current real
// children, per §4.6: a missing side gets a shortcut to the extremal
// leaf of the other, populated side; if both sides are real, neither
// pointer is a shortcut; if neither side is real (only possible at the
// root of an empty trie), both pointers stay nil.
func (t *Trie[V]) repairNode(n *node[V]) {
	if n.isDescLeft {
		if !n.isDescRight && n.right != nil {
			n.left = t.leftmostLeaf(n.right)
		} else {
			n.left = nil
		}
	}
	if n.isDescRight {
		if !n.isDescLeft && n.left != nil {
			n.right = t.rightmostLeaf(n.left)
		} else {
			n.right = nil
		}
	}
}

// repairPath re-synchronizes the shortcut pointers of every surviving
// internal node on key's root-to-leaf path, from the leaf's parent up
// to the root, bottom-up. Each shortcut is computed by leftmostLeaf or
// rightmostLeaf, which follow only real child pointers, so the result
// does not depend on the shortcuts of nodes further down.
func (t *Trie[V]) repairPath(key uint64) {
	for l := t.w - 1; l >= 0; l-- {
		if n, ok := t.levels[l][prefix(key, l, t.w)]; ok {
			t.repairNode(n)
		}
	}
}
