package xfast

import "iter"

// All yields every stored (key, value) pair exactly once, in the
// unspecified enumeration order of the level-W index (§4.7). Callers
// wanting a deterministic order should use Ascend or Descend instead.
func (t *Trie[V]) All() iter.Seq2[uint64, V] {
	return func(yield func(uint64, V) bool) {
		if t.w == 0 {
			if t.zeroExists {
				yield(0, t.zeroValue)
			}
			return
		}
		for k, n := range t.levels[t.w] {
			if !yield(k, n.value) {
				return
			}
		}
	}
}

func (t *Trie[V]) leftmostOverall() *node[V] {
	if t.w == 0 || (t.root.left == nil && t.root.right == nil) {
		return nil
	}
	return t.leftmostLeaf(t.root)
}

func (t *Trie[V]) rightmostOverall() *node[V] {
	if t.w == 0 || (t.root.left == nil && t.root.right == nil) {
		return nil
	}
	return t.rightmostLeaf(t.root)
}

// Ascend yields every stored (key, value) pair in strictly increasing
// key order, by walking the leaf list from its smallest member.
func (t *Trie[V]) Ascend() iter.Seq2[uint64, V] {
	return func(yield func(uint64, V) bool) {
		if t.w == 0 {
			if t.zeroExists {
				yield(0, t.zeroValue)
			}
			return
		}
		for n := t.leftmostOverall(); n != nil; n = n.right {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Descend yields every stored (key, value) pair in strictly decreasing
// key order, by walking the leaf list from its largest member.
func (t *Trie[V]) Descend() iter.Seq2[uint64, V] {
	return func(yield func(uint64, V) bool) {
		if t.w == 0 {
			if t.zeroExists {
				yield(0, t.zeroValue)
			}
			return
		}
		for n := t.rightmostOverall(); n != nil; n = n.left {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}
