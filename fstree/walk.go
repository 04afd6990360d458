package fstree

// Size returns the size of id: a file's own size, or the recursive sum of
// a directory's children. The result is recomputed on every call.
// id must belong to t.
func (t *Tree) Size(id NodeID) int64 {
	n := &t.nodes[id]
	if n.Kind == File {
		return n.Size
	}
	var sum int64
	for _, child := range n.children {
		sum += t.Size(child)
	}

	return sum
}

// WalkDirs calls fn once for every directory in post-order: all of a
// directory's subdirectories (in name order) before the directory itself,
// the root last. An error from fn aborts the walk and is returned.
func (t *Tree) WalkDirs(fn func(id NodeID) error) error {
	return t.walkDirs(Root, fn)
}

func (t *Tree) walkDirs(id NodeID, fn func(id NodeID) error) error {
	for _, child := range t.Children(id) {
		if t.nodes[child].Kind != Dir {
			continue
		}
		if err := t.walkDirs(child, fn); err != nil {
			return err
		}
	}

	return fn(id)
}
