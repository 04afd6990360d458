package fstree

import (
	"fmt"
	"slices"
	"strings"
)

// Tree is an arena-backed directory tree. The zero value is not usable;
// call NewTree or Build.
type Tree struct {
	nodes []Node
}

// NewTree returns a tree holding only the root directory.
func NewTree() *Tree {
	return &Tree{
		nodes: []Node{{Name: "/", Kind: Dir, Parent: NoParent, children: map[string]NodeID{}}},
	}
}

// Build replays transcript lines into a new Tree. The working directory
// starts at the root.
func Build(lines []string) (*Tree, error) {
	t := NewTree()
	cwd := Root
	for i, line := range lines {
		e, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		switch e.Kind {
		case CdRoot:
			cwd = Root
		case CdUp:
			parent := t.nodes[cwd].Parent
			if parent == NoParent {
				return nil, fmt.Errorf("line %d: %w", i+1, ErrAboveRoot)
			}
			cwd = parent
		case CdDown:
			child, err := t.AddDir(cwd, e.Name)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			cwd = child
		case List:
			// Listing output follows on the next lines.
		case DirEntry:
			if _, err := t.AddDir(cwd, e.Name); err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
		case FileEntry:
			if _, err := t.AddFile(cwd, e.Name, e.Size); err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
		}
	}

	return t, nil
}

// Len returns the number of nodes, root included.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns a copy of node id and whether id exists.
func (t *Tree) Node(id NodeID) (Node, bool) {
	if id < 0 || int(id) >= len(t.nodes) {
		return Node{}, false
	}

	return t.nodes[id], true
}

// AddDir returns the child directory name of parent, creating it on first
// use. Returns ErrKindConflict if name is already a file.
func (t *Tree) AddDir(parent NodeID, name string) (NodeID, error) {
	if id, ok := t.nodes[parent].children[name]; ok {
		if t.nodes[id].Kind != Dir {
			return 0, fmt.Errorf("%w: %q is a file", ErrKindConflict, name)
		}
		return id, nil
	}

	return t.add(parent, Node{Name: name, Kind: Dir, children: map[string]NodeID{}})
}

// AddFile records file name of the given size under parent. Listing the
// same file again updates its size. Returns ErrKindConflict if name is
// already a directory.
func (t *Tree) AddFile(parent NodeID, name string, size int64) (NodeID, error) {
	if id, ok := t.nodes[parent].children[name]; ok {
		if t.nodes[id].Kind != File {
			return 0, fmt.Errorf("%w: %q is a directory", ErrKindConflict, name)
		}
		t.nodes[id].Size = size
		return id, nil
	}

	return t.add(parent, Node{Name: name, Kind: File, Size: size})
}

func (t *Tree) add(parent NodeID, n Node) (NodeID, error) {
	if t.nodes[parent].Kind != Dir {
		return 0, fmt.Errorf("%w: parent %q is a file", ErrKindConflict, t.nodes[parent].Name)
	}
	n.Parent = parent
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	t.nodes[parent].children[n.Name] = id

	return id, nil
}

// Children returns the children of id ordered by name.
func (t *Tree) Children(id NodeID) []NodeID {
	names := make([]string, 0, len(t.nodes[id].children))
	for name := range t.nodes[id].children {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make([]NodeID, len(names))
	for i, name := range names {
		out[i] = t.nodes[id].children[name]
	}

	return out
}

// Path returns the absolute slash-separated path of id.
func (t *Tree) Path(id NodeID) string {
	if id == Root {
		return "/"
	}
	var parts []string
	for cur := id; cur != Root; cur = t.nodes[cur].Parent {
		parts = append(parts, t.nodes[cur].Name)
	}
	slices.Reverse(parts)

	return "/" + strings.Join(parts, "/")
}

// Find resolves an absolute path such as "/a/e" to its node.
func (t *Tree) Find(path string) (NodeID, bool) {
	cur := Root
	for _, part := range strings.Split(strings.Trim(path, "/"), "/") {
		if part == "" {
			continue
		}
		next, ok := t.nodes[cur].children[part]
		if !ok {
			return 0, false
		}
		cur = next
	}

	return cur, true
}
