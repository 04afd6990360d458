// Package fstree rebuilds a directory tree from a shell transcript and
// answers size questions about it.
//
// What:
//
//   - ParseLine classifies one transcript line (cd /, cd .., cd <name>, ls,
//     "dir <name>", "<size> <name>").
//   - Build replays a transcript into a Tree.
//   - Tree.Size, Tree.WalkDirs and Tree.Path query the tree.
//   - SumDirsBelow (sizes strictly below a threshold) and SmallestToFree
//     answer the two puzzle questions.
//
// Storage:
//
//	The Tree is an arena: a slice of Nodes addressed by NodeID. Each node
//	keeps its parent as an index (NoParent for the root) and a directory
//	keeps a name→NodeID map of its children. The arena owns every node;
//	there are no pointers between nodes.
//
// Complexity:
//
//   - Build:          O(L) for L transcript lines.
//   - Size:           O(subtree). Sizes are recomputed on every call and never
//     cached, so they always reflect the current tree; this does not scale
//     past puzzle-sized trees.
//   - WalkDirs:       O(V log V) (children are visited in name order).
//   - SumDirsBelow:   O(V × depth) because every directory recomputes its size.
//   - SmallestToFree: same walk plus O(C log C) heap work for C candidates.
//
// Errors:
//
//   - ErrBadLine:      a line matches no transcript shape, or a name
//     contains "/".
//   - ErrAboveRoot:    "cd .." issued at the root.
//   - ErrKindConflict: a name is used both as a file and as a directory.
//   - ErrOverCapacity: the tree is larger than the disk capacity.
//   - ErrNoCandidate:  no directory frees enough space.
package fstree
