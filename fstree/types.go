package fstree

import "errors"

// Sentinel errors for transcript replay and space queries.
var (
	ErrBadLine      = errors.New("fstree: unrecognized transcript line")
	ErrAboveRoot    = errors.New("fstree: cannot change up from the root directory")
	ErrKindConflict = errors.New("fstree: name already used by another node kind")
	ErrOverCapacity = errors.New("fstree: used space exceeds disk capacity")
	ErrNoCandidate  = errors.New("fstree: no directory frees enough space")
)

// Puzzle constants.
const (
	// SmallDirThreshold is the exclusive upper bound used by SumDirsBelow.
	SmallDirThreshold int64 = 100_000
	// DiskCapacity is the total size of the device.
	DiskCapacity int64 = 70_000_000
	// RequiredFree is the free space an update needs.
	RequiredFree int64 = 30_000_000
)

// NodeID addresses a node in a Tree's arena.
type NodeID int

const (
	// Root is the ID of the root directory of every Tree.
	Root NodeID = 0
	// NoParent marks the absent parent of the root.
	NoParent NodeID = -1
)

// Kind tags a node as a directory or a file.
type Kind uint8

const (
	Dir Kind = iota
	File
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == Dir {
		return "dir"
	}

	return "file"
}

// Node is one arena entry. Size is meaningful for files only; directory
// sizes are derived by Tree.Size.
type Node struct {
	Name   string
	Kind   Kind
	Size   int64
	Parent NodeID

	children map[string]NodeID
}

// EntryKind classifies a transcript line.
type EntryKind int

const (
	CdRoot EntryKind = iota
	CdUp
	CdDown
	List
	DirEntry
	FileEntry
)

// Entry is one parsed transcript line. Name is set for CdDown, DirEntry and
// FileEntry; Size only for FileEntry.
type Entry struct {
	Kind EntryKind
	Name string
	Size int64
}

// Options holds optional observation hooks for the space queries.
type Options struct {
	// OnDirSize, if non-nil, receives every directory examined and its size.
	OnDirSize func(id NodeID, size int64)
	// OnCandidate, if non-nil, receives every directory large enough to free
	// the deficit in SmallestToFree.
	OnCandidate func(id NodeID, size int64)
}

// Option configures Options.
type Option func(*Options)

// WithOnDirSize installs fn as the per-directory size hook.
func WithOnDirSize(fn func(id NodeID, size int64)) Option {
	return func(o *Options) {
		o.OnDirSize = fn
	}
}

// WithOnCandidate installs fn as the deletion-candidate hook.
func WithOnCandidate(fn func(id NodeID, size int64)) Option {
	return func(o *Options) {
		o.OnCandidate = fn
	}
}
