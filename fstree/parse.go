package fstree

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseLine classifies a single transcript line. Lines that are neither a
// command nor a "dir" listing must be exactly "<size> <name>". Only
// "$ cd /" addresses the root; any other name containing '/' is rejected.
func ParseLine(line string) (Entry, error) {
	switch {
	case line == "$ cd /":
		return Entry{Kind: CdRoot}, nil
	case line == "$ cd ..":
		return Entry{Kind: CdUp}, nil
	case line == "$ ls":
		return Entry{Kind: List}, nil
	}
	if name, ok := strings.CutPrefix(line, "$ cd "); ok {
		name = strings.TrimSpace(name)
		if !validName(name) {
			return Entry{}, fmt.Errorf("%w: %q", ErrBadLine, line)
		}
		return Entry{Kind: CdDown, Name: name}, nil
	}
	if name, ok := strings.CutPrefix(line, "dir "); ok {
		name = strings.TrimSpace(name)
		if !validName(name) {
			return Entry{}, fmt.Errorf("%w: %q", ErrBadLine, line)
		}
		return Entry{Kind: DirEntry, Name: name}, nil
	}

	parts := strings.Split(line, " ")
	if len(parts) != 2 || !validName(parts[1]) {
		return Entry{}, fmt.Errorf("%w: %q", ErrBadLine, line)
	}
	size, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || size < 0 {
		return Entry{}, fmt.Errorf("%w: bad size in %q", ErrBadLine, line)
	}

	return Entry{Kind: FileEntry, Name: parts[1], Size: size}, nil
}

// validName reports whether name can label a single tree node.
func validName(name string) bool {
	return name != "" && !strings.Contains(name, "/")
}
