package fstree

import (
	"container/heap"
	"fmt"
)

// SumDirsBelow returns the sum of the sizes of every directory whose size
// is strictly below threshold. Nested directories are counted at every level.
func (t *Tree) SumDirsBelow(threshold int64, opts ...Option) int64 {
	cfg := applyOptions(opts)

	var sum int64
	// The callback never fails, so neither does the walk.
	_ = t.WalkDirs(func(id NodeID) error {
		size := t.Size(id)
		if cfg.OnDirSize != nil {
			cfg.OnDirSize(id, size)
		}
		if size < threshold {
			sum += size
		}
		return nil
	})

	return sum
}

// Deficit returns how much space must be freed so that at least required
// bytes are free on a disk of the given capacity. It is negative when
// enough space is already free.
func (t *Tree) Deficit(capacity, required int64) (int64, error) {
	used := t.Size(Root)
	if used > capacity {
		return 0, fmt.Errorf("%w: used %d, capacity %d", ErrOverCapacity, used, capacity)
	}

	return required - (capacity - used), nil
}

// SmallestToFree returns the size of the smallest directory whose size is
// at least the deficit. Candidates are kept in a min-heap and the smallest
// is popped once the walk completes.
func (t *Tree) SmallestToFree(capacity, required int64, opts ...Option) (int64, error) {
	cfg := applyOptions(opts)

	deficit, err := t.Deficit(capacity, required)
	if err != nil {
		return 0, err
	}

	pq := make(candidatePQ, 0)
	_ = t.WalkDirs(func(id NodeID) error {
		size := t.Size(id)
		if cfg.OnDirSize != nil {
			cfg.OnDirSize(id, size)
		}
		if size < deficit {
			return nil
		}
		if cfg.OnCandidate != nil {
			cfg.OnCandidate(id, size)
		}
		heap.Push(&pq, &candidate{id: id, size: size})
		return nil
	})
	if pq.Len() == 0 {
		return 0, fmt.Errorf("%w: deficit %d", ErrNoCandidate, deficit)
	}

	return heap.Pop(&pq).(*candidate).size, nil
}

func applyOptions(opts []Option) Options {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// candidate is a directory large enough to cover the deficit.
type candidate struct {
	id   NodeID
	size int64
}

// candidatePQ is a min-heap of candidates ordered by size.
type candidatePQ []*candidate

func (pq candidatePQ) Len() int { return len(pq) }

func (pq candidatePQ) Less(i, j int) bool { return pq[i].size < pq[j].size }

func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(*candidate)) }

func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
