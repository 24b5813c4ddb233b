package reactive

import "container/heap"

// dirtyQueue orders dirty computations by height, then creation order, so
// producers always run before their consumers.
type dirtyQueue []*computation

func (q dirtyQueue) Len() int { return len(q) }

func (q dirtyQueue) Less(i, j int) bool {
	if q[i].height != q[j].height {
		return q[i].height < q[j].height
	}
	return q[i].id < q[j].id
}

func (q dirtyQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *dirtyQueue) Push(x any) {
	*q = append(*q, x.(*computation))
}

func (q *dirtyQueue) Pop() any {
	old := *q
	n := len(old)
	c := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return c
}

func (q *dirtyQueue) push(c *computation) {
	if c.queued {
		return
	}
	c.queued = true
	heap.Push(q, c)
}

func (q *dirtyQueue) pop() *computation {
	c := heap.Pop(q).(*computation)
	c.queued = false
	return c
}

// fix restores heap order after c's height changed.
func (q *dirtyQueue) fix(c *computation) {
	for i, queued := range *q {
		if queued == c {
			heap.Fix(q, i)
			return
		}
	}
}

// drain empties the queue and clears the dirty flags of everything in it.
func (q *dirtyQueue) drain() int {
	n := len(*q)
	for _, c := range *q {
		c.queued = false
		c.dirty = false
	}
	*q = (*q)[:0]
	return n
}
