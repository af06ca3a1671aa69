package pathing

// bucketQueue is a monotone priority queue keyed by small non-negative
// integers. Keys pushed while draining must not be below the key being
// drained.
type bucketQueue struct {
	buckets [][]int
	lo      int
	hi      int
}

func (q *bucketQueue) reset(n int) {
	q.buckets = make([][]int, n+1)
	q.lo = len(q.buckets)
	q.hi = -1
}

func (q *bucketQueue) push(key, item int) {
	if key >= len(q.buckets) {
		grown := make([][]int, key+1)
		copy(grown, q.buckets)
		q.buckets = grown
	}
	q.buckets[key] = append(q.buckets[key], item)
	if key < q.lo {
		q.lo = key
	}
	if key > q.hi {
		q.hi = key
	}
}

// drain pops every item in key order, including items pushed by fn, and
// leaves the queue empty with its bucket capacity intact
func (q *bucketQueue) drain(fn func(item, key int)) {
	for k := q.lo; k <= q.hi; k++ {
		for n := 0; n < len(q.buckets[k]); n++ {
			fn(q.buckets[k][n], k)
		}
		q.buckets[k] = q.buckets[k][:0]
	}
	q.lo = len(q.buckets)
	q.hi = -1
}
