// File: bucket_queue.go
// Role: O(V+E) minimum-degree selection for degeneracy ordering, using one
// bucket per possible degree value instead of a heap.
package orient

import "sort"

type bucketQueue struct {
	buckets []map[int]struct{} // buckets[d] holds vertices currently at degree d
	min     int                // lowest non-empty bucket index known so far
}

func newBucketQueue(degree map[int]int) *bucketQueue {
	maxDeg := 0
	for _, d := range degree {
		if d > maxDeg {
			maxDeg = d
		}
	}

	bq := &bucketQueue{buckets: make([]map[int]struct{}, maxDeg+1)}
	for i := range bq.buckets {
		bq.buckets[i] = make(map[int]struct{})
	}
	for v, d := range degree {
		bq.buckets[d][v] = struct{}{}
	}

	return bq
}

// popMin removes and returns a vertex of minimum current degree, along with
// that degree. Ties are broken by ascending vertex ID for determinism.
func (bq *bucketQueue) popMin() (int, int) {
	for bq.min < len(bq.buckets) && len(bq.buckets[bq.min]) == 0 {
		bq.min++
	}

	bucket := bq.buckets[bq.min]
	candidates := make([]int, 0, len(bucket))
	for v := range bucket {
		candidates = append(candidates, v)
	}
	sort.Ints(candidates)
	v := candidates[0]
	delete(bucket, v)

	return v, bq.min
}

// decrement moves v from its current bucket to the bucket one below,
// updating degree in place. Used when a neighbour of v is removed.
func (bq *bucketQueue) decrement(v int, degree map[int]int) {
	d := degree[v]
	delete(bq.buckets[d], v)
	degree[v] = d - 1
	if d-1 < bq.min {
		bq.min = d - 1
	}
	bq.buckets[d-1][v] = struct{}{}
}
