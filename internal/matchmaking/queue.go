package matchmaking

import (
	"math"

	"github.com/mauv0809/probable-spork/internal/config"
)

// bucketQueue is one category's waiting list. Waiters are kept both in
// insertion order (the order the pairing engine scans in) and indexed by
// rating bucket. Not safe for concurrent use; the owning Service serializes
// access.
type bucketQueue struct {
	granularity int
	policy      config.BucketPolicy
	order       []*WaitingPlayer
	buckets     map[int][]*WaitingPlayer
}

func newBucketQueue(granularity int, policy config.BucketPolicy) *bucketQueue {
	return &bucketQueue{
		granularity: granularity,
		policy:      policy,
		buckets:     make(map[int][]*WaitingPlayer),
	}
}

// bucketKey rounds a rating to the nearest granularity step.
func (q *bucketQueue) bucketKey(rating int) int {
	g := float64(q.granularity)
	return int(math.Round(float64(rating)/g)) * q.granularity
}

// add inserts a waiter. Under the "reject" policy a second waiter in an
// occupied bucket fails with ErrDuplicateBucket instead of silently replacing
// the first.
func (q *bucketQueue) add(p *WaitingPlayer) error {
	key := q.bucketKey(p.Rating)
	if q.policy == config.BucketPolicyReject && len(q.buckets[key]) > 0 {
		return ErrDuplicateBucket
	}
	p.bucket = key
	q.buckets[key] = append(q.buckets[key], p)
	q.order = append(q.order, p)
	return nil
}

// remove deletes the waiter with the given identity. Returns false if absent.
func (q *bucketQueue) remove(playerID string) bool {
	found := false
	for i, p := range q.order {
		if p.PlayerID == playerID {
			q.order = append(q.order[:i], q.order[i+1:]...)
			q.removeFromBucket(p)
			found = true
			break
		}
	}
	return found
}

func (q *bucketQueue) removeFromBucket(p *WaitingPlayer) {
	waiters := q.buckets[p.bucket]
	for i, w := range waiters {
		if w.PlayerID == p.PlayerID {
			waiters = append(waiters[:i], waiters[i+1:]...)
			break
		}
	}
	if len(waiters) == 0 {
		delete(q.buckets, p.bucket)
	} else {
		q.buckets[p.bucket] = waiters
	}
}

// find returns the waiter with the given identity, or nil.
func (q *bucketQueue) find(playerID string) *WaitingPlayer {
	for _, p := range q.order {
		if p.PlayerID == playerID {
			return p
		}
	}
	return nil
}

// waiters returns the queue contents in insertion order. The returned slice
// is a snapshot; removals during iteration do not affect it.
func (q *bucketQueue) waiters() []*WaitingPlayer {
	snapshot := make([]*WaitingPlayer, len(q.order))
	copy(snapshot, q.order)
	return snapshot
}

func (q *bucketQueue) size() int {
	return len(q.order)
}

// position estimates a waiter's place in line: 1 plus the number of waiters
// within one rating-range window who enqueued earlier.
func (q *bucketQueue) position(p *WaitingPlayer, ratingRange int) int {
	position := 1
	for _, other := range q.order {
		if other.PlayerID == p.PlayerID {
			continue
		}
		if abs(other.Rating-p.Rating) <= ratingRange && other.EnqueuedAt.Before(p.EnqueuedAt) {
			position++
		}
	}
	return position
}

// estimateWait is a coarse step function of queue size, in seconds.
func estimateWait(queueSize int) int {
	switch {
	case queueSize == 0:
		return 5
	case queueSize < 5:
		return 15
	case queueSize < 10:
		return 30
	default:
		return 60
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
