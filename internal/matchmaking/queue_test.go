package matchmaking

import (
	"testing"
	"time"

	"github.com/mauv0809/probable-spork/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketKey(t *testing.T) {
	q := newBucketQueue(100, config.BucketPolicyList)

	testCases := []struct {
		rating int
		want   int
	}{
		{rating: 0, want: 0},
		{rating: 49, want: 0},
		{rating: 50, want: 100},
		{rating: 1249, want: 1200},
		{rating: 1250, want: 1300},
		{rating: 1300, want: 1300},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, q.bucketKey(tc.rating), "rating %d", tc.rating)
	}
}

func TestAddAndRemove(t *testing.T) {
	q := newBucketQueue(100, config.BucketPolicyList)
	base := time.Now()

	require.NoError(t, q.add(&WaitingPlayer{PlayerID: "alice", Rating: 1200, EnqueuedAt: base}))
	require.NoError(t, q.add(&WaitingPlayer{PlayerID: "bob", Rating: 1210, EnqueuedAt: base.Add(time.Second)}))
	assert.Equal(t, 2, q.size())

	// Both round into the 1200 bucket under the list policy.
	assert.NotNil(t, q.find("alice"))
	assert.NotNil(t, q.find("bob"))

	assert.True(t, q.remove("alice"))
	assert.Equal(t, 1, q.size())
	assert.Nil(t, q.find("alice"))

	// Removing again is a no-op.
	assert.False(t, q.remove("alice"))

	assert.True(t, q.remove("bob"))
	assert.Equal(t, 0, q.size())
	assert.Empty(t, q.buckets)
}

func TestRejectPolicy(t *testing.T) {
	q := newBucketQueue(100, config.BucketPolicyReject)

	require.NoError(t, q.add(&WaitingPlayer{PlayerID: "alice", Rating: 1200}))

	// 1210 rounds into alice's bucket and is refused.
	err := q.add(&WaitingPlayer{PlayerID: "bob", Rating: 1210})
	assert.ErrorIs(t, err, ErrDuplicateBucket)
	assert.Equal(t, 1, q.size())
	assert.Nil(t, q.find("bob"))

	// A different bucket is fine.
	require.NoError(t, q.add(&WaitingPlayer{PlayerID: "carol", Rating: 1300}))
	assert.Equal(t, 2, q.size())

	// Once alice leaves, the bucket frees up.
	assert.True(t, q.remove("alice"))
	require.NoError(t, q.add(&WaitingPlayer{PlayerID: "bob", Rating: 1210}))
}

func TestWaitersIsSnapshot(t *testing.T) {
	q := newBucketQueue(100, config.BucketPolicyList)
	require.NoError(t, q.add(&WaitingPlayer{PlayerID: "alice", Rating: 1000}))
	require.NoError(t, q.add(&WaitingPlayer{PlayerID: "bob", Rating: 1100}))

	snapshot := q.waiters()
	q.remove("alice")

	assert.Len(t, snapshot, 2)
	assert.Equal(t, 1, q.size())
}

func TestPosition(t *testing.T) {
	q := newBucketQueue(100, config.BucketPolicyList)
	base := time.Now()

	alice := &WaitingPlayer{PlayerID: "alice", Rating: 1000, EnqueuedAt: base}
	bob := &WaitingPlayer{PlayerID: "bob", Rating: 1050, EnqueuedAt: base.Add(time.Second)}
	carol := &WaitingPlayer{PlayerID: "carol", Rating: 1800, EnqueuedAt: base.Add(2 * time.Second)}
	dave := &WaitingPlayer{PlayerID: "dave", Rating: 1020, EnqueuedAt: base.Add(3 * time.Second)}
	for _, p := range []*WaitingPlayer{alice, bob, carol, dave} {
		require.NoError(t, q.add(p))
	}

	// First in line within their window.
	assert.Equal(t, 1, q.position(alice, 200))
	// Alice enqueued earlier and is within 200 of bob.
	assert.Equal(t, 2, q.position(bob, 200))
	// Carol is rating-wise far from everyone.
	assert.Equal(t, 1, q.position(carol, 200))
	// Both alice and bob precede dave.
	assert.Equal(t, 3, q.position(dave, 200))
}

func TestEstimateWait(t *testing.T) {
	testCases := []struct {
		size int
		want int
	}{
		{size: 0, want: 5},
		{size: 1, want: 15},
		{size: 4, want: 15},
		{size: 5, want: 30},
		{size: 9, want: 30},
		{size: 10, want: 60},
		{size: 50, want: 60},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, estimateWait(tc.size), "size %d", tc.size)
	}
}
