package dispatch

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/gridnet-dev/gridnet-contract/contract"
	"github.com/stretchr/testify/require"
)

// testContract builds a v2 contract timestamped at the given signing time.
// Unsigned contracts hash fine, which is all replay tracking needs.
func testContract(timestamp int64) *contract.Contract {
	c := contract.New(
		contract.ParseType("beacon"),
		contract.ParseAction("A"),
		uuid.NewString(),
		"v")
	c.Timestamp = timestamp
	c.Nonce = 1
	c.TxTimestamp = timestamp

	return &c
}

func TestCheckReplay(t *testing.T) {
	mock := clock.NewMock()
	mock.Add(1600000000 * time.Second)

	pool := NewReplayPool(mock, time.Hour)

	c := testContract(mock.Now().Unix())

	require.True(t, pool.CheckReplay(c))

	// The check itself must not record anything:
	require.Zero(t, pool.Len())
	require.True(t, pool.CheckReplay(c))

	pool.TrackForReplay(c)
	require.Equal(t, 1, pool.Len())

	// The identical contract is now a replay:
	require.False(t, pool.CheckReplay(c))

	// A different contract with a current timestamp is unique:
	require.True(t, pool.CheckReplay(testContract(mock.Now().Unix())))
}

func TestCheckReplayRejectsStaleTimestamp(t *testing.T) {
	mock := clock.NewMock()
	mock.Add(1600000000 * time.Second)

	pool := NewReplayPool(mock, time.Hour)

	stale := testContract(mock.Now().Add(-time.Hour - time.Second).Unix())

	require.False(t, pool.CheckReplay(stale))
	require.Zero(t, pool.Len())
}

func TestCheckReplayPurgesExpiredEntries(t *testing.T) {
	mock := clock.NewMock()
	mock.Add(1600000000 * time.Second)

	pool := NewReplayPool(mock, time.Hour)

	pool.TrackForReplay(testContract(mock.Now().Unix()))
	pool.TrackForReplay(testContract(mock.Now().Unix()))
	require.Equal(t, 2, pool.Len())

	mock.Add(2 * time.Hour)

	// Checking any fresh contract sweeps out the expired entries:
	require.True(t, pool.CheckReplay(testContract(mock.Now().Unix())))
	require.Zero(t, pool.Len())
}

func TestCheckReplayKeepsLiveEntriesWhilePurging(t *testing.T) {
	mock := clock.NewMock()
	mock.Add(1600000000 * time.Second)

	pool := NewReplayPool(mock, time.Hour)

	old := testContract(mock.Now().Unix())
	pool.TrackForReplay(old)

	mock.Add(30 * time.Minute)

	live := testContract(mock.Now().Unix())
	pool.TrackForReplay(live)

	mock.Add(45 * time.Minute)

	// old expired, live did not:
	require.True(t, pool.CheckReplay(testContract(mock.Now().Unix())))
	require.Equal(t, 1, pool.Len())
	require.False(t, pool.CheckReplay(live))
}
