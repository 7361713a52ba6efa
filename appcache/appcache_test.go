package appcache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemStore(t *testing.T) {
	s := NewMemStore()

	require.NoError(t, s.Write("protocol", "magnitude.cap", "2000", 1600000000))

	rec, ok := s.Read("protocol", "magnitude.cap")
	require.True(t, ok)
	require.Equal(t, Record{Value: "2000", Timestamp: 1600000000}, rec)
	require.Equal(t, 1, s.Len("protocol"))

	// Overwrite keeps one record per key:
	require.NoError(t, s.Write("protocol", "magnitude.cap", "3000", 1600000100))
	rec, _ = s.Read("protocol", "magnitude.cap")
	require.Equal(t, "3000", rec.Value)
	require.Equal(t, 1, s.Len("protocol"))

	require.NoError(t, s.Delete("protocol", "magnitude.cap"))
	_, ok = s.Read("protocol", "magnitude.cap")
	require.False(t, ok)

	// Deleting missing records is a no-op:
	require.NoError(t, s.Delete("protocol", "magnitude.cap"))
	require.NoError(t, s.Delete("nosection", "nokey"))
}

func TestBoltStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appcache.db")

	s, err := OpenBolt(path)
	require.NoError(t, err)

	require.NoError(t, s.Write("beacon", "cpid", "payload", 1600000000))

	rec, ok := s.Read("beacon", "cpid")
	require.True(t, ok)
	require.Equal(t, Record{Value: "payload", Timestamp: 1600000000}, rec)

	_, ok = s.Read("beacon", "other")
	require.False(t, ok)
	_, ok = s.Read("nosection", "cpid")
	require.False(t, ok)

	require.NoError(t, s.Delete("nosection", "cpid"))
	require.NoError(t, s.Close())

	// Records survive reopening:
	s, err = OpenBolt(path)
	require.NoError(t, err)
	defer s.Close()

	rec, ok = s.Read("beacon", "cpid")
	require.True(t, ok)
	require.Equal(t, "payload", rec.Value)

	require.NoError(t, s.Delete("beacon", "cpid"))
	_, ok = s.Read("beacon", "cpid")
	require.False(t, ok)
}
