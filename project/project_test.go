package project

import (
	"testing"

	"github.com/gridnet-dev/gridnet-contract/contract"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func projectContract(action, name, url string) *contract.Contract {
	c := contract.New(contract.ParseType("project"), contract.ParseAction(action), name, url)
	c.TxTimestamp = 1600000000

	return &c
}

func TestWhitelistAdd(t *testing.T) {
	w := NewWhitelist(zaptest.NewLogger(t))

	require.NoError(t, w.Add(projectContract("A", "Einstein@Home", "https://einsteinathome.org/@")))
	require.True(t, w.Contains("Einstein@Home"))

	require.Equal(t,
		map[string]string{"Einstein@Home": "https://einsteinathome.org/@"},
		w.Snapshot())
}

func TestWhitelistAddRejectsBadURL(t *testing.T) {
	w := NewWhitelist(zaptest.NewLogger(t))

	for _, bad := range []string{"", "einsteinathome.org", "ftp://x.org/", "https://"} {
		require.Error(t, w.Add(projectContract("A", "p", bad)), "url %q", bad)
	}

	require.Empty(t, w.Snapshot())
}

func TestWhitelistDelete(t *testing.T) {
	w := NewWhitelist(zaptest.NewLogger(t))

	require.NoError(t, w.Add(projectContract("A", "p", "http://p.example.org/")))
	require.NoError(t, w.Delete(projectContract("D", "p", "x")))
	require.False(t, w.Contains("p"))
}

func TestWhitelistRevert(t *testing.T) {
	w := NewWhitelist(zaptest.NewLogger(t))

	add := projectContract("A", "p", "http://p.example.org/")
	require.NoError(t, w.Add(add))
	require.NoError(t, w.Revert(add))
	require.False(t, w.Contains("p"))

	del := projectContract("D", "p", "http://p.example.org/")
	require.NoError(t, w.Revert(del))
	require.True(t, w.Contains("p"))
}

func TestSnapshotIsACopy(t *testing.T) {
	w := NewWhitelist(zaptest.NewLogger(t))

	require.NoError(t, w.Add(projectContract("A", "p", "http://p.example.org/")))

	snap := w.Snapshot()
	snap["p"] = "tampered"
	snap["q"] = "injected"

	require.Equal(t, map[string]string{"p": "http://p.example.org/"}, w.Snapshot())
}
