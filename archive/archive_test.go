package archive

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"catan/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, store.Close()) })
	return store
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open("")
	require.Error(t, err)
}

func TestRecordAndListResults(t *testing.T) {
	store := openTestStore(t)

	first := Result{
		GameKey:    "aaaa",
		Winner:     1,
		P1Points:   12,
		P2Points:   7,
		Turns:      48,
		RecordedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	second := Result{
		GameKey:    "bbbb",
		Winner:     game.NoPlayer,
		P1Points:   9,
		P2Points:   9,
		Turns:      60,
		RecordedAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.RecordResult(first))
	require.NoError(t, store.RecordResult(second))

	results, err := store.ListResults()
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, second, results[0], "most recent result comes first")
	require.Equal(t, first, results[1])
}

func TestRecordResultOverwritesSameKey(t *testing.T) {
	store := openTestStore(t)

	r := Result{GameKey: "aaaa", Winner: 2, P1Points: 5, P2Points: 12, Turns: 30}
	require.NoError(t, store.RecordResult(r))
	r.Turns = 31
	require.NoError(t, store.RecordResult(r))

	results, err := store.ListResults()
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, 31, results[0].Turns)
}

func TestRecordResultRejectsEmptyKey(t *testing.T) {
	store := openTestStore(t)
	require.Error(t, store.RecordResult(Result{}))
}

func TestRecordResultStampsTime(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.RecordResult(Result{GameKey: "cccc", Winner: 1}))

	results, err := store.ListResults()
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.WithinDuration(t, time.Now().UTC(), results[0].RecordedAt, time.Minute)
}
