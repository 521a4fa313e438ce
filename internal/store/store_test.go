package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := s.Record(ctx, Entry{
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			Origin:    fmt.Sprintf("post %d", i),
			Report:    fmt.Sprintf("report %d", i),
			OK:        i != 1,
		})
		require.NoError(t, err)
	}

	entries, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "post 2", entries[0].Origin)
	assert.Equal(t, "report 2", entries[0].Report)
	assert.True(t, entries[0].OK)
	assert.True(t, base.Add(2*time.Minute).Equal(entries[0].CreatedAt))

	assert.Equal(t, "post 1", entries[1].Origin)
	assert.False(t, entries[1].OK)
}

func TestRecord_DefaultsTimestamp(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	before := time.Now()
	id, err := s.Record(ctx, Entry{Origin: "o", Report: "r", OK: true})
	require.NoError(t, err)
	assert.Positive(t, id)

	entries, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].CreatedAt.Before(before.Add(-time.Second)))
}

func TestPrune(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := s.Record(ctx, Entry{CreatedAt: base.Add(time.Duration(i) * time.Hour), Origin: "o", Report: fmt.Sprint(i)})
		require.NoError(t, err)
	}

	n, err := s.Prune(ctx, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	entries, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "4", entries[0].Report)
	assert.Equal(t, "3", entries[1].Report)
}

func TestOpen_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = s.Record(ctx, Entry{Origin: "o", Report: "kept", OK: true})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	entries, err := s.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0].Report)
}
