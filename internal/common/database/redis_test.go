// internal/common/database/redis_test.go
package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storedReport struct {
	Bucket string `json:"bucket"`
	Score  int    `json:"score"`
}

func newMiniredisStore(t *testing.T, ttl time.Duration) (*ReportStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewReportStore(client, "benchmark:report:", ttl), mr
}

func TestReportStore_PutGet(t *testing.T) {
	store, mr := newMiniredisStore(t, time.Hour)
	ctx := context.Background()

	id := "r-0"
	require.NoError(t, store.PutWithID(ctx, id, storedReport{Bucket: "$10M-$25M", Score: 53}))

	assert.True(t, mr.Exists("benchmark:report:"+id))
	assert.Equal(t, time.Hour, mr.TTL("benchmark:report:"+id))

	var got storedReport
	require.NoError(t, store.Get(ctx, id, &got))
	assert.Equal(t, storedReport{Bucket: "$10M-$25M", Score: 53}, got)
}

func TestReportStore_Expires(t *testing.T) {
	store, mr := newMiniredisStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.PutWithID(ctx, "r-1", storedReport{Score: 1}))
	mr.FastForward(2 * time.Minute)

	var got storedReport
	assert.ErrorIs(t, store.Get(ctx, "r-1", &got), ErrNotFound)
}

func TestReportStore_Delete(t *testing.T) {
	store, mr := newMiniredisStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.PutWithID(ctx, "r-2", storedReport{}))
	require.NoError(t, store.Delete(ctx, "r-2"))
	assert.False(t, mr.Exists("benchmark:report:r-2"))
}

func TestReportStore_SentMarkers(t *testing.T) {
	store, mr := newMiniredisStore(t, time.Hour)
	ctx := context.Background()

	got, err := store.SentMessageID(ctx, "r-4", "email")
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, store.MarkSent(ctx, "r-4", "email", "ses-1"))
	require.NoError(t, store.MarkSent(ctx, "r-4", "email", "ses-2"))

	got, err = store.SentMessageID(ctx, "r-4", "email")
	require.NoError(t, err)
	assert.Equal(t, "ses-1", got)
	assert.Equal(t, time.Hour, mr.TTL("benchmark:report:r-4:sent:email"))

	got, err = store.SentMessageID(ctx, "r-4", "sns")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReportStore_SentMessageIDError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewReportStore(client, "benchmark:report:", time.Minute)

	mock.ExpectGet("benchmark:report:r-5:sent:sns").SetErr(errors.New("connection reset"))

	_, err := store.SentMessageID(context.Background(), "r-5", "sns")
	assert.ErrorContains(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportStore_GetError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewReportStore(client, "benchmark:report:", time.Minute)

	mock.ExpectGet("benchmark:report:r-3").SetErr(errors.New("connection reset"))

	var got storedReport
	err := store.Get(context.Background(), "r-3", &got)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportStore_CorruptPayload(t *testing.T) {
	store, mr := newMiniredisStore(t, time.Minute)
	require.NoError(t, mr.Set("benchmark:report:bad", "{not json"))

	var got storedReport
	err := store.Get(context.Background(), "bad", &got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode report")
}
