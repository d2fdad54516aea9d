package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := NewClient("redis://"+mr.Addr(), "test", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestNewClient_InvalidURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "empty URL", url: ""},
		{name: "unsupported scheme", url: "invalid://url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.url, "test", zap.NewNop())
			assert.Error(t, err)
			assert.Nil(t, client)
		})
	}
}

func TestClient_SetAndGet(t *testing.T) {
	_, client := setupTestRedis(t)
	ctx := context.Background()

	key := client.KeyBuilder.KeyVoterVoted("election-1", "voter-1")
	require.NoError(t, client.Set(ctx, key, "1", time.Minute))

	val, err := client.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "1", val)
}

func TestClient_Get_Missing(t *testing.T) {
	_, client := setupTestRedis(t)

	_, err := client.Get(context.Background(), "staging:election:missing:results")
	assert.Error(t, err)
}

func TestClient_Exists(t *testing.T) {
	_, client := setupTestRedis(t)
	ctx := context.Background()

	key := client.KeyBuilder.KeyVoterVoted("election-1", "voter-1")
	n, err := client.Exists(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	require.NoError(t, client.Set(ctx, key, "1", time.Minute))

	n, err = client.Exists(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestClient_Delete(t *testing.T) {
	_, client := setupTestRedis(t)
	ctx := context.Background()

	keys := []string{
		client.KeyBuilder.KeyElectionResults("election-1"),
		client.KeyBuilder.KeyElectionSummaries(),
	}
	for _, key := range keys {
		require.NoError(t, client.Set(ctx, key, "{}", time.Minute))
	}

	require.NoError(t, client.Delete(ctx, keys...))

	n, err := client.Exists(ctx, keys...)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestClient_SetNX(t *testing.T) {
	_, client := setupTestRedis(t)
	ctx := context.Background()

	key := client.KeyBuilder.KeyVoterVoted("election-1", "voter-1")

	ok, err := client.SetNX(ctx, key, "1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.SetNX(ctx, key, "2", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClient_TTLExpiry(t *testing.T) {
	mr, client := setupTestRedis(t)
	ctx := context.Background()

	key := client.KeyBuilder.KeyElectionResults("election-1")
	require.NoError(t, client.Set(ctx, key, "{}", 30*time.Second))

	mr.FastForward(31 * time.Second)

	_, err := client.Get(ctx, key)
	assert.Error(t, err)
}

func TestClient_Health(t *testing.T) {
	mr, client := setupTestRedis(t)

	assert.NoError(t, client.Health(context.Background()))

	mr.Close()
	assert.Error(t, client.Health(context.Background()))
}
