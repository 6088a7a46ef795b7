package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type entry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestDisconnectedIsNoop(t *testing.T) {
	Use(nil)
	ctx := context.Background()

	assert.NoError(t, Set(ctx, "k", entry{Name: "x"}, time.Minute))
	var got entry
	assert.False(t, Get(ctx, "k", &got))
	assert.NoError(t, Del(ctx, "k"))
}

func TestRedisRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Redis container in short mode")
	}
	ctx := context.Background()
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("container runtime unavailable: %v", err)
	}
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	endpoint, err := c.Endpoint(ctx, "")
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: endpoint})
	Use(client)
	t.Cleanup(func() {
		Use(nil)
		_ = client.Close()
	})

	require.NoError(t, Set(ctx, "venue:1", entry{Name: "court", Count: 2}, time.Minute))
	var got entry
	require.True(t, Get(ctx, "venue:1", &got))
	assert.Equal(t, entry{Name: "court", Count: 2}, got)

	require.NoError(t, client.Set(ctx, "broken", "{", time.Minute).Err())
	assert.False(t, Get(ctx, "broken", &got), "undecodable values are misses")

	require.NoError(t, Del(ctx, "venue:1"))
	assert.False(t, Get(ctx, "venue:1", &got))
}
