package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
)

// redisAddr returns the address of a test Redis server, skipping the test
// when HULLVIZ_TEST_REDIS is unset.
func redisAddr(t *testing.T) string {
	t.Helper()
	addr := os.Getenv("HULLVIZ_TEST_REDIS")
	if addr == "" {
		t.Skip("HULLVIZ_TEST_REDIS not set")
	}
	return addr
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewRedisCache(ctx, RedisOptions{Addr: redisAddr(t), Prefix: "hullviz-test:" + t.Name() + ":"})
	if err != nil {
		t.Fatalf("NewRedisCache error: %v", err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "k"); err != nil || hit {
		t.Fatalf("Get before Set = hit %v, err %v", hit, err)
	}
	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit || string(data) != "v" {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("Get after Delete should miss")
	}
}

func TestNewRedisCacheRequiresAddr(t *testing.T) {
	if _, err := NewRedisCache(context.Background(), RedisOptions{}); err == nil {
		t.Error("expected error for empty address")
	}
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	_, err := NewRedisCache(context.Background(), RedisOptions{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
	})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestClientOptionsRetries(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"default", 0, defaultMaxRetries},
		{"explicit", 5, 5},
		{"disabled", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clientOptions(RedisOptions{Addr: "localhost:6379", MaxRetries: tt.in}, time.Second)
			if got.MaxRetries != tt.want {
				t.Errorf("MaxRetries = %d, want %d", got.MaxRetries, tt.want)
			}
			if got.MinRetryBackoff != defaultMinRetryBackoff || got.MaxRetryBackoff != defaultMaxRetryBackoff {
				t.Errorf("backoff = %v..%v", got.MinRetryBackoff, got.MaxRetryBackoff)
			}
			if got.DialTimeout != time.Second {
				t.Errorf("DialTimeout = %v, want 1s", got.DialTimeout)
			}
		})
	}
}
