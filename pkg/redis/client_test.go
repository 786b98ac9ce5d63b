package redis

import (
	"testing"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/config"
)

func TestOptionsFromConfigRequiresURLOrAddress(t *testing.T) {
	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatalf("expected error when neither url nor address supplied")
	}
}

func TestOptionsFromConfigParsesURL(t *testing.T) {
	opts, err := optionsFromConfig(config.RedisConfig{URL: "redis://localhost:6379/2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "localhost:6379" {
		t.Fatalf("unexpected addr %q", opts.Addr)
	}
	if opts.DB != 2 {
		t.Fatalf("expected db 2, got %d", opts.DB)
	}
}

func TestOptionsFromConfigFallsBackToAddress(t *testing.T) {
	opts, err := optionsFromConfig(config.RedisConfig{Address: "127.0.0.1:6380", Password: "pw", DB: 1, PoolSize: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "127.0.0.1:6380" || opts.Password != "pw" || opts.DB != 1 {
		t.Fatalf("options not propagated: %+v", opts)
	}
	if opts.PoolSize != 7 {
		t.Fatalf("expected pool size 7, got %d", opts.PoolSize)
	}
}

func TestKeyBuilders(t *testing.T) {
	c := &Client{}
	if got := c.IdempotencyKey("finalize", "abc"); got != "ue360:idempotency:finalize:abc" {
		t.Fatalf("unexpected idempotency key %q", got)
	}
	if got := c.LockKey("cron-worker"); got != "ue360:lock:cron-worker" {
		t.Fatalf("unexpected lock key %q", got)
	}
	if got := c.AccessSessionKey("sess-1"); got != "ue360:session:access:sess-1" {
		t.Fatalf("unexpected session key %q", got)
	}
}
