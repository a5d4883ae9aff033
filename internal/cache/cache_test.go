package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache()
	defer c.Stop()
	ctx := context.Background()

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Fatal("expected miss for unknown key")
	}

	c.Set(ctx, "k", []byte("v"), time.Minute)
	val, ok := c.Get(ctx, "k")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if string(val) != "v" {
		t.Errorf("expected %q, got %q", "v", val)
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache()
	defer c.Stop()
	ctx := context.Background()

	c.Set(ctx, "k", []byte("v"), 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get(ctx, "k"); ok {
		t.Error("expected expired entry to miss")
	}
}

func TestMemoryCache_Overwrite(t *testing.T) {
	c := NewMemoryCache()
	defer c.Stop()
	ctx := context.Background()

	c.Set(ctx, "k", []byte("first"), time.Minute)
	c.Set(ctx, "k", []byte("second"), time.Minute)

	val, _ := c.Get(ctx, "k")
	if string(val) != "second" {
		t.Errorf("expected last write to win, got %q", val)
	}
}

func TestMemoryCache_StopKeepsServing(t *testing.T) {
	c := NewMemoryCache()
	c.Stop()
	ctx := context.Background()

	c.Set(ctx, "k", []byte("v"), time.Minute)
	val, ok := c.Get(ctx, "k")
	if !ok || string(val) != "v" {
		t.Fatalf("expected hit after Stop, got %q ok=%v", val, ok)
	}

	c.Set(ctx, "gone", []byte("v"), -time.Second)
	if _, ok := c.Get(ctx, "gone"); ok {
		t.Error("expected lazy expiry to still apply after Stop")
	}
}
