package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryBlacklistAddAndContains(t *testing.T) {
	store := NewMemoryBlacklistStore()
	ctx := context.Background()

	if err := store.Add(ctx, "tok-a", time.Hour); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	banned, err := store.Contains(ctx, "tok-a")
	if err != nil {
		t.Fatalf("contains failed: %v", err)
	}
	if !banned {
		t.Fatalf("tok-a want blacklisted")
	}

	banned, err = store.Contains(ctx, "tok-unknown")
	if err != nil {
		t.Fatalf("contains failed: %v", err)
	}
	if banned {
		t.Fatalf("unknown token must not be blacklisted")
	}
}

func TestMemoryBlacklistExpiry(t *testing.T) {
	store := NewMemoryBlacklistStore()
	ctx := context.Background()

	if err := store.Add(ctx, "tok-short", 10*time.Millisecond); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	time.Sleep(25 * time.Millisecond)
	banned, err := store.Contains(ctx, "tok-short")
	if err != nil {
		t.Fatalf("contains failed: %v", err)
	}
	if banned {
		t.Fatalf("expired entry must not be blacklisted")
	}
}

func TestMemoryBlacklistNoopInputs(t *testing.T) {
	store := NewMemoryBlacklistStore()
	ctx := context.Background()

	if err := store.Add(ctx, "", time.Hour); err != nil {
		t.Fatalf("empty token add must be a noop, got %v", err)
	}
	if err := store.Add(ctx, "tok-zero", 0); err != nil {
		t.Fatalf("zero ttl add must be a noop, got %v", err)
	}
	banned, err := store.Contains(ctx, "tok-zero")
	if err != nil {
		t.Fatalf("contains failed: %v", err)
	}
	if banned {
		t.Fatalf("zero ttl entry must not be stored")
	}
	banned, err = store.Contains(ctx, "")
	if err != nil {
		t.Fatalf("contains failed: %v", err)
	}
	if banned {
		t.Fatalf("empty token must never be blacklisted")
	}
}

func TestMemoryOnlineStoreLifecycle(t *testing.T) {
	store := NewMemoryOnlineStore()
	ctx := context.Background()

	record := &OnlineRecord{TokenID: "tok-a", UserName: "alice", LoginTime: time.Now()}
	if err := store.Put(ctx, record, time.Hour); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := store.Get(ctx, "tok-a")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil || got.UserName != "alice" {
		t.Fatalf("get want alice got %+v", got)
	}

	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("list want 1 record got %d", len(records))
	}

	if err := store.Remove(ctx, "tok-a"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	got, err = store.Get(ctx, "tok-a")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != nil {
		t.Fatalf("removed record must be gone, got %+v", got)
	}
}

func TestMemoryOnlineStoreExpiry(t *testing.T) {
	store := NewMemoryOnlineStore()
	ctx := context.Background()

	record := &OnlineRecord{TokenID: "tok-short", LoginTime: time.Now()}
	if err := store.Put(ctx, record, 10*time.Millisecond); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	time.Sleep(25 * time.Millisecond)

	got, err := store.Get(ctx, "tok-short")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expired record must be gone, got %+v", got)
	}
	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expired record must not be listed, got %d", len(records))
	}
}
