package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func newTestRepo(t *testing.T) *KVRepo {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "nested", "test.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewKVRepo(db)
}

func TestKVGetMissing(t *testing.T) {
	repo := newTestRepo(t)
	v, err := repo.Get(context.Background(), "nothing")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v != nil {
		t.Fatalf("Get=%q, want nil", v)
	}
}

func TestKVSetOverwrites(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, v := range []string{"one", "two"} {
		if err := repo.Set(ctx, "save", []byte(v)); err != nil {
			t.Fatalf("Set(%s): %v", v, err)
		}
	}
	got, err := repo.Get(ctx, "save")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "two" {
		t.Fatalf("Get=%q, want two", got)
	}

	hist, err := repo.History(ctx, "save")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(hist) != 2 {
		t.Fatalf("len(History)=%d, want 2", len(hist))
	}
	if hist[0].Size != 3 || hist[0].ID <= hist[1].ID {
		t.Fatalf("History not newest first: %+v", hist)
	}
}

func TestKVHistoryIsCapped(t *testing.T) {
	repo := newTestRepo(t).WithHistoryLimit(3)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		if err := repo.Set(ctx, "save", []byte{byte('a' + i)}); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	if err := repo.Set(ctx, "other", []byte("x")); err != nil {
		t.Fatalf("Set other: %v", err)
	}

	hist, err := repo.History(ctx, "save")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(hist) != 3 {
		t.Fatalf("len(History)=%d, want 3", len(hist))
	}
	other, _ := repo.History(ctx, "other")
	if len(other) != 1 {
		t.Fatalf("len(History other)=%d, want 1", len(other))
	}
}

func TestKVRollback(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	fixed := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	if _, err := repo.Rollback(ctx, "save"); !errors.Is(err, ErrNoHistory) {
		t.Fatalf("Rollback on empty err=%v, want ErrNoHistory", err)
	}

	_ = repo.Set(ctx, "save", []byte("v1"))
	_ = repo.Set(ctx, "save", []byte("v2"))
	_ = repo.Set(ctx, "save", []byte("v3"))

	restored, err := repo.Rollback(ctx, "save")
	if err != nil {
		t.Fatalf("Rollback: %v", err)
	}
	if string(restored) != "v2" {
		t.Fatalf("Rollback=%q, want v2", restored)
	}
	got, _ := repo.Get(ctx, "save")
	if string(got) != "v2" {
		t.Fatalf("Get after rollback=%q, want v2", got)
	}

	if _, err := repo.Rollback(ctx, "save"); err != nil {
		t.Fatalf("second Rollback: %v", err)
	}
	if _, err := repo.Rollback(ctx, "save"); !errors.Is(err, ErrNoHistory) {
		t.Fatalf("third Rollback err=%v, want ErrNoHistory", err)
	}
	got, _ = repo.Get(ctx, "save")
	if string(got) != "v1" {
		t.Fatalf("Get=%q, want v1", got)
	}

	hist, _ := repo.History(ctx, "save")
	if len(hist) != 1 || !hist[0].SavedAt.Equal(fixed) {
		t.Fatalf("History=%+v, want one entry saved at %v", hist, fixed)
	}
}

func TestMigrateIsRepeatable(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "again.db")
	for i := 0; i < 2; i++ {
		db, err := Open(ctx, path)
		if err != nil {
			t.Fatalf("open #%d: %v", i, err)
		}
		_ = db.Close()
	}
}

func TestResolveDBPath(t *testing.T) {
	t.Setenv(EnvDBPath, "/tmp/env.db")
	if got, _ := ResolveDBPath("/tmp/flag.db", "/tmp/conf.db"); got != "/tmp/flag.db" {
		t.Fatalf("flag path=%q", got)
	}
	if got, _ := ResolveDBPath("", "/tmp/conf.db"); got != "/tmp/conf.db" {
		t.Fatalf("config path=%q", got)
	}
	if got, _ := ResolveDBPath("", ""); got != "/tmp/env.db" {
		t.Fatalf("env path=%q", got)
	}

	t.Setenv(EnvDBPath, "")
	t.Setenv("HOME", "/home/cat")
	if got, _ := ResolveDBPath("", ""); got != "/home/cat/.kittyhaven.db" {
		t.Fatalf("default path=%q", got)
	}
	if got, _ := ResolveDBPath("~/saves/k.db", ""); got != "/home/cat/saves/k.db" {
		t.Fatalf("home path=%q", got)
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	if v, err := m.Get(ctx, "k"); v != nil || err != nil {
		t.Fatalf("Get missing=%q,%v", v, err)
	}
	buf := []byte("abc")
	_ = m.Set(ctx, "k", buf)
	buf[0] = 'z'
	if v, _ := m.Get(ctx, "k"); string(v) != "abc" {
		t.Fatalf("Get=%q, want abc", v)
	}
	m.Err = errors.New("disk full")
	if err := m.Set(ctx, "k", nil); err == nil {
		t.Fatalf("expected Set error")
	}
}
