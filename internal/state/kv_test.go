package state

import (
	"path/filepath"
	"testing"
)

func openTestKV(t *testing.T) *KV {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	kv, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestGetMissing(t *testing.T) {
	kv := openTestKV(t)

	_, ok, err := kv.Get("nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected ok=false for missing key")
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.Set(KeyTheme, `"dark"`); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	value, ok, err := kv.Get(KeyTheme)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected key to exist")
	}
	if value != `"dark"` {
		t.Errorf("expected %q, got %q", `"dark"`, value)
	}
}

func TestSetOverwrites(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.Set(KeyActiveChatID, "first"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := kv.Set(KeyActiveChatID, "second"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	value, ok, err := kv.Get(KeyActiveChatID)
	if err != nil || !ok {
		t.Fatalf("get failed: ok=%v err=%v", ok, err)
	}
	if value != "second" {
		t.Errorf("expected latest write to win, got %q", value)
	}
}

func TestDelete(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.Set("k", "v"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := kv.Delete("k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	_, ok, err := kv.Get("k")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Error("expected key to be gone after delete")
	}

	// Deleting again is a no-op
	if err := kv.Delete("k"); err != nil {
		t.Errorf("deleting absent key should not error: %v", err)
	}
}

func TestKeys(t *testing.T) {
	kv := openTestKV(t)

	for _, k := range []string{"b", "a", "c"} {
		if err := kv.Set(k, "v"); err != nil {
			t.Fatalf("set failed: %v", err)
		}
	}

	keys, err := kv.Keys()
	if err != nil {
		t.Fatalf("keys failed: %v", err)
	}
	if len(keys) != 3 {
		t.Fatalf("expected 3 keys, got %d", len(keys))
	}
	for i, want := range []string{"a", "b", "c"} {
		if keys[i] != want {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want)
		}
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	kv, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if err := kv.Set(KeyChats, `[]`); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	kv.Close()

	kv2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer kv2.Close()

	value, ok, err := kv2.Get(KeyChats)
	if err != nil || !ok {
		t.Fatalf("get after reopen failed: ok=%v err=%v", ok, err)
	}
	if value != `[]` {
		t.Errorf("expected %q, got %q", `[]`, value)
	}
}
