package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCache_BasicOperations(t *testing.T) {
	cache := NewCache[string, int]()

	cache.Set("key1", 42)
	value, exists := cache.Get("key1")
	if !exists {
		t.Error("expected key1 to exist")
	}
	if value != 42 {
		t.Errorf("expected value 42, got %d", value)
	}

	_, exists = cache.Get("nonexistent")
	if exists {
		t.Error("expected nonexistent key to not exist")
	}

	cache.Delete("key1")
	_, exists = cache.Get("key1")
	if exists {
		t.Error("expected key1 to be deleted")
	}

	stats := cache.GetStats()
	if stats.Hits != 1 || stats.Misses != 2 {
		t.Errorf("expected 1 hit and 2 misses, got %d/%d", stats.Hits, stats.Misses)
	}
}

func TestCache_FileValidation(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "lib.rs")

	if err := os.WriteFile(testFile, []byte("pub struct A;"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	cache := NewCache[string, string]()
	if err := cache.SetWithFileInfo(testFile, "parsed", testFile); err != nil {
		t.Fatalf("SetWithFileInfo failed: %v", err)
	}

	if value, ok := cache.GetWithFileValidation(testFile, testFile); !ok || value != "parsed" {
		t.Errorf("expected cached value, got %q (ok=%v)", value, ok)
	}

	later := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(testFile, later, later); err != nil {
		t.Fatalf("Chtimes failed: %v", err)
	}

	if _, ok := cache.GetWithFileValidation(testFile, testFile); ok {
		t.Error("expected stale entry to be invalidated")
	}
	if cache.Size() != 0 {
		t.Errorf("expected stale entry to be removed, size is %d", cache.Size())
	}
}

func TestCache_Retain(t *testing.T) {
	cache := NewCache[string, int]()
	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Set("c", 3)

	dropped := cache.Retain(func(key string) bool { return key != "b" })
	if dropped != 1 {
		t.Errorf("expected 1 dropped entry, got %d", dropped)
	}
	if _, ok := cache.Get("b"); ok {
		t.Error("expected b to be dropped")
	}
	if cache.Size() != 2 {
		t.Errorf("expected size 2, got %d", cache.Size())
	}
}
