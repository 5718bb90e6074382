package params

import (
	"errors"
	"sync"
	"testing"
)

func TestGetBeforeSet(t *testing.T) {
	store := NewStore()
	if _, err := store.Get(); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestSetReplaces(t *testing.T) {
	store := NewStore()

	store.Set(`[]`)
	got, err := store.Get()
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != `[]` {
		t.Fatalf("value mismatch: %s", got)
	}

	store.Set(`[{"type":"event"}]`)
	got, err = store.Get()
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != `[{"type":"event"}]` {
		t.Fatalf("value not replaced: %s", got)
	}
}

func TestEmptyStringIsConfigured(t *testing.T) {
	store := NewStore()
	store.Set("")
	if _, err := store.Get(); err != nil {
		t.Fatalf("empty abi text should still count as configured: %v", err)
	}
}

func TestConcurrentAccess(t *testing.T) {
	store := NewStore()
	store.Set("initial")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				store.Set("replacement")
			}
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				value, err := store.Get()
				if err != nil {
					t.Errorf("get failed: %v", err)
					return
				}
				if value != "initial" && value != "replacement" {
					t.Errorf("torn read: %q", value)
					return
				}
			}
		}()
	}
	wg.Wait()
}
