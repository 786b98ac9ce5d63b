package keylock

import (
	"sync"
	"testing"
)

func TestWithLockSerializesSameKey(t *testing.T) {
	kl := New()

	const iterations = 200
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				_ = kl.WithLock("event-1", func() error {
					counter++
					return nil
				})
			}
		}()
	}
	wg.Wait()

	if counter != 8*iterations {
		t.Fatalf("expected %d increments, got %d", 8*iterations, counter)
	}
}

func TestDifferentKeysDoNotBlockEachOther(t *testing.T) {
	kl := New()
	kl.Lock("event-a")
	defer kl.Unlock("event-a")

	done := make(chan struct{})
	go func() {
		kl.Lock("event-b")
		kl.Unlock("event-b")
		close(done)
	}()

	<-done
}

func TestEntriesAreReleased(t *testing.T) {
	kl := New()
	kl.Lock("event-1")
	kl.Unlock("event-1")

	kl.mu.Lock()
	defer kl.mu.Unlock()
	if len(kl.locks) != 0 {
		t.Fatalf("expected lock map to be empty, has %d entries", len(kl.locks))
	}
}
