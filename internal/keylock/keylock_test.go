package keylock

import (
	"sync"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMutualExclusionPerKey(t *testing.T) {
	k := New()

	const goroutines = 50
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			k.Lock("r1")
			defer k.Unlock("r1")
			counter++
		}()
	}
	wg.Wait()

	if counter != goroutines {
		t.Errorf("expected %d increments, got %d", goroutines, counter)
	}
}

func TestIndependentKeysDoNotBlock(t *testing.T) {
	k := New()

	k.Lock("r1")
	defer k.Unlock("r1")

	done := make(chan struct{})
	go func() {
		k.Lock("r2")
		k.Unlock("r2")
		close(done)
	}()
	<-done
}

func TestEntriesAreReclaimed(t *testing.T) {
	k := New()

	k.Lock("r1")
	k.Unlock("r1")

	k.mu.Lock()
	defer k.mu.Unlock()
	if len(k.entries) != 0 {
		t.Errorf("expected empty entry map, got %d entries", len(k.entries))
	}
}

func TestUnlockUnheldKeyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on unlock of unheld key")
		}
	}()
	New().Unlock("never-locked")
}
