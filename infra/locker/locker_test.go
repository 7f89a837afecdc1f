package locker

import (
	"testing"
	"time"
)

func TestLockerTryAcquireCycle(t *testing.T) {
	l := New()

	if l.IsProcessing(1) {
		t.Fatalf("fresh locker reports id 1 as processing")
	}

	l.MarkAsProcessing(1)
	if !l.IsProcessing(1) {
		t.Fatalf("id 1 not marked as processing")
	}
	if l.IsProcessing(2) {
		t.Fatalf("unrelated id 2 reported as processing")
	}

	l.Unlock(1)
	if l.IsProcessing(1) {
		t.Fatalf("id 1 still processing after unlock")
	}
}

func TestPairLockerSerializesSameKey(t *testing.T) {
	l := NewPairLocker()

	l.Lock(1)
	done := make(chan struct{})
	go func() {
		l.Lock(1)
		l.Unlock(1)
		close(done)
	}()

	select {
	case <-done:
		t.Fatalf("second holder acquired pair 1 while locked")
	case <-time.After(50 * time.Millisecond):
	}

	l.Unlock(1)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("second holder never acquired pair 1 after unlock")
	}
}

func TestPairLockerIndependentKeys(t *testing.T) {
	l := NewPairLocker()

	l.Lock(1)
	defer l.Unlock(1)

	acquired := make(chan struct{})
	go func() {
		l.Lock(2)
		defer l.Unlock(2)
		close(acquired)
	}()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatalf("pair 2 blocked by the lock on pair 1")
	}
}
