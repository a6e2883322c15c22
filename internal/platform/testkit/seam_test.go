package testkit

import "testing"

var parseFn = func(s string) int { return len(s) }

func TestSwapRestoresAfterSubtest(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &parseFn, func(string) int { return -1 })
		if got := parseFn("abc"); got != -1 {
			t.Fatalf("swap not in effect, got %d", got)
		}
	})

	if got := parseFn("abc"); got != 3 {
		t.Fatalf("seam not restored, got %d", got)
	}
}

func TestSerialHoldsLockUntilCleanup(t *testing.T) {
	t.Run("locked", func(t *testing.T) {
		Serial(t)
		if seamMu.TryLock() {
			seamMu.Unlock()
			t.Fatal("lock not held during the test")
		}
	})

	if !seamMu.TryLock() {
		t.Fatal("lock not released after the test")
	}
	seamMu.Unlock()
}
