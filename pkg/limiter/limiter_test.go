package limiter

import (
	"testing"
	"time"
)

func TestMemoryLimiterThreshold(t *testing.T) {
	l := NewMemoryLimiter(time.Minute, 3)

	key := "ip|admin@example.com"

	if l.TooMany(key) {
		t.Fatalf("fresh key should not be limited")
	}

	l.Fail(key)
	l.Fail(key)

	if l.TooMany(key) {
		t.Fatalf("below threshold should not be limited")
	}

	l.Fail(key)

	if !l.TooMany(key) {
		t.Fatalf("threshold reached, expected limited")
	}

	l.Reset(key)

	if l.TooMany(key) {
		t.Fatalf("reset key should not be limited")
	}
}

func TestMemoryLimiterWindowExpiry(t *testing.T) {
	l := NewMemoryLimiter(10*time.Millisecond, 1)

	l.Fail("key")

	if !l.TooMany("key") {
		t.Fatalf("expected limited inside window")
	}

	time.Sleep(20 * time.Millisecond)

	if l.TooMany("key") {
		t.Fatalf("expected window to expire")
	}
}
