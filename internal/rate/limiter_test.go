package rate

import "testing"

func TestClientLimiterBurst(t *testing.T) {
	limiter := NewClientLimiter(1, 3)
	for i := 0; i < 3; i++ {
		if !limiter.Allow("1.2.3.4") {
			t.Fatalf("request %d inside burst was denied", i)
		}
	}
	if limiter.Allow("1.2.3.4") {
		t.Fatalf("request beyond burst was allowed")
	}
}

func TestClientLimiterKeysAreIndependent(t *testing.T) {
	limiter := NewClientLimiter(1, 1)
	if !limiter.Allow("1.2.3.4") {
		t.Fatalf("first client denied")
	}
	if !limiter.Allow("5.6.7.8") {
		t.Fatalf("second client denied after first client's burst")
	}
}

func TestClientLimiterNilAndEmptyKey(t *testing.T) {
	var limiter *ClientLimiter
	if !limiter.Allow("1.2.3.4") {
		t.Fatalf("nil limiter should allow")
	}
	l := NewClientLimiter(1, 1)
	if !l.Allow("") {
		t.Fatalf("empty key should bypass limiting")
	}
}

func TestClientLimiterDefaults(t *testing.T) {
	// Non-positive settings fall back to a minimal working limiter.
	limiter := NewClientLimiter(0, 0)
	if !limiter.Allow("1.2.3.4") {
		t.Fatalf("first request denied under default settings")
	}
}
