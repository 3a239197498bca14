package middleware

import (
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "Thandi Nkosi", "Thandi Nkosi"},
		{"script tags escaped", `<script>alert("x")</script>`, "&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;"},
		{"quotes escaped", `O'Brien`, "O&#x27;Brien"},
		{"ampersand escaped first", "Tom & Jerry <b>", "Tom &amp; Jerry &lt;b&gt;"},
		{"whitespace trimmed", "  hello  ", "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeInput(tt.input); got != tt.want {
				t.Errorf("SanitizeInput(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenerateSecureToken(t *testing.T) {
	a, err := GenerateSecureToken(32)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != 64 { // hex doubles the byte length
		t.Errorf("token length = %d, want 64", len(a))
	}

	b, err := GenerateSecureToken(32)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two generated tokens are identical")
	}
}

func TestRateLimiterPerKey(t *testing.T) {
	rl := NewRateLimiter()

	// 1 request per hour, burst 2
	limiterA := rl.GetLimiter("a", rate.Every(time.Hour), 2)
	if !limiterA.Allow() || !limiterA.Allow() {
		t.Fatal("burst requests should be allowed")
	}
	if limiterA.Allow() {
		t.Error("third request should exceed the burst")
	}

	// A different key gets its own budget
	limiterB := rl.GetLimiter("b", rate.Every(time.Hour), 2)
	if !limiterB.Allow() {
		t.Error("fresh key should not share the exhausted budget")
	}

	// Same key returns the same limiter
	if rl.GetLimiter("a", rate.Every(time.Hour), 2) != limiterA {
		t.Error("existing key must reuse its limiter")
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := NewRateLimiter()
	rl.GetLimiter("stale", rate.Every(time.Second), 1)
	rl.lastSeen["stale"] = time.Now().Add(-2 * time.Hour)

	rl.Cleanup()

	rl.mutex.RLock()
	_, exists := rl.limiters["stale"]
	rl.mutex.RUnlock()
	if exists {
		t.Error("idle limiter should have been removed")
	}
}
