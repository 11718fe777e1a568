package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eventhub/server/internal/config"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func testLimiter(t *testing.T, cfg config.RateLimitConfig) *RateLimiter {
	t.Helper()
	limiter := NewRateLimiter(cfg)
	t.Cleanup(limiter.Stop)
	return limiter
}

func TestRateLimiter_AllowsInitialBurst(t *testing.T) {
	limiter := testLimiter(t, config.RateLimitConfig{PublicPerMinute: 5})
	handler := limiter.Limit(TierPublic)(okHandler())

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/events", nil)
		req.RemoteAddr = "192.168.1.100:12345"
		res := httptest.NewRecorder()

		handler.ServeHTTP(res, req)

		if res.Code != http.StatusOK {
			t.Fatalf("request %d: expected status 200, got %d", i+1, res.Code)
		}
	}
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	limiter := testLimiter(t, config.RateLimitConfig{PublicPerMinute: 5})
	handler := limiter.Limit(TierPublic)(okHandler())

	clientIP := "192.168.1.101:54321"

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/events", nil)
		req.RemoteAddr = clientIP
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)
	}

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	req.RemoteAddr = clientIP
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429 after burst, got %d", res.Code)
	}
	if res.Header().Get("Retry-After") != "60" {
		t.Fatalf("expected Retry-After 60, got %q", res.Header().Get("Retry-After"))
	}
}

func TestRateLimiter_SeparateClientsSeparateBuckets(t *testing.T) {
	limiter := testLimiter(t, config.RateLimitConfig{PublicPerMinute: 1})
	handler := limiter.Limit(TierPublic)(okHandler())

	first := httptest.NewRequest(http.MethodGet, "/events", nil)
	first.RemoteAddr = "10.0.0.1:1000"
	firstRes := httptest.NewRecorder()
	handler.ServeHTTP(firstRes, first)

	second := httptest.NewRequest(http.MethodGet, "/events", nil)
	second.RemoteAddr = "10.0.0.2:1000"
	secondRes := httptest.NewRecorder()
	handler.ServeHTTP(secondRes, second)

	if secondRes.Code != http.StatusOK {
		t.Fatalf("second client should not share first client's bucket, got %d", secondRes.Code)
	}
}

func TestRateLimiter_TiersHaveSeparateBuckets(t *testing.T) {
	limiter := testLimiter(t, config.RateLimitConfig{PublicPerMinute: 1, WritePerMinute: 1})
	public := limiter.Limit(TierPublic)(okHandler())
	write := limiter.Limit(TierWrite)(okHandler())

	clientIP := "10.0.0.4:1000"

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	req.RemoteAddr = clientIP
	public.ServeHTTP(httptest.NewRecorder(), req)

	post := httptest.NewRequest(http.MethodPost, "/events", nil)
	post.RemoteAddr = clientIP
	postRes := httptest.NewRecorder()
	write.ServeHTTP(postRes, post)

	if postRes.Code != http.StatusOK {
		t.Fatalf("write tier should not share the public tier's bucket, got %d", postRes.Code)
	}

	again := httptest.NewRequest(http.MethodPost, "/events", nil)
	again.RemoteAddr = clientIP
	againRes := httptest.NewRecorder()
	write.ServeHTTP(againRes, again)

	if againRes.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second write to exhaust the write budget, got %d", againRes.Code)
	}
}

func TestRateLimiter_LoginTierRetryAfter(t *testing.T) {
	limiter := testLimiter(t, config.RateLimitConfig{LoginPer15Minutes: 1})
	handler := limiter.Limit(TierLogin)(okHandler())

	clientIP := "10.0.0.6:1000"

	req := httptest.NewRequest(http.MethodGet, "/auth/github", nil)
	req.RemoteAddr = clientIP
	handler.ServeHTTP(httptest.NewRecorder(), req)

	again := httptest.NewRequest(http.MethodGet, "/auth/github", nil)
	again.RemoteAddr = clientIP
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, again)

	if res.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on second login attempt, got %d", res.Code)
	}
	if res.Header().Get("Retry-After") != "180" {
		t.Fatalf("expected Retry-After 180 on login tier, got %q", res.Header().Get("Retry-After"))
	}
}

func TestRateLimiter_ZeroLimitDisablesTier(t *testing.T) {
	limiter := testLimiter(t, config.RateLimitConfig{})
	handler := limiter.Limit(TierPublic)(okHandler())

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/events", nil)
		req.RemoteAddr = "10.0.0.3:1000"
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)

		if res.Code != http.StatusOK {
			t.Fatalf("request %d: expected status 200 with no limit configured, got %d", i+1, res.Code)
		}
	}
}

func TestClientKey_IgnoresForwardedHeaderFromUntrustedSource(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	req.RemoteAddr = "203.0.113.9:4444"
	req.Header.Set("X-Forwarded-For", "1.2.3.4")

	if got := clientKey(req, nil); got != "203.0.113.9" {
		t.Fatalf("expected direct IP, got %q", got)
	}
}

func TestClientKey_TrustsForwardedHeaderFromProxy(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	req.RemoteAddr = "10.0.0.5:4444"
	req.Header.Set("X-Forwarded-For", "1.2.3.4, 10.0.0.5")

	if got := clientKey(req, []string{"10.0.0.0/8"}); got != "1.2.3.4" {
		t.Fatalf("expected forwarded client IP, got %q", got)
	}
}
