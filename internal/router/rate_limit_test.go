package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRateLimitMiddlewareDisabledWithoutRedis(t *testing.T) {
	engine := gin.New()
	rule := RateLimitRule{Prefix: "va:rate:login", WindowSeconds: 60, MaxRequests: 1}
	engine.POST("/login", RateLimitMiddleware(nil, rule, KeyByIP), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// 未接入 Redis 时不限流，连续请求全部放行
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d want 200 got %d", i, w.Code)
		}
	}
}

func TestKeyByIPAndJSONField(t *testing.T) {
	keyFunc := KeyByIPAndJSONField("username")

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"  Admin  ","password":"x"}`))
	c.Request.RemoteAddr = "10.1.2.3:4567"

	key := keyFunc(c)
	if key != "admin|10.1.2.3" {
		t.Fatalf("key want admin|10.1.2.3 got %q", key)
	}

	// 请求体必须可被后续 handler 重新读取
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		t.Fatalf("re-read body failed: %v", err)
	}
	if !strings.Contains(string(body), `"username"`) {
		t.Fatalf("body must be restored, got %q", string(body))
	}
}

func TestKeyByIPAndJSONFieldFallsBackToIP(t *testing.T) {
	keyFunc := KeyByIPAndJSONField("username")
	cases := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "invalid json", body: "not-json"},
		{name: "missing field", body: `{"password":"x"}`},
		{name: "non string field", body: `{"username":123}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tc.body))
			c.Request.RemoteAddr = "10.1.2.3:4567"
			if key := keyFunc(c); key != "10.1.2.3" {
				t.Fatalf("key want bare ip got %q", key)
			}
		})
	}
}

func TestToInt64(t *testing.T) {
	cases := []struct {
		value interface{}
		want  int64
		ok    bool
	}{
		{value: int64(7), want: 7, ok: true},
		{value: int(7), want: 7, ok: true},
		{value: int32(7), want: 7, ok: true},
		{value: uint64(7), want: 7, ok: true},
		{value: uint32(7), want: 7, ok: true},
		{value: float64(7.9), want: 7, ok: true},
		{value: "7", ok: false},
		{value: nil, ok: false},
	}
	for _, tc := range cases {
		got, ok := toInt64(tc.value)
		if ok != tc.ok {
			t.Fatalf("value %v ok want %v got %v", tc.value, tc.ok, ok)
		}
		if ok && got != tc.want {
			t.Fatalf("value %v want %d got %d", tc.value, tc.want, got)
		}
	}
}
