package shared

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "Bearer   abc", want: "abc"},
		{header: "bearer abc", want: ""},
		{header: "Basic abc", want: ""},
		{header: "abc", want: ""},
		{header: "", want: ""},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			c.Request.Header.Set("Authorization", tc.header)
		}
		if got := BearerToken(c); got != tc.want {
			t.Fatalf("header %q want %q got %q", tc.header, tc.want, got)
		}
	}
}

func TestCurrentUsernameFallback(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUsername(c); got != "" {
		t.Fatalf("missing username want empty got %q", got)
	}
	c.Set(ContextKeyUsername, "alice")
	if got := CurrentUsername(c); got != "alice" {
		t.Fatalf("username want alice got %q", got)
	}
}
