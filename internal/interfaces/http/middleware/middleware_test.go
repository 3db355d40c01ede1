package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/easayliu/dvisual-upload/internal/infrastructure/ratelimit"
	apperrors "github.com/easayliu/dvisual-upload/internal/shared/errors"
	"github.com/gin-gonic/gin"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	return r
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON %q: %v", rr.Body.String(), err)
	}
	return out
}

func TestRequestIDMiddleware(t *testing.T) {
	r := newEngine(RequestIDMiddleware())
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if seen != "abc-123" || rr.Header().Get(RequestIDHeader) != "abc-123" {
		t.Errorf("expected client request id to be kept, got %q / %q", seen, rr.Header().Get(RequestIDHeader))
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if len(seen) != 36 {
		t.Errorf("expected generated uuid, got %q", seen)
	}
}

func TestRecoverMiddleware(t *testing.T) {
	r := newEngine(RequestIDMiddleware(), RecoverMiddleware())
	r.GET("/", func(c *gin.Context) { panic("boom") })

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if body := errorBody(t, rr); body["result"] != false || body["code"] != "INTERNAL_ERROR" {
		t.Errorf("unexpected body %v", body)
	}
}

func TestErrorHandlerMiddleware(t *testing.T) {
	r := newEngine(ErrorHandlerMiddleware())
	r.GET("/", func(c *gin.Context) {
		_ = c.Error(apperrors.ErrEmptyFilename)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if body := errorBody(t, rr); body["error"] != "No file selected" {
		t.Errorf("unexpected body %v", body)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	r := newEngine(RateLimitMiddleware(ratelimit.NewClientLimiter(1)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, rr.Code)
	}
	if codes[0] != http.StatusNoContent || codes[1] != http.StatusTooManyRequests {
		t.Errorf("unexpected status sequence %v", codes)
	}

	// 未开启限流时全部放行
	r = newEngine(RateLimitMiddleware(ratelimit.NewClientLimiter(0)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	for i := 0; i < 5; i++ {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		if rr.Code != http.StatusNoContent {
			t.Fatalf("request %d limited with qps=0", i)
		}
	}
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		origin  string
		want    string
	}{
		{"disabled", nil, "http://a.example", ""},
		{"listed origin", []string{"http://a.example"}, "http://a.example", "http://a.example"},
		{"wildcard", []string{"*"}, "http://b.example", "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine(CORSMiddleware(tt.origins))
			r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Origin", tt.origin)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			if got := rr.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.want)
			}
		})
	}
}
