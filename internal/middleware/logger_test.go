package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockpulse/internal/logger"
)

func TestToString(t *testing.T) {
	if s := toString(nil); s != "" {
		t.Fatalf("nil -> %q, want empty", s)
	}
	if s := toString("abc"); s != "abc" {
		t.Fatalf("string -> %q, want 'abc'", s)
	}
	if s := toString(123); s != "" {
		t.Fatalf("non-string -> %q, want empty", s)
	}
}

func TestRequestLogger_Fields(t *testing.T) {
	cases := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "success logs info", status: http.StatusOK, wantLevel: "info"},
		{name: "server error logs error", status: http.StatusInternalServerError, wantLevel: "error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", "info")
			t.Setenv("LOG_PRETTY", "false")
			var buf bytes.Buffer
			logger.InitWithWriter(&buf)
			t.Cleanup(logger.Init)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.Use(RequestID(), RequestLogger())
			router.GET("/ping", func(c *gin.Context) { c.String(tc.status, "pong") })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

			var line map[string]any
			if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
				t.Fatalf("invalid log line %q: %v", buf.String(), err)
			}
			if line["level"] != tc.wantLevel || line["path"] != "/ping" || line["method"] != "GET" {
				t.Fatalf("unexpected log line: %v", line)
			}
			if int(line["status"].(float64)) != tc.status {
				t.Fatalf("status field %v, want %d", line["status"], tc.status)
			}
			if line["request_id"] != w.Header().Get(RequestIDHeader) {
				t.Fatalf("request_id %v does not match header %q", line["request_id"], w.Header().Get(RequestIDHeader))
			}
		})
	}
}
