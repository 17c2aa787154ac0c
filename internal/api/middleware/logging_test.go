package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestRequestLogger_EmitsEvent(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ships", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestLogger(log)(func(c echo.Context) error {
		return c.String(http.StatusOK, "[]")
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var event map[string]any
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("expected one JSON event, got %q: %v", buf.String(), err)
	}
	if event["uri"] != "/ships" || event["status"] != float64(http.StatusOK) || event["level"] != "info" {
		t.Fatalf("unexpected event: %v", event)
	}
}
