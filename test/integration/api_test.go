package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/party-planner/internal/application"
	"github.com/eugenenazirov/party-planner/internal/config"
)

func newHandler(t *testing.T) http.Handler {
	t.Helper()

	cfg := config.Default()
	cfg.EnableRequestLogging = true
	app, err := application.New(cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("application.New: %v", err)
	}
	return app.Handler()
}

func performRequest(t *testing.T, handler http.Handler, method, target string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestIntegrationFlow(t *testing.T) {
	handler := newHandler(t)

	rec := performRequest(t, handler, http.MethodGet, "/api/health", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from health, got %d", rec.Code)
	}

	rec = performRequest(t, handler, http.MethodGet, "/api/items", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from items, got %d", rec.Code)
	}
	var items struct {
		Items []struct {
			Index int    `json:"index"`
			Name  string `json:"name"`
		} `json:"items"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&items); err != nil {
		t.Fatalf("decode items: %v", err)
	}
	if len(items.Items) != 15 {
		t.Fatalf("expected 15 items, got %d", len(items.Items))
	}

	payload, _ := json.Marshal(map[string]any{"indices": []int{items.Items[1].Index, items.Items[0].Index}})
	rec = performRequest(t, handler, http.MethodPost, "/api/party-code", payload, map[string]string{"Content-Type": "application/json"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from party code, got %d", rec.Code)
	}

	var response struct {
		BaseCode  int    `json:"baseCode"`
		FinalCode int    `json:"finalCode"`
		Message   string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response.BaseCode != 20 || response.FinalCode != 18 {
		t.Fatalf("unexpected codes base=%d final=%d", response.BaseCode, response.FinalCode)
	}

	rec = performRequest(t, handler, http.MethodGet, "/?indices=1,0", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from page, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Balloons, Cake") {
		t.Fatalf("expected selected items on page")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected page responses to carry a request id")
	}
}
