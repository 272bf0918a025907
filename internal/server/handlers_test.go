package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/First008/searchsizer/internal/sizing"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func testServer() *Server {
	gin.SetMode(gin.TestMode)
	return New(0, zerolog.New(os.Stderr))
}

func TestHandleEstimate_OK(t *testing.T) {
	srv := testServer()

	body := `{
		"lexical_sizing": {
			"num_documents": 1000,
			"fields": [{"field_type": "String", "size": 100}]
		},
		"vector_sizing": {
			"num_documents": 1000,
			"fields": [{"field_type": "Vector", "dimensions": 128}]
		}
	}`

	req := httptest.NewRequest(http.MethodPost, "/estimate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var res sizing.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if res.SuggestedInstance != "S20" {
		t.Errorf("instance = %s, want S20", res.SuggestedInstance)
	}
	if res.LexicalDocs != 1000 {
		t.Errorf("lexical docs = %d, want 1000", res.LexicalDocs)
	}
}

func TestHandleEstimate_WireKeys(t *testing.T) {
	srv := testServer()

	body := `{"lexical_sizing": {}, "vector_sizing": {}}`
	req := httptest.NewRequest(http.MethodPost, "/estimate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	for _, key := range []string{"StorageGb", "RAMGb", "vCPU", "LexicalDocs", "suggested_instance"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("response missing key %q", key)
		}
	}
}

func TestHandleEstimate_MalformedJSON(t *testing.T) {
	srv := testServer()

	req := httptest.NewRequest(http.MethodPost, "/estimate", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleEstimate_InvalidConfiguration(t *testing.T) {
	srv := testServer()

	body := `{
		"lexical_sizing": {
			"fields": [{"field_type": "Autocomplete", "autocomplete_type": "bogus"}]
		},
		"vector_sizing": {}
	}`

	req := httptest.NewRequest(http.MethodPost, "/estimate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body: %s", w.Code, w.Body.String())
	}

	var errRes ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &errRes); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if errRes.Error == "" {
		t.Error("expected a non-empty error message")
	}
}

func TestHandleCatalog(t *testing.T) {
	srv := testServer()

	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	w := httptest.NewRecorder()

	srv.engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var res CatalogResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if res.Count != 7 {
		t.Errorf("count = %d, want 7", res.Count)
	}
	if len(res.Instances) != 7 || res.Instances[0].Name != "S20" {
		t.Errorf("instances = %+v, want 7 entries starting with S20", res.Instances)
	}
}

func TestHandleHealth(t *testing.T) {
	srv := testServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	srv.engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
