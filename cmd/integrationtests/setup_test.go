package integrationtests

import (
	batch "auction-etl/internal/batchService"
	"auction-etl/internal/server"
	"auction-etl/internal/tables"
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with a driver writing under a temporary directory.
func SetupTestRouter(t *testing.T) (*gin.Engine, tables.Layout) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	layout := tables.NewLayout(t.TempDir())
	driver := batch.NewDriver(layout, io.Discard)
	return server.SetupRouter(driver), layout
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// WriteInputFiles copies the named documents into a temporary directory and returns their paths in order.
func WriteInputFiles(t *testing.T, docs map[string]string, order ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, 0, len(order))
	for _, name := range order {
		path := filepath.Join(dir, name)
		if body, ok := docs[name]; ok {
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatalf("failed to write %s: %v", name, err)
			}
		}
		paths = append(paths, path)
	}
	return paths
}

// ReadTable returns the raw contents of an output table
func ReadTable(t *testing.T, layout tables.Layout, name string) string {
	t.Helper()
	data, err := os.ReadFile(layout.Path(name))
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(data)
}
