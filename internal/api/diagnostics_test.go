package api

import (
	"net/http"
	"strings"
	"testing"

	"webprompt_server/config"
)

func TestDiagnosticsWithoutDatastore(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/test", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even without a datastore", w.Code)
	}

	body := decodeBody(t, w)
	if body["backend"] != "✅ Running" {
		t.Errorf("backend = %v", body["backend"])
	}
	if body["database"] != "❌ Database not configured (optional)" {
		t.Errorf("database = %v", body["database"])
	}
	if body["connection_status"] != "Not connected" {
		t.Errorf("connection_status = %v", body["connection_status"])
	}
	collections, ok := body["collections"].([]interface{})
	if !ok || len(collections) != 0 {
		t.Errorf("collections = %v, want empty list", body["collections"])
	}
	if body["database_url"] != "❌ Not set" {
		t.Errorf("database_url = %v", body["database_url"])
	}
	if body["database_name"] != "❌ Not set" {
		t.Errorf("database_name = %v", body["database_name"])
	}
}

func TestDiagnosticsReportsEnvPresence(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "app")
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/test", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	body := decodeBody(t, w)
	if body["database_name"] != "✅ Set" {
		t.Errorf("database_name = %v, want set marker", body["database_name"])
	}
	if body["database_url"] != "❌ Not set" {
		t.Errorf("database_url = %v, want unset marker", body["database_url"])
	}
}

func TestDiagnosticsBrokenDatastore(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")
	router := newRouterWith(t, config.Config{DatabaseURL: "this is not a postgres dsn"})

	w := doRequest(router, http.MethodGet, "/test", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even with a broken datastore", w.Code)
	}

	body := decodeBody(t, w)
	database, _ := body["database"].(string)
	if !strings.HasPrefix(database, "❌ Error: ") {
		t.Errorf("database = %q, want an error marker", database)
	}
	if body["connection_status"] != "Not connected" {
		t.Errorf("connection_status = %v", body["connection_status"])
	}
}
