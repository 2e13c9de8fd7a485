package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/itsjaydesu/jayfolio-sub000/settings"
)

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/field-settings" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"base":{"amplitude":77},"influences":{"sounds":{"rippleStrength":60}}}`))
	}))
	defer srv.Close()

	f := Open(srv.URL + "/api/field-settings")
	doc, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if doc.Base.Amplitude != 77 {
		t.Errorf("expected amplitude 77, got %v", doc.Base.Amplitude)
	}
	if doc.Influences["sounds"][settings.RippleStrength] != 60 {
		t.Errorf("expected sounds ripple strength 60, got %v", doc.Influences["sounds"])
	}
}

func TestBootstrapFallsBackOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	doc := Bootstrap(context.Background(), Open(srv.URL), time.Second)
	if doc.Base != settings.Defaults() {
		t.Errorf("expected defaults after failed fetch, got %+v", doc.Base)
	}
}

func TestBootstrapNilFetcher(t *testing.T) {
	doc := Bootstrap(context.Background(), Open(""), 0)
	if doc.Base != settings.Defaults() {
		t.Error("expected defaults with no source")
	}
}

func TestFileStoreCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content", "field-settings.json")
	fs := &FileStore{Path: path}

	doc, err := fs.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if doc.Base != settings.Defaults() {
		t.Error("expected defaults for missing file")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to be created: %v", err)
	}
}

func TestFileStoreRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field-settings.json")
	fs := &FileStore{Path: path}

	doc := settings.DefaultDocument()
	doc.Base.Contrast = 1.1
	if err := fs.Write(doc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := fs.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got.Base.Contrast != 1.1 {
		t.Errorf("expected contrast 1.1, got %v", got.Base.Contrast)
	}
}

func TestFileStoreMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := (&FileStore{Path: path}).Fetch(context.Background()); err == nil {
		t.Error("expected parse error")
	}
}
