package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

func TestDownloadWritesTargetFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("archive bytes"))
	}))
	defer server.Close()

	target := filepath.Join(t.TempDir(), "cache", "dep.nupkg")
	if err := Download(context.Background(), server.URL, target); err != nil {
		t.Fatalf("Download failed: %v", err)
	}

	content, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("Target file missing: %v", err)
	}
	if string(content) != "archive bytes" {
		t.Errorf("Wrong content: %s", content)
	}
}

func TestDownloadSkipsExistingTarget(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte("fresh"))
	}))
	defer server.Close()

	target := filepath.Join(t.TempDir(), "dep.nupkg")
	os.WriteFile(target, []byte("cached"), 0644)

	if err := Download(context.Background(), server.URL, target); err != nil {
		t.Fatalf("Download failed: %v", err)
	}

	if atomic.LoadInt32(&hits) != 0 {
		t.Error("Server was contacted even though the target exists")
	}
	content, _ := os.ReadFile(target)
	if string(content) != "cached" {
		t.Errorf("Cached file was overwritten: %s", content)
	}
}

func TestDownloadErrorNamesURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	target := filepath.Join(t.TempDir(), "dep.nupkg")
	err := Download(context.Background(), server.URL, target)
	if err == nil {
		t.Fatal("Expected an error for HTTP 404")
	}
	if !strings.Contains(err.Error(), server.URL) {
		t.Errorf("Error does not name the URL: %v", err)
	}
	if _, statErr := os.Stat(target); !os.IsNotExist(statErr) {
		t.Error("Failed download left a file behind")
	}
}
