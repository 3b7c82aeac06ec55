package builder

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/upmkit/upmkit/internal/models"
)

func stubDotnet(t *testing.T, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test uses sh stubs")
	}
	binDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(binDir, "dotnet"), []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write stub: %v", err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestBuildSuccess(t *testing.T) {
	stubDotnet(t, "#!/bin/sh\necho built\nexit 0\n")

	result, err := Build(context.Background(), "/tmp/Widget.sln")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !strings.Contains(result.Stdout, "built") {
		t.Errorf("Stdout not captured: %q", result.Stdout)
	}
}

func TestBuildFailureSurfacesOutput(t *testing.T) {
	stubDotnet(t, "#!/bin/sh\necho 'CS0001: something broke'\necho 'more detail' >&2\nexit 1\n")

	_, err := Build(context.Background(), "/tmp/Widget.sln")
	if err == nil {
		t.Fatal("Expected build failure")
	}

	var exportErr *models.ExportError
	if !errors.As(err, &exportErr) || exportErr.Type != models.ErrBuild {
		t.Fatalf("Expected ErrBuild, got: %v", err)
	}
	if !strings.Contains(err.Error(), "CS0001: something broke") {
		t.Errorf("Compiler stdout not surfaced: %v", err)
	}
	if !strings.Contains(err.Error(), "more detail") {
		t.Errorf("Compiler stderr not surfaced: %v", err)
	}
}
