package runner

import (
	"context"
	"runtime"
	"strings"
	"testing"
)

func TestRunCapturesOutputAndExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test uses sh")
	}

	result, err := Run(context.Background(), "sh", "-c", "echo out; echo err >&2; exit 3")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if result.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", result.ExitCode)
	}
	if strings.TrimSpace(result.Stdout) != "out" {
		t.Errorf("Stdout = %q", result.Stdout)
	}
	if strings.TrimSpace(result.Stderr) != "err" {
		t.Errorf("Stderr = %q", result.Stderr)
	}
}

func TestRunZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test uses sh")
	}

	result, err := Run(context.Background(), "sh", "-c", "true")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", result.ExitCode)
	}
}

func TestRunMissingBinaryIsError(t *testing.T) {
	if _, err := Run(context.Background(), "definitely-not-a-real-binary-upmkit"); err == nil {
		t.Fatal("Expected startup error for missing binary")
	}
}

func TestCommandLineQuoting(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"dotnet", []string{"build", "My Solution.sln"}, `dotnet build "My Solution.sln"`},
		{"npm", []string{"pack", "/tmp/pkg"}, "npm pack /tmp/pkg"},
		{"sh", []string{"-c", "echo $HOME"}, `sh -c "echo $HOME"`},
		{"x", []string{""}, `x ""`},
	}

	for _, tc := range cases {
		if got := CommandLine(tc.name, tc.args); got != tc.want {
			t.Errorf("CommandLine(%s, %v) = %q, want %q", tc.name, tc.args, got, tc.want)
		}
	}
}
