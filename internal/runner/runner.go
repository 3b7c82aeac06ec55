// Package runner wraps external tool invocations. Every pipeline step
// that shells out (dotnet, npm) goes through Run so that output
// streaming and exit-code reporting behave the same everywhere.
package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// Result carries the captured output of a finished command. A non-zero
// ExitCode is not an error at this layer; callers decide what is fatal.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes a command and waits for it to finish. Both output
// streams are captured in full and also echoed line by line to the
// debug log while the command runs, so long external builds stay
// observable.
func Run(ctx context.Context, name string, args ...string) (*Result, error) {
	logrus.Debugf("Running: %s", CommandLine(name, args))

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = io.MultiWriter(&stdout, &lineLogger{prefix: name})
	cmd.Stderr = io.MultiWriter(&stderr, &lineLogger{prefix: name + "!"})

	err := cmd.Run()

	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		// Startup failures (binary not found, etc.) are real errors.
		return nil, err
	}

	return result, nil
}

// CommandLine renders a command for logging, quoting arguments that
// contain whitespace or shell metacharacters. The rendered string is
// display-only; execution always passes arguments as a vector.
func CommandLine(name string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, quoteArg(name))
	for _, arg := range args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(arg string) string {
	if arg == "" {
		return `""`
	}
	if strings.ContainsAny(arg, " \t\"'`$&|;<>()*?[]#~") {
		return `"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`
	}
	return arg
}

// lineLogger forwards subprocess output to the debug log one line at a
// time, buffering partial lines across writes.
type lineLogger struct {
	prefix string
	buf    []byte
}

func (l *lineLogger) Write(p []byte) (int, error) {
	l.buf = append(l.buf, p...)
	for {
		i := bytes.IndexByte(l.buf, '\n')
		if i < 0 {
			break
		}
		line := strings.TrimSuffix(string(l.buf[:i]), "\r")
		if line != "" {
			logrus.Debugf("[%s] %s", l.prefix, line)
		}
		l.buf = l.buf[i+1:]
	}
	return len(p), nil
}
