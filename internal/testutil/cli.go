package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"
)

// pipeCapture collects everything written to one end of an os.Pipe
type pipeCapture struct {
	w    *os.File
	done chan string
}

func newPipeCapture(t *testing.T) *pipeCapture {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	c := &pipeCapture{w: w, done: make(chan string, 1)}
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		c.done <- buf.String()
	}()
	return c
}

func (c *pipeCapture) finish() string {
	_ = c.w.Close()
	return <-c.done
}

// CaptureOutputs runs fn with os.Stdout and os.Stderr redirected and returns
// what was written to each. The formatter writes results to stdout and human
// error text to stderr.
func CaptureOutputs(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()

	oldStdout, oldStderr := os.Stdout, os.Stderr
	outCapture, errCapture := newPipeCapture(t), newPipeCapture(t)
	os.Stdout, os.Stderr = outCapture.w, errCapture.w

	defer func() {
		os.Stdout, os.Stderr = oldStdout, oldStderr
	}()
	fn()

	return outCapture.finish(), errCapture.finish()
}

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()
	stdout, _ := CaptureOutputs(t, fn)
	return stdout
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}
