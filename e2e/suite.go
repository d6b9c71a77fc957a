package e2e

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"
)

// lockedBuffer is a thread-safe bytes.Buffer for capturing process output
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write implements io.Writer with mutex protection
func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

// String returns the buffer contents with mutex protection
func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

// Runner manages a gathering process for e2e tests
type Runner struct {
	t       *testing.T
	bin     string
	cmd     *exec.Cmd
	stdout  *lockedBuffer
	stderr  *lockedBuffer
	workDir string
	env     []string
}

// NewRunner creates a runner working in a fresh temporary directory; the test is skipped
// when the binary is not installed
func NewRunner(t *testing.T) *Runner {
	t.Helper()

	bin := os.Getenv("GATHERING_BIN")
	if bin == "" {
		bin = "gathering"
	}

	path, err := exec.LookPath(bin)
	if err != nil {
		t.Skipf("%s binary not found, set GATHERING_BIN to run e2e tests", bin)
	}

	return &Runner{
		t:       t,
		bin:     path,
		workDir: t.TempDir(),
		stdout:  &lockedBuffer{},
		stderr:  &lockedBuffer{},
	}
}

// Setenv adds an environment variable for the next command
func (r *Runner) Setenv(key, value string) {
	r.env = append(r.env, key+"="+value)
}

// WorkDir returns the directory the commands run in
func (r *Runner) WorkDir() string {
	return r.workDir
}

// Start launches gathering with args in the background
func (r *Runner) Start(args ...string) error {
	r.cmd = r.command(args...)

	if err := r.cmd.Start(); err != nil {
		return fmt.Errorf("failed to start gathering: %w", err)
	}

	return nil
}

// Run executes gathering with args to completion and returns its exit code
func (r *Runner) Run(args ...string) (int, error) {
	r.cmd = r.command(args...)

	err := r.cmd.Run()
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode(), nil
	}

	if err != nil {
		return -1, fmt.Errorf("failed to run gathering: %w", err)
	}

	return 0, nil
}

func (r *Runner) command(args ...string) *exec.Cmd {
	cmd := exec.Command(r.bin, args...)
	cmd.Dir = r.workDir
	cmd.Env = append(os.Environ(), r.env...)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	return cmd
}

// Stop sends SIGTERM and waits for graceful shutdown
func (r *Runner) Stop() error {
	if r.cmd == nil || r.cmd.Process == nil {
		return nil
	}

	if err := r.cmd.Process.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("failed to send SIGTERM: %w", err)
	}

	done := make(chan error, 1)

	go func() {
		done <- r.cmd.Wait()
	}()

	select {
	case <-done:
		return nil
	case <-time.After(10 * time.Second):
		r.cmd.Process.Kill()
		<-done

		return fmt.Errorf("process did not exit gracefully, killed")
	}
}

// WaitForLog blocks until pattern appears in stdout or timeout
func (r *Runner) WaitForLog(pattern string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for log pattern %q\nOutput:\n%s", pattern, r.Output())
		case <-ticker.C:
			if strings.Contains(r.Output(), pattern) {
				return nil
			}
		}
	}
}

// Output returns current stdout content
func (r *Runner) Output() string {
	return r.stdout.String()
}

// Stderr returns current stderr content
func (r *Runner) Stderr() string {
	return r.stderr.String()
}

// ExitCode returns process exit code (after Stop)
func (r *Runner) ExitCode() int {
	if r.cmd == nil || r.cmd.ProcessState == nil {
		return -1
	}

	return r.cmd.ProcessState.ExitCode()
}

// freeAddr returns a loopback address with a port nobody listens on
func freeAddr(t *testing.T) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to reserve a port: %v", err)
	}
	defer listener.Close()

	return listener.Addr().String()
}
