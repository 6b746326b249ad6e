package probe

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTimeout bounds every external tool invocation. A hung
// diagnostic tool must never stall a collection run.
const DefaultTimeout = 10 * time.Second

// Prober abstracts "read a diagnostic file or run a diagnostic tool on
// whichever OS we're on". Every method reports absence instead of
// returning an error: missing files, permission denials, missing
// executables and timeouts all come back as ok=false. Collectors stay
// free of OS quirk handling and can be tested with a fake Prober.
type Prober interface {
	// TryRead returns the contents of path, or ok=false if the file is
	// missing or unreadable.
	TryRead(path string) ([]byte, bool)

	// TryRun executes an external tool and returns its stdout. ok=false
	// on a missing executable, a timeout, or a non-zero exit with no
	// usable output.
	TryRun(name string, args ...string) (string, bool)

	// LookPath reports whether an executable is installed.
	LookPath(name string) bool

	// Glob returns the paths matching pattern, empty on any failure.
	Glob(pattern string) []string
}

// System returns the real Prober backed by the local OS.
func System() Prober {
	return &systemProbe{timeout: DefaultTimeout}
}

type systemProbe struct {
	timeout time.Duration
}

func (p *systemProbe) TryRead(path string) ([]byte, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return data, true
}

func (p *systemProbe) TryRun(name string, args ...string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if ctx.Err() == context.DeadlineExceeded {
		return "", false
	}
	if err != nil {
		// Some tools exit non-zero while still printing what we need
		// (smartctl does this for failing drives). Keep the output if
		// there is any.
		if len(out) == 0 {
			return "", false
		}
	}
	return string(out), true
}

func (p *systemProbe) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func (p *systemProbe) Glob(pattern string) []string {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil
	}
	return matches
}

// ReadTrimmed is a convenience for single-value sysfs style files.
func ReadTrimmed(p Prober, path string) (string, bool) {
	data, ok := p.TryRead(path)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}
