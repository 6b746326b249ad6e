package probe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemTryRead(t *testing.T) {
	p := System()

	dir := t.TempDir()
	path := filepath.Join(dir, "reading")
	require.NoError(t, os.WriteFile(path, []byte("42\n"), 0o644))

	data, ok := p.TryRead(path)
	require.True(t, ok)
	assert.Equal(t, "42\n", string(data))

	_, ok = p.TryRead(filepath.Join(dir, "missing"))
	assert.False(t, ok)
}

func TestSystemLookPath(t *testing.T) {
	p := System()
	assert.False(t, p.LookPath("definitely-not-a-real-binary-xyz"))
}

func TestReadTrimmed(t *testing.T) {
	f := NewFake()
	f.Files["/sys/thing"] = "  value\n"

	v, ok := ReadTrimmed(f, "/sys/thing")
	require.True(t, ok)
	assert.Equal(t, "value", v)

	_, ok = ReadTrimmed(f, "/sys/other")
	assert.False(t, ok)
}

func TestFakeCommandFallback(t *testing.T) {
	f := NewFake()
	f.SetCommand("smartctl", []string{"-H", "-A", "/dev/sda"}, "PASSED")
	f.Commands["lspci"] = "00:02.0 VGA compatible controller"

	out, ok := f.TryRun("smartctl", "-H", "-A", "/dev/sda")
	require.True(t, ok)
	assert.Equal(t, "PASSED", out)

	// Stubbing the bare name answers any argument list.
	out, ok = f.TryRun("lspci", "-v")
	require.True(t, ok)
	assert.Contains(t, out, "VGA")

	_, ok = f.TryRun("nvidia-smi")
	assert.False(t, ok)
}

func TestFakeGlobIsSorted(t *testing.T) {
	f := NewFake()
	f.Files["/sys/class/power_supply/BAT1/capacity"] = "50"
	f.Files["/sys/class/power_supply/BAT0/capacity"] = "80"
	f.Files["/sys/class/power_supply/AC/online"] = "1"

	matches := f.Glob("/sys/class/power_supply/BAT*/capacity")
	assert.Equal(t, []string{
		"/sys/class/power_supply/BAT0/capacity",
		"/sys/class/power_supply/BAT1/capacity",
	}, matches)
}
