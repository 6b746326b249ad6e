package probe

import (
	"path"
	"sort"
	"strings"
)

// Fake is an in-memory Prober used by collector tests. Files are keyed
// by exact path, commands by name plus joined args.
type Fake struct {
	Files    map[string]string
	Commands map[string]string
	Binaries map[string]bool
}

// NewFake returns an empty Fake where every probe reports absence.
func NewFake() *Fake {
	return &Fake{
		Files:    make(map[string]string),
		Commands: make(map[string]string),
		Binaries: make(map[string]bool),
	}
}

func (f *Fake) TryRead(p string) ([]byte, bool) {
	data, ok := f.Files[p]
	if !ok {
		return nil, false
	}
	return []byte(data), true
}

func (f *Fake) TryRun(name string, args ...string) (string, bool) {
	out, ok := f.Commands[commandKey(name, args)]
	if !ok {
		// Fall back to the bare name so tests can stub a tool without
		// repeating its full argument list.
		out, ok = f.Commands[name]
	}
	return out, ok
}

func (f *Fake) LookPath(name string) bool {
	return f.Binaries[name]
}

func (f *Fake) Glob(pattern string) []string {
	var matches []string
	for p := range f.Files {
		if ok, _ := path.Match(pattern, p); ok {
			matches = append(matches, p)
		}
	}
	sort.Strings(matches)
	return matches
}

// SetCommand stubs a tool invocation with its full argument list.
func (f *Fake) SetCommand(name string, args []string, out string) {
	f.Commands[commandKey(name, args)] = out
	f.Binaries[name] = true
}

func commandKey(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
