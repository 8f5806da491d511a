package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	defer func() { Version, Commit, Date = oldV, oldC, oldD }()

	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-02"

	tmpl := Template()
	for _, want := range []string{"{{.Name}} version v1.2.3", "commit: abc123", "built: 2026-01-02"} {
		if !strings.Contains(tmpl, want) {
			t.Errorf("Template() = %q, missing %q", tmpl, want)
		}
	}

	if got, want := String(), "version: v1.2.3\ncommit: abc123\nbuilt: 2026-01-02"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
