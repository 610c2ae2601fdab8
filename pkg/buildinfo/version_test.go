package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	old := [3]string{Version, Commit, Date}
	defer func() { Version, Commit, Date = old[0], old[1], old[2] }()

	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-02"
	want := "{{.Name}} version v1.2.3\ncommit: abc123\nbuilt: 2026-01-02\n"
	if got := Template(); got != want {
		t.Errorf("Template() = %q, want %q", got, want)
	}
	if got := String(); !strings.HasPrefix(got, "version: v1.2.3\n") {
		t.Errorf("String() = %q", got)
	}
}
