package version

import (
	"strings"
	"testing"
)

func TestInfoFallbacks(t *testing.T) {
	old := BuildDate
	defer func() { BuildDate = old }()

	BuildDate = ""
	if got := Info().BuildDate; got != "unknown" {
		t.Errorf("Expected 'unknown' fallback, got %q", got)
	}

	BuildDate = "2026-08-31"
	if got := Info().BuildDate; got != "2026-08-31" {
		t.Errorf("Expected build date passthrough, got %q", got)
	}
}

func TestStringContainsAllFields(t *testing.T) {
	oldDate, oldCommit, oldBranch := BuildDate, BuildCommit, BuildBranch
	defer func() { BuildDate, BuildCommit, BuildBranch = oldDate, oldCommit, oldBranch }()

	BuildDate, BuildCommit, BuildBranch = "2026-08-31", "abc1234", "main"

	s := String()
	for _, part := range []string{"2026-08-31", "abc1234", "main"} {
		if !strings.Contains(s, part) {
			t.Errorf("Version string %q missing %q", s, part)
		}
	}
}
