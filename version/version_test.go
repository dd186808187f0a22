package version

import (
	"strings"
	"testing"
)

func TestGetFullVersion(t *testing.T) {
	defer func(v, c, d string) { Version, GitCommit, BuildDate = v, c, d }(Version, GitCommit, BuildDate)

	Version = "dev"
	if got := GetFullVersion(); got != "dev" {
		t.Errorf("dev build failed: expected dev, got %s", got)
	}

	Version, GitCommit, BuildDate = "1.2.0", "abc123", "2024-05-01"
	got := GetFullVersion()
	for _, part := range []string{"1.2.0", "abc123", "2024-05-01"} {
		if !strings.Contains(got, part) {
			t.Errorf("expected %q in %q", part, got)
		}
	}
	if GetVersion() != "1.2.0" {
		t.Errorf("GetVersion failed: expected 1.2.0, got %s", GetVersion())
	}
}
