package version

import "testing"

func TestString(t *testing.T) {
	oldCommit, oldTime := GitCommit, BuildTime
	t.Cleanup(func() { GitCommit, BuildTime = oldCommit, oldTime })

	GitCommit, BuildTime = "unknown", "unknown"
	if got := String(); got != Version {
		t.Fatalf("expected %q, got %q", Version, got)
	}

	GitCommit, BuildTime = "abc1234", "2025-06-01"
	want := Version + " (abc1234, built 2025-06-01)"
	if got := String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
