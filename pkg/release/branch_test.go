package release

import (
	"regexp"
	"testing"
	"time"
)

var branchNamePattern = regexp.MustCompile(`^release-\d+$`)

func TestBranchName(t *testing.T) {
	at := time.Date(2026, 8, 26, 13, 4, 5, 678_000_000, time.UTC)

	got := BranchName(at)
	if want := "release-20260826130405678"; got != want {
		t.Errorf("BranchName() = %q, want %q", got, want)
	}
}

func TestBranchNameHasNoPunctuation(t *testing.T) {
	times := []time.Time{
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 31, 23, 59, 59, 999_000_000, time.UTC),
		time.Now(),
		// A non-UTC zone must not leak an offset into the name.
		time.Date(2026, 6, 15, 9, 30, 0, 0, time.FixedZone("CEST", 2*3600)),
	}

	for _, at := range times {
		got := BranchName(at)
		if !branchNamePattern.MatchString(got) {
			t.Errorf("BranchName(%v) = %q, want release- followed by digits only", at, got)
		}
	}
}
