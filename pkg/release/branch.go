package release

import (
	"strings"
	"time"
)

// branchTimestampStripper removes every punctuation character an ISO 8601
// timestamp carries, leaving digits only.
var branchTimestampStripper = strings.NewReplacer(
	"-", "",
	"T", "",
	":", "",
	".", "",
	"Z", "",
)

// BranchName derives a release branch name from t: "release-" followed by
// the UTC ISO 8601 timestamp (millisecond precision) with all
// punctuation removed, so the name is "release-" plus digits.
func BranchName(t time.Time) string {
	iso := t.UTC().Format("2006-01-02T15:04:05.000Z")
	return "release-" + branchTimestampStripper.Replace(iso)
}
