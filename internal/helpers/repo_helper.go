package helpers

import (
	"regexp"
	"strings"
)

var (
	// owner: alphanumerics and single hyphens; name: alphanumerics plus . _ -
	repoOwnerPattern = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]{0,38})$`)
	repoNamePattern  = regexp.MustCompile(`^[A-Za-z0-9._-]{1,100}$`)
	commitSHAPattern = regexp.MustCompile(`^[0-9a-fA-F]{4,64}$`)
)

// SplitRepo splits an "owner/name" slug. ok is false for anything else.
func SplitRepo(repo string) (owner, name string, ok bool) {
	owner, name, found := strings.Cut(repo, "/")
	if !found || strings.Contains(name, "/") {
		return "", "", false
	}
	if !repoOwnerPattern.MatchString(owner) || !repoNamePattern.MatchString(name) {
		return "", "", false
	}
	if name == "." || name == ".." {
		return "", "", false
	}
	return owner, name, true
}

// IsRepoSlug reports whether repo is a well-formed "owner/name"
func IsRepoSlug(repo string) bool {
	_, _, ok := SplitRepo(repo)
	return ok
}

// IsCommitSHA reports whether sha is an abbreviated or full hex commit id
func IsCommitSHA(sha string) bool {
	return commitSHAPattern.MatchString(sha)
}
