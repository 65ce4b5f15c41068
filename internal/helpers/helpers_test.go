package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStage(t *testing.T) {
	assert.True(t, IsValidStage(StageProd))
	assert.True(t, IsValidStage(StageDev))
	assert.True(t, IsValidStage(StageLocal))
	assert.False(t, IsValidStage("staging"))
	assert.False(t, IsValidStage(""))
}

func TestNormalizeStage(t *testing.T) {
	assert.Equal(t, StageLocal, NormalizeStage(""))
	assert.Equal(t, StageProd, NormalizeStage(" PROD "))
	assert.Equal(t, "qa", NormalizeStage("qa"))
}

func TestSplitRepo(t *testing.T) {
	tests := []struct {
		repo      string
		wantOwner string
		wantName  string
		ok        bool
	}{
		{"a/b", "a", "b", true},
		{"octocat/hello-world", "octocat", "hello-world", true},
		{"my-org/repo.name_v2", "my-org", "repo.name_v2", true},
		{"noslash", "", "", false},
		{"a/b/c", "", "", false},
		{"/b", "", "", false},
		{"a/", "", "", false},
		{"-bad/b", "", "", false},
		{"a/..", "", "", false},
		{"a b/c", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.repo, func(t *testing.T) {
			owner, name, ok := SplitRepo(tt.repo)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.ok, IsRepoSlug(tt.repo))
		})
	}
}

func TestIsCommitSHA(t *testing.T) {
	assert.True(t, IsCommitSHA("deadbeef"))
	assert.True(t, IsCommitSHA("7fd1a60b01f91b314f59955a4e4d4e80d8edf11d"))
	assert.False(t, IsCommitSHA("abc"))
	assert.False(t, IsCommitSHA("xyz12345"))
	assert.False(t, IsCommitSHA(""))
}
