package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepoNameFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"git@github.com:org/myrepo.git", "myrepo"},
		{"https://github.com/org/myrepo.git", "myrepo"},
		{"https://github.com/org/myrepo", "myrepo"},
		{"https://gitlab.example.com/team/sub/tool.git/", "tool"},
		{"git@bitbucket.org:solo.git", "solo"},
		{"", UnknownRepositoryName},
		{"   ", UnknownRepositoryName},
		{"https://github.com/org/.git", UnknownRepositoryName},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, RepoNameFromURL(tt.url))
		})
	}
}
