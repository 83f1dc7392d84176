//go:build unit

package builtin

import (
	"context"
	"errors"
	"testing"

	gitmocks "github.com/lerenn/bumped/pkg/git/mocks"
	"github.com/lerenn/bumped/pkg/plugin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func gitRelease() plugin.Release {
	return plugin.Release{
		Version:         "1.1.0",
		PreviousVersion: "1.0.0",
		Files:           []string{"package.json", "bower.json"},
		WorkDir:         "/project",
	}
}

func TestGit_Execute_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockGit := gitmocks.NewMockGit(ctrl)

	gomock.InOrder(
		mockGit.EXPECT().Add("/project", "package.json", "bower.json").Return(nil),
		mockGit.EXPECT().Commit("/project", "Release v1.1.0").Return(nil),
		mockGit.EXPECT().CreateTag("/project", "v1.1.0", "Release v1.1.0").Return(nil),
	)

	err := NewGit(mockGit).Execute(context.Background(), plugin.Params{Release: gitRelease()})

	assert.NoError(t, err)
}

func TestGit_Execute_CustomOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockGit := gitmocks.NewMockGit(ctrl)

	gomock.InOrder(
		mockGit.EXPECT().Add("/project", "package.json", "bower.json").Return(nil),
		mockGit.EXPECT().Commit("/project", "chore: 1.0.0 -> 1.1.0").Return(nil),
		mockGit.EXPECT().CreateTag("/project", "release-1.1.0", "chore: 1.0.0 -> 1.1.0").Return(nil),
		mockGit.EXPECT().Push("/project", "upstream").Return(nil),
		mockGit.EXPECT().PushTags("/project", "upstream").Return(nil),
	)

	err := NewGit(mockGit).Execute(context.Background(), plugin.Params{
		Release: gitRelease(),
		Options: map[string]interface{}{
			"message":   "chore: $oldVersion -> $newVersion",
			"tagPrefix": "release-",
			"push":      true,
			"remote":    "upstream",
		},
	})

	assert.NoError(t, err)
}

func TestGit_Execute_NoTag(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockGit := gitmocks.NewMockGit(ctrl)

	mockGit.EXPECT().Add(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockGit.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(nil)
	mockGit.EXPECT().Push("/project", "origin").Return(nil)

	err := NewGit(mockGit).Execute(context.Background(), plugin.Params{
		Release: gitRelease(),
		Options: map[string]interface{}{"tag": false, "push": true},
	})

	assert.NoError(t, err)
}

func TestGit_Execute_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockGit := gitmocks.NewMockGit(ctrl)
	failure := errors.New("nothing to commit")

	mockGit.EXPECT().Add(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockGit.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(failure)

	err := NewGit(mockGit).Execute(context.Background(), plugin.Params{Release: gitRelease()})
	assert.ErrorIs(t, err, failure)

	err = NewGit(mockGit).Execute(context.Background(), plugin.Params{
		Release: gitRelease(),
		Options: map[string]interface{}{"tag": "yes"},
	})
	assert.ErrorIs(t, err, plugin.ErrOptionType)
}

func TestGitClean_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockGit := gitmocks.NewMockGit(ctrl)
	gitClean := NewGitClean(mockGit)
	params := plugin.Params{Release: plugin.Release{WorkDir: "/project"}}

	mockGit.EXPECT().Status("/project").Return("", nil)
	assert.NoError(t, gitClean.Execute(context.Background(), params))

	mockGit.EXPECT().Status("/project").Return(" M package.json\n", nil)
	err := gitClean.Execute(context.Background(), params)
	assert.ErrorIs(t, err, ErrDirtyWorkingTree)
	assert.Contains(t, err.Error(), "M package.json")

	failure := errors.New("not a git repository")
	mockGit.EXPECT().Status("/project").Return("", failure)
	assert.ErrorIs(t, gitClean.Execute(context.Background(), params), failure)
}
