//go:build unit

package plugin

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	fsmocks "github.com/lerenn/bumped/pkg/fs/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLocator_Builtin(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := fsmocks.NewMockFS(ctrl)
	registry := NewRegistry()
	require.NoError(t, registry.Register("git", noop()))

	location, found := NewLocator(mockFS, registry, "/local").Locate("git")

	assert.True(t, found)
	assert.Equal(t, "builtin:git", location)
}

func TestLocator_Script(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := fsmocks.NewMockFS(ctrl)

	mockFS.EXPECT().IsDir(filepath.Join("/local", "notify.go")).Return(false, os.ErrNotExist)
	mockFS.EXPECT().IsDir(filepath.Join("/local", "notify")).Return(false, os.ErrNotExist)
	mockFS.EXPECT().IsDir(filepath.Join("/global", "notify.go")).Return(false, nil)

	location, found := NewLocator(mockFS, NewRegistry(), "/local", "/global").Locate("notify")

	assert.True(t, found)
	assert.Equal(t, filepath.Join("/global", "notify.go"), location)
}

func TestLocator_Directory(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := fsmocks.NewMockFS(ctrl)

	mockFS.EXPECT().IsDir(filepath.Join("/local", "github.com/acme/notify.go")).Return(false, os.ErrNotExist)
	mockFS.EXPECT().IsDir(filepath.Join("/local", "github.com/acme/notify")).Return(true, nil)

	location, found := NewLocator(mockFS, NewRegistry(), "/local").Locate("github.com/acme/notify")

	assert.True(t, found)
	assert.Equal(t, filepath.Join("/local", "github.com/acme/notify"), location)
}

func TestLocator_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := fsmocks.NewMockFS(ctrl)

	mockFS.EXPECT().IsDir(gomock.Any()).Return(false, errors.New("stat failed")).Times(2)

	_, found := NewLocator(mockFS, NewRegistry(), "/local").Locate("notify")
	assert.False(t, found)

	_, found = NewLocator(mockFS, NewRegistry()).Locate("")
	assert.False(t, found)
}

func TestGlobalDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := fsmocks.NewMockFS(ctrl)

	mockFS.EXPECT().GetHomeDir().Return("/home/user", nil)
	dir, err := GlobalDir(mockFS)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/user", ".bumped", "plugins"), dir)

	mockFS.EXPECT().GetHomeDir().Return("", errors.New("no home"))
	_, err = GlobalDir(mockFS)
	assert.Error(t, err)

	assert.Equal(t, filepath.Join("/project", ".bumped", "plugins"), LocalDir("/project"))
}
