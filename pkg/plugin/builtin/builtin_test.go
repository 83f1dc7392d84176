//go:build unit

package builtin

import (
	"testing"

	forgemocks "github.com/lerenn/bumped/pkg/forge/mocks"
	fsmocks "github.com/lerenn/bumped/pkg/fs/mocks"
	gitmocks "github.com/lerenn/bumped/pkg/git/mocks"
	"github.com/lerenn/bumped/pkg/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	deps := Dependencies{
		FS:    fsmocks.NewMockFS(ctrl),
		Git:   gitmocks.NewMockGit(ctrl),
		Forge: forgemocks.NewMockForge(ctrl),
	}

	registry, err := NewRegistry(deps)
	require.NoError(t, err)
	assert.Equal(t, []string{GitName, GitCleanName, GitHubReleaseName, TerminalName}, registry.Names())

	err = Register(registry, deps)
	assert.ErrorIs(t, err, plugin.ErrAlreadyRegistered)
}
