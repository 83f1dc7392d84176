//go:build unit

package hooks_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lerenn/bumped/pkg/config"
	"github.com/lerenn/bumped/pkg/hooks"
	hooksmocks "github.com/lerenn/bumped/pkg/hooks/mocks"
	"github.com/lerenn/bumped/pkg/plugin"
	pluginmocks "github.com/lerenn/bumped/pkg/plugin/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPipeline_NotifiesEveryObserver(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := hooksmocks.NewMockObserver(ctrl)
	second := hooksmocks.NewMockObserver(ctrl)
	mockPlugin := pluginmocks.NewMockPlugin(ctrl)
	locator := pluginmocks.NewMockLocator(ctrl)
	loader := pluginmocks.NewMockLoader(ctrl)
	failure := errors.New("push rejected")

	pipeline := hooks.NewPipeline(hooks.PipelineParams{
		Locator:   locator,
		Installer: pluginmocks.NewMockInstaller(ctrl),
		Loader:    loader,
		Observer:  hooks.Observers(first, second),
	})

	isPublish := gomock.Cond(func(x any) bool {
		event, ok := x.(hooks.Event)
		return ok && event.Description == "Publishing" && event.Phase == config.PhasePostrelease && event.Plugin == "terminal"
	})

	locator.EXPECT().Locate("terminal").Return("builtin:terminal", true)
	loader.EXPECT().Load("builtin:terminal").Return(mockPlugin, nil)
	gomock.InOrder(
		first.EXPECT().OnStart(isPublish),
		second.EXPECT().OnStart(isPublish),
		mockPlugin.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(failure),
		first.EXPECT().OnStop(isPublish, gomock.Any(), failure),
		second.EXPECT().OnStop(isPublish, gomock.Any(), failure),
	)

	err := pipeline.Execute(context.Background(), config.PhasePostrelease,
		config.Hooks{{Description: "Publishing", Plugin: "terminal"}},
		plugin.Release{Version: "1.0.0"})

	assert.ErrorIs(t, err, failure)
}
