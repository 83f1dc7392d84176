//go:build unit

package hooks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lerenn/bumped/pkg/config"
	"github.com/lerenn/bumped/pkg/plugin"
	pluginmocks "github.com/lerenn/bumped/pkg/plugin/mocks"
	reportermocks "github.com/lerenn/bumped/pkg/reporter/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordedStop struct {
	description string
	err         error
}

type recordingObserver struct {
	starts []string
	stops  []recordedStop
}

func (o *recordingObserver) OnStart(event Event) {
	o.starts = append(o.starts, event.Description)
}

func (o *recordingObserver) OnStop(event Event, _ time.Duration, err error) {
	o.stops = append(o.stops, recordedStop{description: event.Description, err: err})
}

type pipelineFixture struct {
	locator   *pluginmocks.MockLocator
	installer *pluginmocks.MockInstaller
	loader    *pluginmocks.MockLoader
	reporter  *reportermocks.MockReporter
	observer  *recordingObserver
	pipeline  Pipeline
}

func newPipelineFixture(t *testing.T) *pipelineFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &pipelineFixture{
		locator:   pluginmocks.NewMockLocator(ctrl),
		installer: pluginmocks.NewMockInstaller(ctrl),
		loader:    pluginmocks.NewMockLoader(ctrl),
		reporter:  reportermocks.NewMockReporter(ctrl),
		observer:  &recordingObserver{},
	}
	f.pipeline = NewPipeline(PipelineParams{
		Locator:   f.locator,
		Installer: f.installer,
		Loader:    f.loader,
		Observer:  f.observer,
		Reporter:  f.reporter,
	})
	return f
}

func recordingPlugin(calls *[]string, name string, err error) plugin.Plugin {
	return plugin.Func(func(context.Context, plugin.Params) error {
		*calls = append(*calls, name)
		return err
	})
}

func TestPipeline_NoHooks(t *testing.T) {
	f := newPipelineFixture(t)

	err := f.pipeline.Execute(context.Background(), config.PhasePrerelease, nil, plugin.Release{})

	require.NoError(t, err)
	assert.Empty(t, f.observer.starts)
	assert.Empty(t, f.observer.stops)
}

func TestPipeline_StopsAtFirstFailure(t *testing.T) {
	f := newPipelineFixture(t)
	failure := errors.New("tests are red")
	var calls []string

	hooks := config.Hooks{
		{Description: "A", Plugin: "a"},
		{Description: "B", Plugin: "b"},
		{Description: "C", Plugin: "c"},
	}

	f.locator.EXPECT().Locate("a").Return("builtin:a", true)
	f.locator.EXPECT().Locate("b").Return("builtin:b", true)
	f.loader.EXPECT().Load("builtin:a").Return(recordingPlugin(&calls, "A", nil), nil)
	f.loader.EXPECT().Load("builtin:b").Return(recordingPlugin(&calls, "B", failure), nil)

	err := f.pipeline.Execute(context.Background(), config.PhasePrerelease, hooks, plugin.Release{Version: "1.0.0"})

	var pluginErr *PluginError
	require.ErrorAs(t, err, &pluginErr)
	assert.Equal(t, config.PhasePrerelease, pluginErr.Phase)
	assert.Equal(t, "B", pluginErr.Hook)
	assert.Equal(t, "b", pluginErr.Plugin)
	assert.ErrorIs(t, err, failure)

	assert.Equal(t, []string{"A", "B"}, calls)
	assert.Equal(t, []string{"A", "B"}, f.observer.starts)
	assert.Equal(t, []recordedStop{{"A", nil}, {"B", failure}}, f.observer.stops)
}

func TestPipeline_LoadsPluginOnce(t *testing.T) {
	f := newPipelineFixture(t)
	var calls []string

	hooks := config.Hooks{
		{Description: "Lint", Plugin: "terminal"},
		{Description: "Test", Plugin: "terminal"},
	}

	f.locator.EXPECT().Locate("terminal").Return("builtin:terminal", true).Times(2)
	f.loader.EXPECT().Load("builtin:terminal").Return(recordingPlugin(&calls, "terminal", nil), nil).Times(1)

	err := f.pipeline.Execute(context.Background(), config.PhasePostrelease, hooks, plugin.Release{})
	require.NoError(t, err)

	f.locator.EXPECT().Locate("terminal").Return("builtin:terminal", true)
	err = f.pipeline.Execute(context.Background(), config.PhasePostrelease, hooks[:1], plugin.Release{})
	require.NoError(t, err)

	assert.Equal(t, []string{"terminal", "terminal", "terminal"}, calls)
}

func TestPipeline_PassesParams(t *testing.T) {
	f := newPipelineFixture(t)
	options := map[string]interface{}{"command": "make"}
	var got plugin.Params

	f.locator.EXPECT().Locate("terminal").Return("builtin:terminal", true)
	f.loader.EXPECT().Load("builtin:terminal").Return(plugin.Func(func(_ context.Context, p plugin.Params) error {
		got = p
		p.Options["command"] = "rm -rf /"
		return nil
	}), nil)

	release := plugin.Release{Version: "1.1.0", PreviousVersion: "1.0.0", Files: []string{"package.json"}}
	err := f.pipeline.Execute(context.Background(), config.PhasePrerelease,
		config.Hooks{{Description: "Build", Plugin: "terminal", Options: options}}, release)

	require.NoError(t, err)
	assert.Equal(t, "Build", got.Title)
	assert.Equal(t, "builtin:terminal", got.Path)
	assert.Equal(t, config.PhasePrerelease, got.Release.Phase)
	assert.Equal(t, "1.1.0", got.Release.Version)
	assert.Equal(t, "1.0.0", got.Release.PreviousVersion)
	assert.NotNil(t, got.Reporter)
	assert.NotNil(t, got.Logger)
	assert.Equal(t, "make", options["command"])
}

func TestPipeline_InstallsMissingPlugin(t *testing.T) {
	f := newPipelineFixture(t)
	var calls []string
	location := "/home/user/.bumped/plugins/github.com/acme/notify"

	gomock.InOrder(
		f.locator.EXPECT().Locate("github.com/acme/notify").Return("", false),
		f.reporter.EXPECT().Warn("Plugin github.com/acme/notify not found, installing it"),
		f.installer.EXPECT().Install(gomock.Any(), "github.com/acme/notify").Return(nil),
		f.locator.EXPECT().Locate("github.com/acme/notify").Return(location, true),
		f.loader.EXPECT().Load(location).Return(recordingPlugin(&calls, "notify", nil), nil),
	)

	err := f.pipeline.Execute(context.Background(), config.PhasePostrelease,
		config.Hooks{{Description: "Notify", Plugin: "github.com/acme/notify"}}, plugin.Release{})

	require.NoError(t, err)
	assert.Equal(t, []string{"notify"}, calls)
}

func TestPipeline_PluginStillMissing(t *testing.T) {
	f := newPipelineFixture(t)

	f.locator.EXPECT().Locate("notify").Return("", false).Times(2)
	f.installer.EXPECT().Install(gomock.Any(), "notify").Return(plugin.ErrNotInstallable)
	f.reporter.EXPECT().Warn(gomock.Any()).Times(2)

	err := f.pipeline.Execute(context.Background(), config.PhasePrerelease,
		config.Hooks{{Description: "Notify", Plugin: "notify"}, {Description: "Next", Plugin: "next"}}, plugin.Release{})

	var pluginErr *PluginError
	require.ErrorAs(t, err, &pluginErr)
	assert.Equal(t, "Notify", pluginErr.Hook)
	assert.ErrorIs(t, err, ErrPluginNotFound)
	assert.Empty(t, f.observer.starts)
}

func TestPipeline_LoadError(t *testing.T) {
	f := newPipelineFixture(t)

	f.locator.EXPECT().Locate("broken").Return("/plugins/broken.go", true)
	f.loader.EXPECT().Load("/plugins/broken.go").Return(nil, plugin.ErrScriptSignature)

	err := f.pipeline.Execute(context.Background(), config.PhasePrerelease,
		config.Hooks{{Description: "Broken", Plugin: "broken"}}, plugin.Release{})

	assert.ErrorIs(t, err, ErrPluginLoad)
	assert.ErrorIs(t, err, plugin.ErrScriptSignature)
	assert.Empty(t, f.observer.starts)
}

func TestPipeline_Cancelled(t *testing.T) {
	f := newPipelineFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.pipeline.Execute(ctx, config.PhasePrerelease,
		config.Hooks{{Description: "A", Plugin: "a"}}, plugin.Release{})

	assert.ErrorIs(t, err, context.Canceled)
}
