//go:build unit

package builtin

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lerenn/bumped/pkg/fs"
	fsmocks "github.com/lerenn/bumped/pkg/fs/mocks"
	"github.com/lerenn/bumped/pkg/plugin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type bufferLogger struct {
	lines []string
}

func (l *bufferLogger) Logf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestTerminal_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := fsmocks.NewMockFS(ctrl)
	l := &bufferLogger{}

	mockFS.EXPECT().ExecuteCommand("/project", "sh", "-c", "echo 1.0.0 to 1.1.0").Return("1.0.0 to 1.1.0\n", nil)

	err := NewTerminal(mockFS).Execute(context.Background(), plugin.Params{
		Release: plugin.Release{Version: "1.1.0", PreviousVersion: "1.0.0", WorkDir: "/project"},
		Options: map[string]interface{}{"command": "echo $oldVersion to $newVersion"},
		Logger:  l,
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"1.0.0 to 1.1.0"}, l.lines)
}

func TestTerminal_Execute_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := fsmocks.NewMockFS(ctrl)

	mockFS.EXPECT().ExecuteCommand(".", "sh", "-c", "make test").Return("FAIL\n", fs.ErrCommandFailed)

	err := NewTerminal(mockFS).Execute(context.Background(), plugin.Params{
		Options: map[string]interface{}{"command": "make test"},
	})

	assert.ErrorIs(t, err, ErrTerminalFailed)
	assert.ErrorIs(t, err, fs.ErrCommandFailed)
}

func TestTerminal_Execute_InvalidOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	terminal := NewTerminal(fsmocks.NewMockFS(ctrl))

	err := terminal.Execute(context.Background(), plugin.Params{})
	assert.ErrorIs(t, err, ErrCommandMissing)

	err = terminal.Execute(context.Background(), plugin.Params{Options: map[string]interface{}{"command": "  "}})
	assert.ErrorIs(t, err, ErrCommandMissing)

	err = terminal.Execute(context.Background(), plugin.Params{Options: map[string]interface{}{"command": 42}})
	assert.ErrorIs(t, err, plugin.ErrOptionType)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = terminal.Execute(ctx, plugin.Params{Options: map[string]interface{}{"command": "true"}})
	assert.True(t, errors.Is(err, context.Canceled))
}
