// Package forge publishes releases on code hosting platforms.
package forge

import (
	"context"
	"fmt"

	"github.com/lerenn/bumped/pkg/git"
	"github.com/lerenn/bumped/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=forge.go -destination=mocks/forge.gen.go -package=mocks

// ReleaseParams describes a release to publish for an existing tag.
type ReleaseParams struct {
	RepoPath   string
	Remote     string
	Tag        string
	Name       string
	Body       string
	Draft      bool
	Prerelease bool
}

// Forge interface defines the methods that all forge implementations must provide.
type Forge interface {
	// Name returns the name of the forge
	Name() string

	// ValidateForgeRepository validates that repository has a remote hosted on the forge
	ValidateForgeRepository(repoPath, remote string) error

	// CreateRelease publishes a release and returns its URL
	CreateRelease(ctx context.Context, params ReleaseParams) (string, error)
}

// ManagerInterface defines the interface for forge management.
type ManagerInterface interface {
	// GetForge returns the forge implementation for the given name
	GetForge(name string) (Forge, error)
	// GetForgeForRepository returns the appropriate forge for the given repository
	GetForgeForRepository(repoPath, remote string) (Forge, error)
}

// Manager manages forge implementations and provides a unified interface.
type Manager struct {
	forges map[string]Forge
	logger logger.Logger
}

// NewManager creates a new forge manager with registered forge implementations.
func NewManager(logger logger.Logger, g git.Git) *Manager {
	m := &Manager{
		forges: make(map[string]Forge),
		logger: logger,
	}

	m.Register(NewGitHub(g))

	return m
}

// Register adds or replaces a forge implementation.
func (m *Manager) Register(f Forge) {
	m.forges[f.Name()] = f
}

// GetForge returns the forge implementation for the given name.
func (m *Manager) GetForge(name string) (Forge, error) {
	forge, exists := m.forges[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedForge, name)
	}
	return forge, nil
}

// GetForgeForRepository returns the appropriate forge for the given repository.
func (m *Manager) GetForgeForRepository(repoPath, remote string) (Forge, error) {
	for _, forge := range m.forges {
		err := forge.ValidateForgeRepository(repoPath, remote)
		if err == nil {
			return forge, nil
		}
		m.logger.Logf("Forge %s does not match repository: %v", forge.Name(), err)
	}
	return nil, fmt.Errorf("%w: no supported forge found for repository", ErrUnsupportedForge)
}
